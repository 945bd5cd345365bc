package errors

// MetaReason is the metadata key holding the domain reason of an error
const MetaReason = "reason"

// Reason identifies a domain-level failure independently of its Code
type Reason string

// Validation reasons
const (
	ReasonEmptyNickname    Reason = "empty_nickname"
	ReasonUnknownTheme     Reason = "unknown_theme"
	ReasonUnknownStat      Reason = "unknown_stat"
	ReasonInvalidSelection Reason = "invalid_selection"
)

// Session flow reasons
const (
	ReasonNarratorBusy Reason = "narrator_busy"
	ReasonWrongPhase   Reason = "wrong_phase"
)

// Narrator failure reasons
const (
	ReasonMalformedResponse Reason = "malformed_response"
	ReasonNarratorTransport Reason = "narrator_transport"
)

// withReason tags the error with a domain reason
func (e *Error) withReason(reason Reason) *Error {
	return e.WithMeta(MetaReason, string(reason))
}

// Validation creates an invalid argument error tagged with a reason
func Validation(reason Reason, message string) *Error {
	return InvalidArgument(message).withReason(reason)
}

// Validationf creates a tagged invalid argument error with formatted message
func Validationf(reason Reason, format string, args ...interface{}) *Error {
	return InvalidArgumentf(format, args...).withReason(reason)
}

// WrongPhasef reports an action attempted outside the phase that allows it
func WrongPhasef(format string, args ...interface{}) *Error {
	return FailedPreconditionf(format, args...).withReason(ReasonWrongPhase)
}

// NarratorBusy reports an action rejected while a narrator call is in flight
func NarratorBusy() *Error {
	return Aborted("a narrator request is already in flight").withReason(ReasonNarratorBusy)
}

// MalformedResponse reports a narrator response missing required fields
func MalformedResponse(message string) *Error {
	return DataLoss(message).withReason(ReasonMalformedResponse)
}

// MalformedResponsef reports a malformed narrator response with formatted message
func MalformedResponsef(format string, args ...interface{}) *Error {
	return newf(CodeDataLoss, format, args...).withReason(ReasonMalformedResponse)
}

// TransportFailure reports a narrator call that could not complete
func TransportFailure(cause error, message string) *Error {
	if cause == nil {
		return Unavailable(message).withReason(ReasonNarratorTransport)
	}
	return WrapWithCode(cause, CodeUnavailable, message).withReason(ReasonNarratorTransport)
}

// GetReason extracts the domain reason from an error, if any
func GetReason(err error) Reason {
	reason, _ := getMeta(err)[MetaReason].(string)
	return Reason(reason)
}

// HasReason checks if an error carries the given reason
func HasReason(err error, reason Reason) bool {
	return err != nil && GetReason(err) == reason
}

// IsMalformedResponse checks if an error is a malformed narrator response
func IsMalformedResponse(err error) bool {
	return HasReason(err, ReasonMalformedResponse)
}

// IsTransportFailure checks if an error is a narrator transport failure
func IsTransportFailure(err error) bool {
	return HasReason(err, ReasonNarratorTransport)
}

// IsNarratorFailure checks for either kind of recoverable narrator failure
func IsNarratorFailure(err error) bool {
	return IsMalformedResponse(err) || IsTransportFailure(err)
}

package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// transport is how a code is reported on each API surface.
type transport struct {
	grpc codes.Code
	http int
}

// Session conflicts (wrong phase, narrator busy) are 409 and narrator
// failures (DataLoss, Unavailable) are 502 on the HTTP API.
var transports = map[Code]transport{
	CodeOK:                 {codes.OK, http.StatusOK},
	CodeCanceled:           {codes.Canceled, http.StatusRequestTimeout},
	CodeInvalidArgument:    {codes.InvalidArgument, http.StatusBadRequest},
	CodeDeadlineExceeded:   {codes.DeadlineExceeded, http.StatusGatewayTimeout},
	CodeNotFound:           {codes.NotFound, http.StatusNotFound},
	CodeAlreadyExists:      {codes.AlreadyExists, http.StatusConflict},
	CodePermissionDenied:   {codes.PermissionDenied, http.StatusForbidden},
	CodeResourceExhausted:  {codes.ResourceExhausted, http.StatusTooManyRequests},
	CodeFailedPrecondition: {codes.FailedPrecondition, http.StatusConflict},
	CodeAborted:            {codes.Aborted, http.StatusConflict},
	CodeOutOfRange:         {codes.OutOfRange, http.StatusBadRequest},
	CodeUnimplemented:      {codes.Unimplemented, http.StatusNotImplemented},
	CodeInternal:           {codes.Internal, http.StatusInternalServerError},
	CodeUnavailable:        {codes.Unavailable, http.StatusBadGateway},
	CodeDataLoss:           {codes.DataLoss, http.StatusBadGateway},
	CodeUnauthenticated:    {codes.Unauthenticated, http.StatusUnauthorized},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the corresponding gRPC code, Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if t, ok := transports[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

// HTTPStatus returns the HTTP status used by the session API
func (c Code) HTTPStatus() int {
	if t, ok := transports[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

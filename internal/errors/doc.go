// Package errors provides the structured error type used across rpg-tale.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto gRPC status codes for the dice service and
// onto HTTP status codes for the session API.
//
// # Basic Usage
//
//	err := errors.NotFound("session not found").WithMeta("session_id", id)
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load session")
//	}
//
// # Domain Reasons
//
// Game rule violations and narrator failures are distinguished by a reason
// stored under the "reason" meta key:
//
//	errors.Validation(errors.ReasonUnknownStat, "hp cannot be checked")
//	errors.MalformedResponse("story_place is missing")
//	errors.TransportFailure(err, "narrator returned 502")
//
//	if errors.IsMalformedResponse(err) || errors.IsTransportFailure(err) {
//	    // surface a retryable notice to the player
//	}
//
// # Validation Builder
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("nickname", input.Nickname, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / AlreadyExists with the relevant IDs in metadata
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition when the session is in the wrong phase
//   - Return Aborted while a narrator request is in flight
//
// Handler layer:
//   - Convert with ToGRPCError (gRPC) or Code.HTTPStatus (HTTP)
package errors

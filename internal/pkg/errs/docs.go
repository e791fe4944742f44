// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure kinds the service reports to its callers:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation,
//     all of which also match the ErrValidation umbrella sentinel
//   - ObjectNotFoundError: a booking or driver does not exist
//   - ForbiddenError: a driver acts on a booking that is not assigned to them
//   - StatusIsInvalidError: a requested lifecycle status is rejected
//   - ConflictError: the operation cannot proceed in the current state (no driver online)
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies wrapped errors
//
// Transport adapters map the sentinels to response codes; the domain never needs to know
// about HTTP.
package errs

package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the umbrella sentinel for every input validation failure.
	// ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError all match it
	// through errors.Is, so callers can classify a failure without knowing its exact type.
	ErrValidation = errors.New("validation failed")

	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrForbidden         = errors.New("forbidden")
	ErrStatusIsInvalid   = errors.New("status is invalid")
	ErrConflict          = errors.New("conflict")
)

// ObjectNotFoundError reports that an entity addressed by ParamName and ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError that keeps the error which
// caused the lookup to fail.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError carrying the reason
// the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// Is lets the error match ErrValidation in addition to its own sentinel.
func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrValidation
}

// ValueIsOutOfRangeError reports a value outside its inclusive [Min, Max] bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the offending value
// and the permitted bounds.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with an attached cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// Is lets the error match ErrValidation in addition to its own sentinel.
func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrValidation
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an attached cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// Is lets the error match ErrValidation in addition to its own sentinel.
func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrValidation
}

// ForbiddenError reports that the caller does not own the resource it tried to change.
type ForbiddenError struct {
	Reason string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError with a human readable reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// NewForbiddenErrorWithCause creates a ForbiddenError with an attached cause.
func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason), e.Cause)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// StatusIsInvalidError reports a requested lifecycle status that is unknown, not settable
// by the caller, or not reachable from the current status.
type StatusIsInvalidError struct {
	Value any
	Cause error
}

// NewStatusIsInvalidError creates a StatusIsInvalidError for the rejected value.
func NewStatusIsInvalidError(value any) *StatusIsInvalidError {
	return &StatusIsInvalidError{Value: value}
}

// NewStatusIsInvalidErrorWithCause creates a StatusIsInvalidError explaining why the value
// was rejected.
func NewStatusIsInvalidErrorWithCause(value any, cause error) *StatusIsInvalidError {
	return &StatusIsInvalidError{
		Value: value,
		Cause: cause,
	}
}

func (e *StatusIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %v", ErrStatusIsInvalid, e.Value), e.Cause)
}

func (e *StatusIsInvalidError) Unwrap() error {
	return ErrStatusIsInvalid
}

// ConflictError reports an operation that cannot proceed in the current state of the system,
// for example a dispatch attempted while no driver is online.
type ConflictError struct {
	Reason string
	Cause  error
}

// NewConflictError creates a ConflictError with a human readable reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// NewConflictErrorWithCause creates a ConflictError with an attached cause.
func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func withCause(msg string, cause error) string {
	if cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, cause)
	}
	return sanitize(msg)
}

// sanitize keeps messages on a single line so they stay readable in structured logs.
func sanitize(msg string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(msg)
}

// Package guard provides ConstructorGuard, a marker that distinguishes values built by their
// constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the guarded value
// is a zero value and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into entities, value objects, commands and queries. Only the
// constructor sets it, so a struct literal or a zero value fails Validate and never reaches
// business logic with unchecked fields.
//
// Example:
//
//	var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket")
//
//	type Ticket struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTicket(code string) (Ticket, error) {
//	    if code == "" {
//	        return Ticket{}, errs.NewValueIsRequiredError("code")
//	    }
//	    return Ticket{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Ticket) Validate() error {
//	    return t.guard.Validate(ErrTicketIsNotConstructed)
//	}
//
// The guard is a plain bool, so it is safe to copy and to read from many goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

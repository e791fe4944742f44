package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAutoDispatchCommandIsNotConstructed = errors.New(
	"AutoDispatchCommand must be created via NewAutoDispatchCommand constructor",
)

// AutoDispatchCommand triggers dispatch of every pending booking, oldest first.
// This is a parameterless command; the scheduler issues it periodically.
//
// Example:
//
//	cmd := NewAutoDispatchCommand()
//	assigned, err := handler.Handle(ctx, cmd)
type AutoDispatchCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoDispatchCommand creates the command.
func NewAutoDispatchCommand() AutoDispatchCommand {
	return AutoDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoDispatchCommandIsNotConstructed if validation fails.
func (c AutoDispatchCommand) Validate() error {
	return c.guard.Validate(ErrAutoDispatchCommandIsNotConstructed)
}

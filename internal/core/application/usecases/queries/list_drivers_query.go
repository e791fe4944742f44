package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves the driver registry.
type ListDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewListDriversQuery creates the query.
func NewListDriversQuery() ListDriversQuery {
	return ListDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

package queries

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverTasksQueryIsNotConstructed = errors.New(
	"GetDriverTasksQuery must be created via NewGetDriverTasksQuery constructor",
)

// GetDriverTasksQuery retrieves the work a driver still has to do: bookings assigned to them
// that are not delivered yet.
//
// Example:
//
//	query, err := NewGetDriverTasksQuery("DRV1")
//	if err != nil {
//	    return err
//	}
//	tasks, err := handler.Handle(ctx, query)
type GetDriverTasksQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

// NewGetDriverTasksQuery requires a non-empty driver id. The driver does not have to be
// registered.
func NewGetDriverTasksQuery(driverID string) (GetDriverTasksQuery, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return GetDriverTasksQuery{}, errs.NewValueIsRequiredError("driverId")
	}

	return GetDriverTasksQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverTasksQueryIsNotConstructed)
}

// DriverID returns whose tasks are listed.
func (q GetDriverTasksQuery) DriverID() string {
	return q.driverID
}

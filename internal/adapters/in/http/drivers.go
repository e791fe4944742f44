package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"

	"github.com/labstack/echo/v4"
)

// ListDrivers handles GET /api/drivers - the registry in registration order.
func (s *Server) ListDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.ListDrivers.Handle(ctx.Request().Context(), queries.NewListDriversQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve drivers")
	}

	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// RegisterDriver handles POST /api/drivers. Registering a known id refreshes its profile.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability := driver.UnknownAvailability
	if body.Availability != "" {
		parsed, err := driver.ParseAvailability(body.Availability)
		if err != nil {
			return s.respondError(ctx, err, "Invalid driver data")
		}
		availability = parsed
	}

	cmd, err := commands.NewRegisterDriverCommand(body.ID, body.Name, availability, body.CashCapacity)
	if err != nil {
		return s.respondError(ctx, err, "Invalid driver data")
	}

	d, err := s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to register driver")
	}

	return ctx.JSON(http.StatusCreated, toDriver(d))
}

// SetDriverAvailability handles PUT /api/drivers/:driverId/availability.
func (s *Server) SetDriverAvailability(ctx echo.Context, driverID string) error {
	var body AvailabilityUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability, err := driver.ParseAvailability(body.Availability)
	if err != nil {
		return s.respondError(ctx, err, "Invalid availability")
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, availability)
	if err != nil {
		return s.respondError(ctx, err, "Invalid availability")
	}

	d, err := s.handlers.SetDriverAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to change availability")
	}

	return ctx.JSON(http.StatusOK, toDriver(d))
}

// ReportDriverLocation handles PUT /api/drivers/:driverId/location.
func (s *Server) ReportDriverLocation(ctx echo.Context, driverID string) error {
	var body LocationUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := body.Location.Resolve("location")
	if err != nil {
		return s.respondError(ctx, err, "Invalid location")
	}

	cmd, err := commands.NewReportDriverLocationCommand(driverID, location)
	if err != nil {
		return s.respondError(ctx, err, "Invalid location")
	}

	d, err := s.handlers.ReportDriverLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to store location")
	}

	return ctx.JSON(http.StatusOK, toDriver(d))
}

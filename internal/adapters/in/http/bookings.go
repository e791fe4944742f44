package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"

	"github.com/labstack/echo/v4"
)

// ListBookings handles GET /api/bookings - every booking, oldest first.
func (s *Server) ListBookings(ctx echo.Context) error {
	views, err := s.handlers.ListBookings.Handle(ctx.Request().Context(), queries.NewListBookingsQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve bookings")
	}

	return ctx.JSON(http.StatusOK, toBookings(views))
}

// CreateBooking handles POST /api/bookings - creates a PENDING booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var body NewBooking
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := body.CustomerID
	if customerID == "" {
		customerID = body.CustomerPhone
	}

	pickup, pickupErr := body.Pickup.Resolve("pickup")
	drop, dropErr := body.Drop.Resolve("drop")
	service, serviceErr := booking.ParseServiceTier(body.Service)
	if err := errors.Join(pickupErr, dropErr, serviceErr); err != nil {
		return s.respondError(ctx, err, "Invalid booking data")
	}

	cmd, err := commands.NewCreateBookingCommand(customerID, pickup, drop, service, body.COD, body.Notes)
	if err != nil {
		return s.respondError(ctx, err, "Invalid booking data")
	}

	b, err := s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create booking")
	}

	return ctx.JSON(http.StatusCreated, toBooking(bookingView(b, "")))
}

// GetBooking handles GET /api/bookings/:id.
func (s *Server) GetBooking(ctx echo.Context, id string) error {
	query, err := queries.NewGetBookingQuery(id)
	if err != nil {
		return s.respondError(ctx, err, "Invalid booking id")
	}

	view, err := s.handlers.GetBooking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve booking")
	}

	return ctx.JSON(http.StatusOK, toBooking(view))
}

// GetBookingEvents handles GET /api/bookings/:id/events - the journaled history of a booking,
// oldest first. Answers 501 when no event journal is configured.
func (s *Server) GetBookingEvents(ctx echo.Context, id string) error {
	query, err := queries.NewGetBookingEventsQuery(id)
	if err != nil {
		return s.respondError(ctx, err, "Invalid booking id")
	}

	envelopes, err := s.handlers.GetBookingEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve booking events")
	}

	return ctx.JSON(http.StatusOK, envelopes)
}

// DispatchBooking handles POST /api/dispatch/:id. Dispatching an assigned booking again
// returns the driver it already has.
func (s *Server) DispatchBooking(ctx echo.Context, id string) error {
	cmd, err := commands.NewDispatchBookingCommand(id)
	if err != nil {
		return s.respondError(ctx, err, "Invalid booking id")
	}

	result, err := s.handlers.DispatchBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to dispatch booking")
	}

	assigned := toBooking(bookingView(result.Booking, result.AssignedTo))
	return ctx.JSON(http.StatusOK, DispatchResult{
		Ok:         true,
		AssignedTo: result.AssignedTo,
		Booking:    &assigned,
	})
}

// GetDriverTasks handles GET /api/driver/:driverId/tasks - undelivered bookings of the
// driver in creation order.
func (s *Server) GetDriverTasks(ctx echo.Context, driverID string) error {
	query, err := queries.NewGetDriverTasksQuery(driverID)
	if err != nil {
		return s.respondError(ctx, err, "Invalid driver id")
	}

	views, err := s.handlers.GetDriverTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve tasks")
	}

	return ctx.JSON(http.StatusOK, toBookings(views))
}

// UpdateDeliveryStatus handles POST /api/driver/:driverId/bookings/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, driverID string, id string) error {
	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, driverID, body.Status)
	if err != nil {
		return s.respondError(ctx, err, "Invalid status update")
	}

	b, err := s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update status")
	}

	return ctx.JSON(http.StatusOK, toBooking(bookingView(b, driverID)))
}

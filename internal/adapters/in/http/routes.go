package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of openapi.yaml. Path parameters arrive
// already bound.
type ServerInterface interface {
	// (GET /api/health)
	GetHealth(ctx echo.Context) error
	// (GET /api/bookings)
	ListBookings(ctx echo.Context) error
	// (POST /api/bookings)
	CreateBooking(ctx echo.Context) error
	// (GET /api/bookings/{id})
	GetBooking(ctx echo.Context, id string) error
	// (GET /api/bookings/{id}/events)
	GetBookingEvents(ctx echo.Context, id string) error
	// (POST /api/dispatch/{id})
	DispatchBooking(ctx echo.Context, id string) error
	// (GET /api/driver/{driverId}/tasks)
	GetDriverTasks(ctx echo.Context, driverID string) error
	// (POST /api/driver/{driverId}/bookings/{id}/status)
	UpdateDeliveryStatus(ctx echo.Context, driverID string, id string) error
	// (GET /api/drivers)
	ListDrivers(ctx echo.Context) error
	// (POST /api/drivers)
	RegisterDriver(ctx echo.Context) error
	// (PUT /api/drivers/{driverId}/availability)
	SetDriverAvailability(ctx echo.Context, driverID string) error
	// (PUT /api/drivers/{driverId}/location)
	ReportDriverLocation(ctx echo.Context, driverID string) error
	// (GET /api/events)
	StreamEvents(ctx echo.Context) error
	// (POST /api/otp/request)
	RequestOTP(ctx echo.Context) error
	// (POST /api/otp/verify)
	VerifyOTP(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	return w.Handler.ListBookings(ctx)
}

func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	id, err := bindPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, id)
}

func (w *ServerInterfaceWrapper) GetBookingEvents(ctx echo.Context) error {
	id, err := bindPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetBookingEvents(ctx, id)
}

func (w *ServerInterfaceWrapper) DispatchBooking(ctx echo.Context) error {
	id, err := bindPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DispatchBooking(ctx, id)
}

func (w *ServerInterfaceWrapper) GetDriverTasks(ctx echo.Context) error {
	driverID, err := bindPathParam(ctx, "driverId")
	if err != nil {
		return err
	}
	return w.Handler.GetDriverTasks(ctx, driverID)
}

func (w *ServerInterfaceWrapper) UpdateDeliveryStatus(ctx echo.Context) error {
	driverID, err := bindPathParam(ctx, "driverId")
	if err != nil {
		return err
	}
	id, err := bindPathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateDeliveryStatus(ctx, driverID, id)
}

func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	return w.Handler.ListDrivers(ctx)
}

func (w *ServerInterfaceWrapper) RegisterDriver(ctx echo.Context) error {
	return w.Handler.RegisterDriver(ctx)
}

func (w *ServerInterfaceWrapper) SetDriverAvailability(ctx echo.Context) error {
	driverID, err := bindPathParam(ctx, "driverId")
	if err != nil {
		return err
	}
	return w.Handler.SetDriverAvailability(ctx, driverID)
}

func (w *ServerInterfaceWrapper) ReportDriverLocation(ctx echo.Context) error {
	driverID, err := bindPathParam(ctx, "driverId")
	if err != nil {
		return err
	}
	return w.Handler.ReportDriverLocation(ctx, driverID)
}

func (w *ServerInterfaceWrapper) StreamEvents(ctx echo.Context) error {
	return w.Handler.StreamEvents(ctx)
}

func (w *ServerInterfaceWrapper) RequestOTP(ctx echo.Context) error {
	return w.Handler.RequestOTP(ctx)
}

func (w *ServerInterfaceWrapper) VerifyOTP(ctx echo.Context) error {
	return w.Handler.VerifyOTP(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation to router under baseURL ("" for the root).
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/health", w.GetHealth)
	router.GET(baseURL+"/api/bookings", w.ListBookings)
	router.POST(baseURL+"/api/bookings", w.CreateBooking)
	router.GET(baseURL+"/api/bookings/:id", w.GetBooking)
	router.GET(baseURL+"/api/bookings/:id/events", w.GetBookingEvents)
	router.POST(baseURL+"/api/dispatch/:id", w.DispatchBooking)
	router.GET(baseURL+"/api/driver/:driverId/tasks", w.GetDriverTasks)
	router.POST(baseURL+"/api/driver/:driverId/bookings/:id/status", w.UpdateDeliveryStatus)
	router.GET(baseURL+"/api/drivers", w.ListDrivers)
	router.POST(baseURL+"/api/drivers", w.RegisterDriver)
	router.PUT(baseURL+"/api/drivers/:driverId/availability", w.SetDriverAvailability)
	router.PUT(baseURL+"/api/drivers/:driverId/location", w.ReportDriverLocation)
	router.GET(baseURL+"/api/events", w.StreamEvents)
	router.POST(baseURL+"/api/otp/request", w.RequestOTP)
	router.POST(baseURL+"/api/otp/verify", w.VerifyOTP)
}

func bindPathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// Package http is the REST and server-sent events surface of the dispatch service.
package http

import (
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/booking"
	"dispatch/internal/core/ports"
)

const (
	// DefaultObserverBuffer is the per-client event buffer of the SSE stream.
	DefaultObserverBuffer = 64

	heartbeatInterval = 25 * time.Second
)

var _ ServerInterface = (*Server)(nil)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateBooking         commands.CreateBookingCommandHandler
	DispatchBooking       commands.DispatchBookingCommandHandler
	UpdateDeliveryStatus  commands.UpdateDeliveryStatusCommandHandler
	RegisterDriver        commands.RegisterDriverCommandHandler
	SetDriverAvailability commands.SetDriverAvailabilityCommandHandler
	ReportDriverLocation  commands.ReportDriverLocationCommandHandler

	// Query handlers
	ListBookings     queries.ListBookingsQueryHandler
	GetBooking       queries.GetBookingQueryHandler
	GetDriverTasks   queries.GetDriverTasksQueryHandler
	ListDrivers      queries.ListDriversQueryHandler
	GetBookingEvents queries.GetBookingEventsQueryHandler
}

// Server implements ServerInterface. It translates HTTP requests into commands and queries
// and streams booking events to connected observers.
type Server struct {
	handlers       Handlers
	stream         ports.EventStream
	verifier       ports.IdentityVerifier
	logger         *slog.Logger
	observerBuffer int
}

// Option configures a Server.
type Option func(*Server)

// WithObserverBuffer sets how many events an SSE client may fall behind before it starts
// losing them.
func WithObserverBuffer(size int) Option {
	return func(s *Server) {
		if size > 0 {
			s.observerBuffer = size
		}
	}
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	handlers Handlers,
	stream ports.EventStream,
	verifier ports.IdentityVerifier,
	logger *slog.Logger,
	opts ...Option,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		handlers:       handlers,
		stream:         stream,
		verifier:       verifier,
		logger:         logger.With("component", "http"),
		observerBuffer: DefaultObserverBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func bookingView(b *booking.Booking, assignedTo string) ports.BookingView {
	return ports.BookingView{
		Booking:    b.Snapshot(),
		AssignedTo: assignedTo,
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/broadcast"
	"dispatch/internal/adapters/out/identity"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/journalrepo"
	"dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

const (
	DemoDriverID           = "DRV1"
	demoDriverName         = "Demo Rider"
	demoDriverCashCapacity = 10000
)

// CompositionRoot owns the process-wide state (the in-memory store and the event hub) and
// builds every handler on top of it.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	db         *memory.Database
	hub        *broadcast.Hub
	uowFactory *memory.UnitOfWorkFactory
	dispatcher services.BookingDispatcher
	policy     services.TransitionPolicy

	journalDB *gorm.DB
	journal   *journalrepo.GormEventJournal
	sinks     []ports.EventSink
}

// NewCompositionRoot validates the dispatch settings and creates an empty store.
// An unknown strategy or policy name is a startup error.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	strategy, err := services.NewAssignmentStrategy(cfg.DispatchStrategy)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPATCH_STRATEGY: %w", err)
	}

	policy, err := services.NewTransitionPolicy(cfg.StatusPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_POLICY: %w", err)
	}

	hub := broadcast.NewHub(logger)
	db := memory.NewDatabase(hub)

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		hub:        hub,
		uowFactory: memory.NewUnitOfWorkFactory(db),
		dispatcher: services.NewBookingDispatcher(strategy),
		policy:     policy,
	}, nil
}

// AttachSinks connects the configured external observers to the event hub. Each sink drains
// its own subscription until ctx is cancelled or the hub closes.
func (c *CompositionRoot) AttachSinks(ctx context.Context) error {
	if c.cfg.KafkaEnabled() {
		c.attach(ctx, kafka.NewProducer(c.cfg.KafkaHost, c.cfg.KafkaBookingEventsTopic))
	}

	if c.cfg.RedisEnabled() {
		c.attach(ctx, redis.NewPublisher(c.cfg.Redis()))
	}

	if c.cfg.JournalEnabled() {
		gormDB, err := postgres.Open(ctx, c.cfg.Postgres())
		if err != nil {
			return fmt.Errorf("failed to open event journal: %w", err)
		}
		c.journalDB = gormDB
		c.journal = journalrepo.NewGormEventJournal(gormDB)
		c.attach(ctx, c.journal)
	}

	return nil
}

func (c *CompositionRoot) attach(ctx context.Context, sink ports.EventSink) {
	c.hub.Attach(ctx, sink, c.cfg.ObserverBuffer)
	c.sinks = append(c.sinks, sink)
	c.logger.InfoContext(ctx, "Event sink attached", "sink", sink.Name())
}

// SeedDemoDriver registers the demo rider so a fresh process can dispatch right away.
func (c *CompositionRoot) SeedDemoDriver(ctx context.Context) error {
	cmd, err := commands.NewRegisterDriverCommand(DemoDriverID, demoDriverName, driver.Online, demoDriverCashCapacity)
	if err != nil {
		return err
	}

	_, err = c.CreateRegisterDriverCommandHandler().Handle(ctx, cmd)
	return err
}

// Close disconnects observers, waits for sinks to drain and releases their connections.
func (c *CompositionRoot) Close() error {
	c.hub.Close()

	var closeErrs []error
	for _, sink := range c.sinks {
		if err := sink.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("close %s: %w", sink.Name(), err))
		}
	}
	if c.journalDB != nil {
		if err := postgres.Close(c.journalDB); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("close event journal: %w", err))
		}
	}
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchBookingCommandHandler() commands.DispatchBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchBookingCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAutoDispatchCommandHandler() commands.AutoDispatchCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoDispatchCommandHandler(f, c.CreateDispatchBookingCommandHandler())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() commands.SetDriverAvailabilityCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDriverAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateReportDriverLocationCommandHandler() commands.ReportDriverLocationCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportDriverLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.db)
}

func (c *CompositionRoot) CreateGetDriverTasksQueryHandler() queries.GetDriverTasksQueryHandler {
	return queries.NewGetDriverTasksQueryHandler(c.db)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.db)
}

// CreateGetBookingEventsQueryHandler serves the event history from the journal. Without a
// journal the handler reports the history as disabled.
func (c *CompositionRoot) CreateGetBookingEventsQueryHandler() queries.GetBookingEventsQueryHandler {
	var history ports.EventHistory
	if c.journal != nil {
		history = c.journal
	}
	return queries.NewGetBookingEventsQueryHandler(c.db, history)
}

// CreateHTTPServer wires every use case into the HTTP adapter. Call it after AttachSinks so
// the event history can use the journal.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateBooking:         c.CreateCreateBookingCommandHandler(),
		DispatchBooking:       c.CreateDispatchBookingCommandHandler(),
		UpdateDeliveryStatus:  c.CreateUpdateDeliveryStatusCommandHandler(),
		RegisterDriver:        c.CreateRegisterDriverCommandHandler(),
		SetDriverAvailability: c.CreateSetDriverAvailabilityCommandHandler(),
		ReportDriverLocation:  c.CreateReportDriverLocationCommandHandler(),
		ListBookings:          c.CreateListBookingsQueryHandler(),
		GetBooking:            c.CreateGetBookingQueryHandler(),
		GetDriverTasks:        c.CreateGetDriverTasksQueryHandler(),
		ListDrivers:           c.CreateListDriversQueryHandler(),
		GetBookingEvents:      c.CreateGetBookingEventsQueryHandler(),
	}

	return httpin.NewServer(handlers, c.hub, identity.NewStaticOTPVerifier(c.cfg.OTPCode), c.logger,
		httpin.WithObserverBuffer(c.cfg.ObserverBuffer))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAutoDispatchCommandHandler(), c.cfg.AutoDispatchSchedule, c.logger)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

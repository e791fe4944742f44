package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err = app.AttachSinks(ctx); err != nil {
		log.Fatalf("Failed to attach event sinks: %v", err)
	}

	if configs.SeedDemoDriver {
		if err = app.SeedDemoDriver(ctx); err != nil {
			log.Fatalf("Failed to seed demo driver: %v", err)
		}
		logger.InfoContext(ctx, "Demo driver registered", "driverId", cmd.DemoDriverID)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := startWebServer(app, configs.HTTPPort, logger)

	<-ctx.Done()
	logger.Info("Shutting down")

	jobManager.StopAll()
	// closing the hub ends open event streams, which would otherwise hold Shutdown
	if err = app.Close(); err != nil {
		logger.Error("Failed to release resources", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file loaded, using the process environment", "error", err)
	}

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

// startWebServer starts serving in the background.
func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) *echo.Echo {
	e, err := httpin.NewEcho(app.CreateHTTPServer())
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		logger.Info("HTTP server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	return e
}

// Package postgres opens the GORM connection used by the event journal and migrates its
// schema. Booking state itself is not stored here; see the memory adapter.
package postgres

import (
	"context"
	"fmt"

	"dispatch/internal/adapters/out/postgres/journalrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN renders the key/value connection string understood by the postgres driver.
func (c Config) DSN() string {
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := c.Port
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, port, c.User, c.Password, c.Name, sslMode,
	)
}

// Open connects, checks the connection and migrates the journal schema.
//
// Example:
//
//	db, err := postgres.Open(ctx, postgres.Config{Host: "localhost", User: "app", Name: "dispatch"})
//	if err != nil {
//	    log.Fatalf("failed to open journal database: %v", err)
//	}
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the journal tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&journalrepo.EventDTO{}); err != nil {
		return fmt.Errorf("failed to migrate journal schema: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

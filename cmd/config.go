package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/redis"
)

// Config is read from the environment (and an optional .env file) with envconfig.
type Config struct {
	HTTPPort       string `envconfig:"HTTP_PORT" default:"10000"`
	SeedDemoDriver bool   `envconfig:"SEED_DEMO_DRIVER" default:"true"`

	DispatchStrategy     string `envconfig:"DISPATCH_STRATEGY" default:"first_online"`
	StatusPolicy         string `envconfig:"STATUS_POLICY" default:"forward"`
	AutoDispatchSchedule string `envconfig:"AUTO_DISPATCH_SCHEDULE"`
	ObserverBuffer       int    `envconfig:"OBSERVER_BUFFER" default:"64"`
	OTPCode              string `envconfig:"OTP_CODE" default:"123456"`

	KafkaHost               string `envconfig:"KAFKA_HOST"`
	KafkaBookingEventsTopic string `envconfig:"KAFKA_BOOKING_EVENTS_TOPIC" default:"booking.events"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisChannel  string `envconfig:"REDIS_CHANNEL" default:"booking-events"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// KafkaEnabled reports whether events are forwarded to Kafka.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != ""
}

// RedisEnabled reports whether events are published to Redis.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// JournalEnabled reports whether events are recorded in Postgres.
func (c Config) JournalEnabled() bool {
	return c.DBHost != ""
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SslMode:  c.DBSslMode,
	}
}

func (c Config) Redis() redis.Config {
	return redis.Config{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
		Channel:  c.RedisChannel,
	}
}

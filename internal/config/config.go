package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/SamuelUes/rundi-platform/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth selects how bearer credentials are verified (AUTH_*).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Firebase holds the Firebase project used for ID tokens and FCM
	// (FIREBASE_*).
	Firebase configs.Firebase `envPrefix:"FIREBASE_"`

	// Push tunes campaign delivery (PUSH_*).
	Push configs.Push `envPrefix:"PUSH_"`

	// Kafka configures delivery event publishing (KAFKA_*).
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	// Campaign tunes campaign management (CAMPAIGN_*).
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config.
// Variables from a .env file in the working directory are loaded first
// when the file exists; variables already set in the environment win.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	switch c.Auth.Provider {
	case configs.AuthProviderJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is required with the jwt auth provider")
		}
	case configs.AuthProviderFirebase:
	default:
		return errors.New("AUTH_PROVIDER must be jwt or firebase")
	}
	switch c.Push.Transport {
	case configs.PushTransportFCM, configs.PushTransportLog:
	default:
		return errors.New("PUSH_TRANSPORT must be fcm or log")
	}
	return nil
}

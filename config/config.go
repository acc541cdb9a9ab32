// Package config loads settings from the environment, connects the database
// and builds the logger.
//
// Variables use the CATALOG_ prefix and a double underscore between nested
// keys, e.g. CATALOG_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns.
// A .env file in the working directory is loaded first when present.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/juju/errors"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CATALOG_"

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development production test"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth" validate:"required"`
	Log      LogConfig      `koanf:"log"`
	Audit    AuditConfig    `koanf:"audit"`
}

type ServerConfig struct {
	Port                 string        `koanf:"port" validate:"required"`
	CORSAllowedOrigins   []string      `koanf:"cors_allowed_origins"`
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold" validate:"gte=0"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"gte=0"`
}

type AuthConfig struct {
	JWTSecret  string        `koanf:"jwt_secret" validate:"required,min=32"`
	TokenTTL   time.Duration `koanf:"token_ttl" validate:"gt=0"`
	BcryptCost int           `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`
}

type LogConfig struct {
	Level      string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	Compress   bool   `koanf:"compress"`
}

type AuditConfig struct {
	// Schedule is a five-field cron expression; empty disables the audit.
	Schedule string `koanf:"schedule"`
}

// Default returns the settings used for anything the environment leaves unset.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:                 "8080",
			CORSAllowedOrigins:   []string{"http://localhost:3000"},
			SlowRequestThreshold: 200 * time.Millisecond,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    100,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: time.Minute,
		},
		Auth: AuthConfig{
			TokenTTL:   24 * time.Hour,
			BcryptCost: 12,
		},
		Log: LogConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			Compress:   true,
		},
		Audit: AuditConfig{
			Schedule: "0 3 * * *",
		},
	}
}

// Load reads .env (if any) and the environment over Default and validates the
// result.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Annotate(err, "loading environment")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Annotate(err, "decoding config")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.NewNotValid(err, "invalid config")
	}
	return cfg, nil
}

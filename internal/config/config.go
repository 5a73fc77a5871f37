// Package config provides centralized configuration management for the importer.
// It loads configuration from environment variables with defaults matching the
// historical import setup and validates all settings before any work starts.
package config

import (
	"math"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is a full PostgreSQL connection string. When set it takes precedence
	// over the individual connection fields below.
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// Host is the database server host (default: localhost)
	Host string `env:"DB_HOST" default:"localhost"`

	// Port is the database server port (default: 1906)
	Port int `env:"DB_PORT" default:"1906"`

	// Name is the database name (default: manager_finansow)
	Name string `env:"DB_NAME" default:"manager_finansow"`

	// User is the database role (default: postgres)
	User string `env:"DB_USER" default:"postgres"`

	// Password is read from the PG_PASSWORD secret, usually provided via .env
	Password string `env:"PG_PASSWORD"`

	// ConnectTimeout bounds the initial connection attempt (default: 10s)
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// ImportConfig holds settings for a single archive import run.
type ImportConfig struct {
	// File is the path of the CSV export to import
	File string `env:"IMPORT_FILE" default:"statystyki archiwalne - Arkusz1.csv"`

	// Year is stamped on every imported record (default: 2025)
	Year int `env:"IMPORT_YEAR" default:"2025"`

	// Table is the destination table (default: archived_statistics)
	Table string `env:"IMPORT_TABLE" default:"archived_statistics"`

	// MissingMarker is the literal the sheet uses for months without data (default: brak)
	MissingMarker string `env:"IMPORT_MISSING_MARKER" default:"brak"`

	// Timeout bounds the whole run; zero means no limit (default: 0s)
	Timeout time.Duration `env:"IMPORT_TIMEOUT" default:"0s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ConnString returns the connection string to hand to pgx.
// URL wins when present; otherwise a postgres:// URL is assembled from the parts.
func (c *DatabaseConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.ConnectTimeout > 0 {
		q := url.Values{}
		// connect_timeout is whole seconds and 0 disables it, so round up
		q.Set("connect_timeout", strconv.Itoa(int(math.Ceil(c.ConnectTimeout.Seconds()))))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

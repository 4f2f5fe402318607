// Package config reads PORTFOLIO_* settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// Config holds the application settings.
type Config struct {
	// DBDriver is "sqlite" or "pgx".
	DBDriver string `env:"PORTFOLIO_DB_DRIVER" envDefault:"sqlite"`
	// DB is a SQLite file path or a Postgres connection string. SQLite
	// defaults to ~/.portfolio/portfolio.db.
	DB string `env:"PORTFOLIO_DB"`
	// ProfilesPath points to a YAML specialty catalog. Empty uses the
	// built-in catalog.
	ProfilesPath string `env:"PORTFOLIO_PROFILES"`
	UserID       int64  `env:"PORTFOLIO_USER_ID" envDefault:"1"`
	LogLevel     string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"warn"`
	// LogFile receives JSON logs in addition to stderr.
	LogFile string `env:"PORTFOLIO_LOG_FILE"`
	// Strict makes achievement catalog failures fail the command.
	Strict bool `env:"PORTFOLIO_STRICT"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom parses settings from environ only. Used by tests.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) finish() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case db.DriverSQLite:
		if c.DB == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			c.DB = filepath.Join(home, ".portfolio", "portfolio.db")
		}
	case db.DriverPostgres:
		if c.DB == "" {
			return errors.New("PORTFOLIO_DB is required for the pgx driver")
		}
	default:
		return fmt.Errorf("unsupported PORTFOLIO_DB_DRIVER %q (use sqlite or pgx)", c.DBDriver)
	}
	if c.UserID <= 0 {
		c.UserID = domain.DefaultUserID
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid PORTFOLIO_LOG_LEVEL %q", s)
	}
	return l, nil
}

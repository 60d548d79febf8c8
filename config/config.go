// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server controls the HTTP server. Command-line flags in cmd/server
// override these values.
type Server struct {
	Port            int           `env:"DAYCOUNT_PORT"                 envDefault:"8080"`
	DBPath          string        `env:"DAYCOUNT_DB"                   envDefault:"daycount.db"`
	SeedFile        string        `env:"DAYCOUNT_SEED_FILE"`
	SeedReload      time.Duration `env:"DAYCOUNT_SEED_RELOAD_INTERVAL" envDefault:"0s"`
	LoadPresets     bool          `env:"DAYCOUNT_LOAD_PRESETS"         envDefault:"false"`
	CORSOrigins     []string      `env:"DAYCOUNT_CORS_ORIGINS"         envDefault:"http://localhost:5173,http://localhost:8080" envSeparator:","`
	LogLevel        string        `env:"DAYCOUNT_LOG_LEVEL"            envDefault:"info"`
	LogFormat       string        `env:"DAYCOUNT_LOG_FORMAT"           envDefault:"text"`
	ReadTimeout     time.Duration `env:"DAYCOUNT_READ_TIMEOUT"         envDefault:"15s"`
	WriteTimeout    time.Duration `env:"DAYCOUNT_WRITE_TIMEOUT"        envDefault:"15s"`
	IdleTimeout     time.Duration `env:"DAYCOUNT_IDLE_TIMEOUT"         envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"DAYCOUNT_SHUTDOWN_TIMEOUT"     envDefault:"30s"`
}

// Load parses the server configuration from environment variables.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Server{}, fmt.Errorf("parse env: DAYCOUNT_PORT %d out of range", cfg.Port)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level; unknown values mean info.
func (s Server) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

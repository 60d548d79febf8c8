/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the day count server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration from the environment, then apply flags
  2. Initialize SQLite store
  3. Store the built-in presets, then the YAML seed file
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: DAYCOUNT_PORT or 8080)
  -db        SQLite database path (default: DAYCOUNT_DB or daycount.db)
             Use ":memory:" for in-memory database
  -seed      YAML seed file of bases (default: DAYCOUNT_SEED_FILE)
             Reloaded on change every DAYCOUNT_SEED_RELOAD_INTERVAL
  -presets   Store the built-in market bases at startup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (DAYCOUNT_SHUTDOWN_TIMEOUT)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/daycount.db"

  # Run in memory with the market presets
  ./server -db=":memory:" -presets

  # Seed bases from a file
  ./server -seed=bases.yaml

SEE ALSO:
  - config/config.go: Environment variables
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/warp/daycount/api"
	"github.com/warp/daycount/config"
	"github.com/warp/daycount/store/sqlite"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment.
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flag.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML seed file of bases")
	flag.BoolVar(&cfg.LoadPresets, "presets", cfg.LoadPresets, "store the built-in market bases")
	flag.Parse()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Initialize store
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer store.Close()

	handler := api.NewHandler(store, logger)
	if err := seedPresets(context.Background(), handler, cfg); err != nil {
		return err
	}

	// The seed file is applied after the presets so it can override them.
	if cfg.SeedFile != "" {
		reloader := api.NewSeedReloader(handler, cfg.SeedFile, cfg.SeedReload)
		if _, err := reloader.RunNow(context.Background()); err != nil {
			return fmt.Errorf("seed file %s: %w", cfg.SeedFile, err)
		}
		reloader.Start()
		defer reloader.Stop()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.NewRouter(handler, cfg.CORSOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr, "db", cfg.DBPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func seedPresets(ctx context.Context, h *api.Handler, cfg config.Server) error {
	if !cfg.LoadPresets {
		return nil
	}
	bases, err := h.BasisFactory.PresetBases()
	if err != nil {
		return err
	}
	return h.SeedBases(ctx, bases)
}

func newLogger(cfg config.Server) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

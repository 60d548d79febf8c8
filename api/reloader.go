/*
reloader.go - Seed file reloader

PURPOSE:
  Periodically re-reads the basis seed file and stores its bases again
  when the file has changed, so desks can edit bases without a restart.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Detects changes by file modification time
  - A file that fails to parse is logged and skipped; stored bases stay
  - Bases removed from the file are not deleted from the store

CONFIGURATION:
  - Interval: How often to check (DAYCOUNT_SEED_RELOAD_INTERVAL; 0 disables)

USAGE:
  reloader := NewSeedReloader(handler, "bases.yaml", time.Minute)
  reloader.Start()
  // ... later
  reloader.Stop()

SEE ALSO:
  - handlers.go: SeedBases
  - factory/basis.go: Seed file format
*/
package api

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// SeedReloader re-applies a seed file when it changes.
type SeedReloader struct {
	Handler  *Handler
	Path     string
	Interval time.Duration

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex

	reloadMu sync.Mutex
	modTime  time.Time
}

// NewSeedReloader creates a new reloader.
func NewSeedReloader(handler *Handler, path string, interval time.Duration) *SeedReloader {
	return &SeedReloader{
		Handler:  handler,
		Path:     path,
		Interval: interval,
	}
}

// Start begins polling. It is a no-op without a path or interval, or when
// already running. A stopped reloader can be started again.
func (sr *SeedReloader) Start() {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if sr.Path == "" || sr.Interval <= 0 {
		sr.Handler.Logger.Debug("seed reloader disabled")
		return
	}
	if sr.ticker != nil {
		return
	}

	sr.ticker = time.NewTicker(sr.Interval)
	sr.stop = make(chan struct{})
	sr.wg.Add(1)
	go sr.run(sr.ticker, sr.stop)

	sr.Handler.Logger.Info("seed reloader started", "path", sr.Path, "interval", sr.Interval)
}

// Stop stops polling and waits for an in-flight reload.
func (sr *SeedReloader) Stop() {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if sr.ticker != nil {
		sr.ticker.Stop()
		close(sr.stop)
		sr.wg.Wait()
		sr.ticker = nil
		sr.Handler.Logger.Info("seed reloader stopped")
	}
}

func (sr *SeedReloader) run(ticker *time.Ticker, stop <-chan struct{}) {
	defer sr.wg.Done()

	for {
		select {
		case <-ticker.C:
			if _, err := sr.RunNow(context.Background()); err != nil {
				sr.Handler.Logger.Warn("seed reload failed", "path", sr.Path, "error", err)
			}
		case <-stop:
			return
		}
	}
}

// RunNow reloads the file if its modification time moved and reports
// whether bases were stored.
func (sr *SeedReloader) RunNow(ctx context.Context) (bool, error) {
	sr.reloadMu.Lock()
	defer sr.reloadMu.Unlock()

	info, err := os.Stat(sr.Path)
	if err != nil {
		return false, fmt.Errorf("stat seed file: %w", err)
	}
	if info.ModTime().Equal(sr.modTime) {
		return false, nil
	}

	data, err := os.ReadFile(sr.Path)
	if err != nil {
		return false, fmt.Errorf("read seed file: %w", err)
	}
	bases, err := sr.Handler.BasisFactory.ParseYAML(data)
	if err != nil {
		return false, err
	}
	if err := sr.Handler.SeedBases(ctx, bases); err != nil {
		return false, err
	}

	sr.modTime = info.ModTime()
	return true, nil
}

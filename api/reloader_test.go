package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/daycount/basis"
)

const seedV1 = `bases:
  - id: usd-fixed
    name: USD fixed
    convention: 30/360
`

const seedV2 = `bases:
  - id: usd-fixed
    name: USD fixed
    convention: ACT/360
`

func TestSeedReloader_RunNow(t *testing.T) {
	h, _ := newTestServer(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedV1), 0o644))

	sr := NewSeedReloader(h, path, time.Minute)

	changed, err := sr.RunNow(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	b, err := h.Store.GetBasis(ctx, "usd-fixed")
	require.NoError(t, err)
	assert.Equal(t, "30/360", string(b.Code))

	// Unchanged file is skipped.
	changed, err = sr.RunNow(ctx)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte(seedV2), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	changed, err = sr.RunNow(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	b, err = h.Store.GetBasis(ctx, basis.ID("usd-fixed"))
	require.NoError(t, err)
	assert.Equal(t, "ACT/360", string(b.Code))
	assert.Equal(t, 2, b.Version)
}

func TestSeedReloader_InvalidFileKeepsBases(t *testing.T) {
	h, _ := newTestServer(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedV1), 0o644))

	sr := NewSeedReloader(h, path, time.Minute)
	_, err := sr.RunNow(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("bases:\n  - id: x\n    convention: ACT/999\n"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	_, err = sr.RunNow(ctx)
	assert.Error(t, err)

	_, err = h.Store.GetBasis(ctx, "usd-fixed")
	assert.NoError(t, err)
}

func TestSeedReloader_StartStop(t *testing.T) {
	h, _ := newTestServer(t)

	// Disabled without interval.
	NewSeedReloader(h, "bases.yaml", 0).Start()

	path := filepath.Join(t.TempDir(), "bases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedV1), 0o644))

	sr := NewSeedReloader(h, path, 10*time.Millisecond)
	sr.Start()
	assert.Eventually(t, func() bool {
		_, err := h.Store.GetBasis(context.Background(), "usd-fixed")
		return err == nil
	}, time.Second, 10*time.Millisecond)
	sr.Stop()
	sr.Stop()
}

func TestSeedReloader_Restart(t *testing.T) {
	h, _ := newTestServer(t)
	path := filepath.Join(t.TempDir(), "bases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedV1), 0o644))

	sr := NewSeedReloader(h, path, 10*time.Millisecond)
	sr.Start()
	sr.Start()
	sr.Stop()

	sr.Start()
	assert.NotPanics(t, sr.Stop)
	assert.NotPanics(t, sr.Stop)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConventions(t *testing.T) {
	out, err := execute(t, "conventions")
	require.NoError(t, err)
	assert.Contains(t, out, "ACT/365F")
	assert.Contains(t, out, "Actual/365 (Fixed)")
	assert.Contains(t, out, "required")
}

func TestFraction(t *testing.T) {
	out, err := execute(t, "fraction", "-c", "ACT/360", "-s", "2024-01-01", "-e", "2024-07-01", "-p", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "182 days")
	assert.Contains(t, out, "0.505556")
}

func TestFraction_ThirtyE360ISDA(t *testing.T) {
	_, err := execute(t, "fraction", "-c", "30E/360-ISDA", "-s", "2024-01-31", "-e", "2024-02-29")
	assert.Error(t, err)

	out, err := execute(t, "fraction", "-c", "30E/360-ISDA", "-s", "2024-01-31", "-e", "2024-02-29", "-t", "2024-02-29", "-p", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0805555556")
}

func TestFraction_InvalidDate(t *testing.T) {
	_, err := execute(t, "fraction", "-c", "ACT/360", "-s", "2024-02-31", "-e", "2024-03-01")
	assert.Error(t, err)
}

func TestSchedule(t *testing.T) {
	out, err := execute(t, "schedule", "-c", "30/360", "-p", "2", "2024-01-15", "2024-07-15", "2025-01-15")
	require.NoError(t, err)
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "1.00")

	_, err = execute(t, "schedule", "-c", "30/360", "2025-01-15", "2024-01-15")
	assert.Error(t, err)
}

func TestBasesValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`bases:
  - id: usd-fixed
    name: USD fixed
    convention: 30/360
  - id: eur-isda
    name: EUR ISDA
    convention: 30E/360 ISDA
    termination_date: "2030-02-28"
`), 0o644))

	out, err := execute(t, "bases", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "30E/360-ISDA")
	assert.Contains(t, out, "OK (2 bases)")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`bases:
  - id: eur-isda
    convention: 30E/360-ISDA
`), 0o644))
	_, err = execute(t, "bases", "validate", bad)
	assert.Error(t, err)
}

func TestBasesPresets(t *testing.T) {
	out, err := execute(t, "bases", "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "usd-sofr")
	assert.Contains(t, out, "ACT/360")
}

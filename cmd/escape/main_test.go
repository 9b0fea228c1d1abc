package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escapepath/config"
)

const smallConfig = `
vertices: [[0, 0], [40, 0], [40, 30], [0, 30]]
solver:
  seed: 3
  steps: 20
  heading_count: 4
  bulk_count: 6
  line_sample_density: 2
policy:
  window: 3
  max_steps: 6
`

func TestRun_ConfigAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "room.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(smallConfig), 0o600))
	out := filepath.Join(dir, "room.png")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(context.Background(), logger, cfg, 9, true, 2, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRun_BadConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(context.Background(), logger, "room.toml", 0, false, 0, "")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestLoad_DemoRoom(t *testing.T) {
	b, opts, policy, err := load("")
	require.NoError(t, err)
	assert.NoError(t, b.Validate(opts.CloseTol))
	assert.Greater(t, policy.MaxSteps, 0)
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, slog.LevelWarn, false))
	log.Info("hidden")
	log.Warn("shown", "check", "fence")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "check=fence")
	assert.NotContains(t, out, "\x1b[")
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, slog.LevelDebug, true))
	log.Error("boom")
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "msg=boom")
	assert.NotContains(t, out, "level=")
}

func TestUseColor(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "log"))
	require.NoError(t, err)
	defer file.Close()

	assert.True(t, useColor("always", file))
	assert.False(t, useColor("never", file))
	assert.False(t, useColor("auto", file), "regular files are not terminals")
}

func TestNewLogger(t *testing.T) {
	cfg := defaultConfig
	cfg.LogLevel = "nonsense"
	_, err := newLogger(os.Stderr, cfg)
	assert.Error(t, err)

	cfg.LogLevel = "debug"
	cfg.Color = "never"
	log, err := newLogger(os.Stderr, cfg)
	require.NoError(t, err)
	assert.True(t, log.Enabled(t.Context(), slog.LevelDebug))
}

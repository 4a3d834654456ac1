// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("glinfo", flag.ContinueOnError)
	for _, fl := range appFlags {
		require.NoError(t, fl.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(app, set, nil)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "glinfo.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := makeConfig(newContext(t))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, cfg)
}

func TestConfigFileAndFlags(t *testing.T) {
	file := writeConfig(t, `
width = 128
height = 32
log_level = "debug"
color = "never"
fence_timeout = "500ms"
`)
	cfg, err := makeConfig(newContext(t, "-config", file, "-height", "16", "-extensions"))
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 16, cfg.Height, "flags override the file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 500*time.Millisecond, cfg.FenceTimeout.Duration)
	assert.True(t, cfg.Extensions)
	assert.False(t, cfg.Debug)
}

func TestConfigUnknownField(t *testing.T) {
	file := writeConfig(t, "widht = 10\n")
	_, err := makeConfig(newContext(t, "-config", file))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "widht"`)
}

func TestConfigInvalid(t *testing.T) {
	tests := [][]string{
		{"-width", "0"},
		{"-height", "-3"},
		{"-verbosity", "loud"},
		{"-color", "sometimes"},
		{"-fence-timeout", "0s"},
	}
	for _, args := range tests {
		if _, err := makeConfig(newContext(t, args...)); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
	file := writeConfig(t, `fence_timeout = "soon"`)
	_, err := makeConfig(newContext(t, "-config", file))
	assert.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	var buf bytes.Buffer
	saved := app.Writer
	app.Writer = &buf
	defer func() { app.Writer = saved }()

	require.NoError(t, app.Run([]string{"glinfo", "-width", "256", "dumpconfig"}))
	out := buf.String()
	assert.Contains(t, out, "width = 256")
	assert.Contains(t, out, `fence_timeout = "2s"`)
	assert.NotContains(t, out, "wgsl")

	var cfg Config
	_, err := toml.Decode(out, &cfg)
	require.NoError(t, err)
	want := defaultConfig
	want.Width = 256
	assert.Equal(t, want, cfg)
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// Config is the glinfo configuration. The TOML file is optional; flags
// given on the command line take precedence.
type Config struct {
	Width        int      `toml:"width"`
	Height       int      `toml:"height"`
	Debug        bool     `toml:"debug"`
	LogLevel     string   `toml:"log_level"`
	Color        string   `toml:"color"`
	WGSL         string   `toml:"wgsl,omitempty"`
	Extensions   bool     `toml:"extensions"`
	FenceTimeout duration `toml:"fence_timeout"`
}

// duration is a time.Duration written as a string such as "2s".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var defaultConfig = Config{
	Width:        64,
	Height:       64,
	LogLevel:     "info",
	Color:        "auto",
	FenceTimeout: duration{2 * time.Second},
}

var dumpConfigCommand = &cli.Command{
	Name:  "dumpconfig",
	Usage: "print the effective configuration as TOML",
	Action: func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		return toml.NewEncoder(ctx.App.Writer).Encode(cfg)
	},
}

// makeConfig loads the configuration file named by the config flag, if
// any, and applies the flags that were set explicitly.
func makeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig
	if file := ctx.String(configFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyFlags(ctx, &cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfig(file string, cfg *Config) error {
	md, err := toml.DecodeFile(file, cfg)
	if err != nil {
		return err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("%s: unknown field %q", file, keys[0].String())
	}
	return nil
}

func applyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.LogLevel = ctx.String(verbosityFlag.Name)
	}
	if ctx.IsSet(colorFlag.Name) {
		cfg.Color = ctx.String(colorFlag.Name)
	}
	if ctx.IsSet(wgslFlag.Name) {
		cfg.WGSL = ctx.String(wgslFlag.Name)
	}
	if ctx.IsSet(extensionsFlag.Name) {
		cfg.Extensions = ctx.Bool(extensionsFlag.Name)
	}
	if ctx.IsSet(fenceTimeoutFlag.Name) {
		cfg.FenceTimeout.Duration = ctx.Duration(fenceTimeoutFlag.Name)
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.FenceTimeout.Duration <= 0 {
		return errors.New("fence timeout must be positive")
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

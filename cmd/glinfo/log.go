// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func newLogger(out *os.File, cfg Config) (*slog.Logger, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	var w io.Writer = out
	colored := useColor(cfg.Color, out)
	if colored {
		w = colorable.NewColorable(out)
	}
	return slog.New(newHandler(w, level, colored)), nil
}

func useColor(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	fd := out.Fd()
	return (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
}

// newHandler returns a text handler. When colored, the level is written
// as a colored prefix instead of a level attribute.
func newHandler(w io.Writer, level slog.Level, colored bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if !colored {
		return slog.NewTextHandler(w, opts)
	}
	opts.ReplaceAttr = dropLevel
	return &colorHandler{Handler: slog.NewTextHandler(w, opts), w: w, mu: new(sync.Mutex)}
}

func dropLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}
	return a
}

type colorHandler struct {
	slog.Handler
	w  io.Writer
	mu *sync.Mutex
}

func (h *colorHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	c := levelColor(r.Level)
	c.EnableColor()
	if _, err := c.Fprintf(h.w, "%-5s ", r.Level); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, r)
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithAttrs(attrs), w: h.w, mu: h.mu}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithGroup(name), w: h.w, mu: h.mu}
}

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case l >= slog.LevelInfo:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgHiBlack)
	}
}

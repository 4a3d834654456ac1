// SPDX-License-Identifier: Unlicense OR MIT

// Command glinfo opens a hidden OpenGL 4.6 core context, reports what the
// driver exposes and runs each wrapper of package gl against it.
//
// Flags override the values of the optional TOML configuration file:
//
//	glinfo -config glinfo.toml -v debug -debug
//	glinfo dumpconfig > glinfo.toml
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"glutils.org/gl"
	"glutils.org/gl/gogl"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration `file`",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "width of the window and the test texture",
		Value: defaultConfig.Width,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "height of the window and the test texture",
		Value: defaultConfig.Height,
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "request a debug context and log driver messages",
	}
	verbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log `level`: debug, info, warn or error",
		Value:   defaultConfig.LogLevel,
	}
	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "colorize log output: auto, always or never",
		Value: defaultConfig.Color,
	}
	wgslFlag = &cli.StringFlag{
		Name:  "wgsl",
		Usage: "compile the WGSL compute shader in `file` through SPIR-V",
	}
	extensionsFlag = &cli.BoolFlag{
		Name:  "extensions",
		Usage: "list every supported extension",
	}
	fenceTimeoutFlag = &cli.DurationFlag{
		Name:  "fence-timeout",
		Usage: "how long to wait for the GPU to signal a fence",
		Value: defaultConfig.FenceTimeout.Duration,
	}
)

var appFlags = []cli.Flag{
	configFlag,
	widthFlag,
	heightFlag,
	debugFlag,
	verbosityFlag,
	colorFlag,
	wgslFlag,
	extensionsFlag,
	fenceTimeoutFlag,
}

var app = &cli.App{
	Name:     "glinfo",
	Usage:    "report on the OpenGL driver and exercise the gl wrappers",
	Flags:    appFlags,
	Action:   glinfo,
	Commands: []*cli.Command{dumpConfigCommand},
}

func init() {
	// GLFW and the OpenGL threading model need main on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func glinfo(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	log, err := newLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}
	gl.SetLogger(log)

	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	defer closeWindow(win)

	f, ver, err := gogl.Init(gogl.Options{Debug: cfg.Debug, Logger: log})
	if err != nil {
		return err
	}
	log.Debug("context current", "version", fmt.Sprintf("%d.%d", ver/10, ver%10))

	info, err := queryInfo(f)
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	info.write(out, cfg.Extensions)
	fmt.Fprintln(out)

	results := runChecks(ctx.Context, f, cfg, log)
	writeResults(out, results)
	if n := failed(results); n > 0 {
		return fmt.Errorf("%d of %d checks failed", n, len(results))
	}
	return nil
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// openWindow creates an invisible window with a 4.6 core context and
// makes the context current on the calling thread.
func openWindow(cfg Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, "glinfo", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}
	win.MakeContextCurrent()
	return win, nil
}

func closeWindow(win *glfw.Window) {
	win.Destroy()
	glfw.Terminate()
}

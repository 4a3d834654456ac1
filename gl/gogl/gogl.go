// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the OpenGL 4.6 core
// bindings of github.com/go-gl/gl.
package gogl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

// Functions calls the entry points of the context current on the calling
// thread.
type Functions struct {
	debug func(glu.DebugMessage)
	// uniformf is indexed by component count minus one.
	uniformf  [4]func(program uint32, location int32, count int32, value *float32)
	uniformi  [4]func(program uint32, location int32, count int32, value *int32)
	uniformui [4]func(program uint32, location int32, count int32, value *uint32)
	uniformd  [4]func(program uint32, location int32, count int32, value *float64)
	// matrixf is indexed by [cols-2][rows-2].
	matrixf [3][3]func(program uint32, location int32, count int32, transpose bool, value *float32)
	matrixd [3][3]func(program uint32, location int32, count int32, transpose bool, value *float64)
}

// Options configure Init.
type Options struct {
	// Debug enables synchronous debug output.
	Debug bool
	// Logger receives debug messages when Debug is set. Nil means
	// slog.Default.
	Logger *slog.Logger
}

var errNoVersion = errors.New("gogl: context does not report a version")

// Init loads the entry points of the current context. It returns the
// function table and the context version as major*10+minor.
func Init(opts Options) (*Functions, int, error) {
	if err := gl.Init(); err != nil {
		return nil, 0, fmt.Errorf("gogl: %w", err)
	}
	f := New()
	ver, err := glu.ContextVersion(f)
	if err != nil {
		return nil, 0, err
	}
	if ver == 0 {
		return nil, 0, errNoVersion
	}
	if ver < 45 {
		return nil, ver, fmt.Errorf("gogl: OpenGL %d.%d does not support direct state access", ver/10, ver%10)
	}
	if opts.Debug {
		l := opts.Logger
		if l == nil {
			l = slog.Default()
		}
		glu.EnableDebugOutput(f, glu.LogDebugMessages(l))
	}
	return f, ver, nil
}

// New returns a table for already loaded entry points.
func New() *Functions {
	return &Functions{
		uniformf:  [4]func(uint32, int32, int32, *float32){gl.ProgramUniform1fv, gl.ProgramUniform2fv, gl.ProgramUniform3fv, gl.ProgramUniform4fv},
		uniformi:  [4]func(uint32, int32, int32, *int32){gl.ProgramUniform1iv, gl.ProgramUniform2iv, gl.ProgramUniform3iv, gl.ProgramUniform4iv},
		uniformui: [4]func(uint32, int32, int32, *uint32){gl.ProgramUniform1uiv, gl.ProgramUniform2uiv, gl.ProgramUniform3uiv, gl.ProgramUniform4uiv},
		uniformd:  [4]func(uint32, int32, int32, *float64){gl.ProgramUniform1dv, gl.ProgramUniform2dv, gl.ProgramUniform3dv, gl.ProgramUniform4dv},
		matrixf: [3][3]func(uint32, int32, int32, bool, *float32){
			{gl.ProgramUniformMatrix2fv, gl.ProgramUniformMatrix2x3fv, gl.ProgramUniformMatrix2x4fv},
			{gl.ProgramUniformMatrix3x2fv, gl.ProgramUniformMatrix3fv, gl.ProgramUniformMatrix3x4fv},
			{gl.ProgramUniformMatrix4x2fv, gl.ProgramUniformMatrix4x3fv, gl.ProgramUniformMatrix4fv},
		},
		matrixd: [3][3]func(uint32, int32, int32, bool, *float64){
			{gl.ProgramUniformMatrix2dv, gl.ProgramUniformMatrix2x3dv, gl.ProgramUniformMatrix2x4dv},
			{gl.ProgramUniformMatrix3x2dv, gl.ProgramUniformMatrix3dv, gl.ProgramUniformMatrix3x4dv},
			{gl.ProgramUniformMatrix4x2dv, gl.ProgramUniformMatrix4x3dv, gl.ProgramUniformMatrix4dv},
		},
	}
}

// ptr returns a pointer to the first byte of b, or nil if b is empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (f *Functions) GetError() glu.Enum {
	return glu.Enum(gl.GetError())
}

func (f *Functions) GetString(pname glu.Enum) string {
	if pname == glu.EXTENSIONS {
		// Core profiles only support glGetStringi(GL_EXTENSIONS, <index>).
		var exts []string
		n := f.GetInteger(glu.NUM_EXTENSIONS)
		for i := 0; i < n; i++ {
			exts = append(exts, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
		}
		return strings.Join(exts, " ")
	}
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (f *Functions) GetInteger(pname glu.Enum) int {
	var p [4]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *Functions) Enable(cap glu.Enum) {
	gl.Enable(uint32(cap))
}

func (f *Functions) Disable(cap glu.Enum) {
	gl.Disable(uint32(cap))
}

func (f *Functions) ObjectLabel(identifier glu.Enum, name uint, label string) {
	if label == "" {
		gl.ObjectLabel(uint32(identifier), uint32(name), 0, nil)
		return
	}
	b := []byte(label)
	gl.ObjectLabel(uint32(identifier), uint32(name), int32(len(b)), &b[0])
}

func (f *Functions) DebugMessageCallback(cb func(glu.DebugMessage)) {
	f.debug = cb
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if f.debug == nil {
			return
		}
		f.debug(glu.DebugMessage{
			Source:   glu.Enum(source),
			Type:     glu.Enum(gltype),
			ID:       uint(id),
			Severity: glu.Enum(severity),
			Message:  message,
		})
	}, nil)
}

func (f *Functions) DebugMessageInsert(m glu.DebugMessage) {
	b := []byte(m.Message)
	if len(b) == 0 {
		return
	}
	gl.DebugMessageInsert(uint32(m.Source), uint32(m.Type), uint32(m.ID), uint32(m.Severity), int32(len(b)), &b[0])
}

var _ glu.Functions = (*Functions)(nil)

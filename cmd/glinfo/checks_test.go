// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newRecorder returns a table whose programs reflect the resources of
// the gio and glsl checks.
func newRecorder() *gltest.Recorder {
	f := gltest.New()
	f.OnLink = func(p gl.Program) {
		f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "_block.uvTransform", Props: map[gl.Enum]int32{gl.LOCATION: 1}})
		f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "_block.subUVTransform", Props: map[gl.Enum]int32{gl.LOCATION: 2}})
		f.AddResource(p, gl.UNIFORM_BLOCK, gltest.Resource{Name: "Transform", Props: map[gl.Enum]int32{gl.BUFFER_BINDING: 0}})
		f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "tint", Props: map[gl.Enum]int32{gl.LOCATION: 0}})
	}
	return f
}

func TestRunChecks(t *testing.T) {
	f := newRecorder()
	results := runChecks(context.Background(), f, defaultConfig, discard)
	require.Len(t, results, len(checks))
	for _, r := range results {
		want := "ok"
		if r.Name == "wgsl shader" {
			want = "skipped"
		}
		assert.Equal(t, want, r.Status(), "%s: %v", r.Name, r.Err)
		assert.NotEmpty(t, r.Detail(), r.Name)
	}
	assert.Zero(t, failed(results))
	assert.Zero(t, f.Live(), "every object is deleted")
	assert.Empty(t, f.Errors)

	var buf bytes.Buffer
	writeResults(&buf, results)
	assert.Contains(t, buf.String(), "64x64 RGBA8, 7 levels")
	assert.Contains(t, buf.String(), "block Transform at binding 1")
	assert.Contains(t, buf.String(), "intersect.vert + intersect.frag")
	assert.Contains(t, buf.String(), "2 uniforms")
	assert.Len(t, f.Called("ProgramUniformfv"), 3, "gio uniforms and the tint")
}

func TestCheckFenceFailure(t *testing.T) {
	f := newRecorder()
	f.SyncResults = []gl.Enum{gl.WAIT_FAILED}
	results := runChecks(context.Background(), f, defaultConfig, discard)
	assert.Equal(t, 1, failed(results))
	last := results[len(results)-1]
	assert.Equal(t, "fence", last.Name)
	assert.ErrorIs(t, last.Err, gl.ErrWaitFailed)
	assert.Contains(t, last.Detail(), "sync wait failed")
}

func TestCheckProgramCompileFailure(t *testing.T) {
	f := newRecorder()
	f.CompileFunc = func(typ gl.Enum, src string) (string, bool) {
		if strings.Contains(src, "xform") {
			return "0:4(3): error: `xform' undeclared\n", false
		}
		return "", true
	}
	_, err := checkGLSLProgram(context.Background(), f, defaultConfig)
	var cerr *gl.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, gl.VertexShader, cerr.Type)
	assert.Zero(t, f.Live())
}

func TestCheckGioProgramInactiveUniform(t *testing.T) {
	f := gltest.New()
	_, err := checkGioProgram(context.Background(), f, defaultConfig)
	require.ErrorIs(t, err, gl.ErrNotFound)
	assert.Contains(t, err.Error(), "_block.uvTransform")
	assert.Zero(t, f.Live())
}

func TestCheckWGSLMissingFile(t *testing.T) {
	cfg := defaultConfig
	cfg.WGSL = filepath.Join(t.TempDir(), "missing.wgsl")
	_, err := checkWGSL(context.Background(), gltest.New(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGLSLSources(t *testing.T) {
	vert, frag := glslSources()
	assert.True(t, strings.HasPrefix(vert, "#version 460 core\n"))
	assert.Contains(t, vert, "layout(std140, binding = 0) uniform Transform\n{\n  mat4 mvp;\n} xform;\n")
	assert.Contains(t, vert, "layout(location = 0) in vec2 pos;\n")
	assert.Contains(t, frag, "uniform vec4 tint;\n")
	assert.Contains(t, frag, "layout(location = 0) out vec4 color;\n")
}

func TestCheckerboard(t *testing.T) {
	pix := checkerboard(16, 16)
	require.Len(t, pix, 16*16*4)
	assert.Equal(t, byte(0xe0), pix[0])
	assert.Equal(t, byte(0x20), pix[8*4])
	assert.Equal(t, byte(0xff), pix[3])
}

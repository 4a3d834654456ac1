// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

const vertexSrc = "#version 460 core\nvoid main() { gl_Position = vec4(0.0); }\n"

func TestNewShader(t *testing.T) {
	f := gltest.New()
	s, err := gl.NewShader(f, gl.VertexShader, vertexSrc)
	require.NoError(t, err)

	assert.Equal(t, gl.VertexShader, s.Type(f))
	assert.Equal(t, len(vertexSrc)+1, s.SourceLength(f))
	assert.Equal(t, "", s.InfoLog(f))
	assert.Equal(t, gl.TRUE, s.Parameter(f, gl.ShaderCompileStatus))
	assert.Equal(t, gl.FALSE, s.Parameter(f, gl.ShaderSPIRVBinary))
}

func TestShaderCompileError(t *testing.T) {
	f := gltest.New()
	_, err := gl.NewShader(f, gl.FragmentShader, "  \n")
	var cerr *gl.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, gl.FragmentShader, cerr.Type)
	assert.Equal(t, "0:1(1): error: syntax error, unexpected end of file", cerr.Log)
	assert.True(t, strings.HasPrefix(err.Error(), "fragment shader compilation failed: "))
	assert.Equal(t, 0, f.Live(), "failed shader must be deleted")
}

func TestShaderCompileFunc(t *testing.T) {
	f := gltest.New()
	f.CompileFunc = func(typ gl.Enum, src string) (string, bool) {
		return "warning: unused variable\n", true
	}
	s, err := gl.NewShader(f, gl.ComputeShader, "void main() {}")
	require.NoError(t, err)
	assert.Equal(t, "warning: unused variable\n", s.InfoLog(f))
}

func TestCreateShaderFailure(t *testing.T) {
	f := gltest.New()
	f.FailCreate = true
	_, err := gl.CreateShader(f, gl.GeometryShader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geometry shader")

	f.Errors = append(f.Errors, gl.OUT_OF_MEMORY)
	_, err = gl.CreateShader(f, gl.VertexShader)
	var glErr *gl.Error
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, gl.Enum(gl.OUT_OF_MEMORY), glErr.Code)
}

func TestShaderTypeString(t *testing.T) {
	tests := map[gl.ShaderType]string{
		gl.ComputeShader:        "compute",
		gl.VertexShader:         "vertex",
		gl.TessControlShader:    "tessellation control",
		gl.TessEvaluationShader: "tessellation evaluation",
		gl.GeometryShader:       "geometry",
		gl.FragmentShader:       "fragment",
	}
	for typ, want := range tests {
		assert.Equal(t, want, typ.String())
	}
}

func spirvModule(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

func TestShaderSetSPIRV(t *testing.T) {
	f := gltest.New()
	s, err := gl.CreateShader(f, gl.FragmentShader)
	require.NoError(t, err)

	err = s.SetSPIRV(f, []byte{1, 2, 3}, "main", nil)
	assert.Error(t, err)
	assert.Empty(t, f.Called("ShaderBinary"))

	module := spirvModule(0x07230203, 0x00010000)
	require.NoError(t, s.SetSPIRV(f, module, "main", map[uint32]uint32{2: 7, 1: 5}))
	call, ok := f.Last("SpecializeShader")
	require.True(t, ok)
	assert.Equal(t, []uint32{1, 2}, call.Args[2])
	assert.Equal(t, []uint32{5, 7}, call.Args[3])
	st := f.Shader(s)
	assert.Equal(t, map[uint32]uint32{1: 5, 2: 7}, st.Constants)
	assert.Equal(t, gl.TRUE, s.Parameter(f, gl.ShaderSPIRVBinary))

	err = s.SetSPIRV(f, module, "", nil)
	var cerr *gl.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "error: missing entry point", cerr.Log)
}

func TestCompileWGSL(t *testing.T) {
	const src = `
@vertex
fn main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	module, err := gl.CompileWGSL(src)
	if err != nil && strings.Contains(err.Error(), "not yet implemented") {
		t.Skipf("WGSL translation unavailable: %v", err)
	}
	require.NoError(t, err)
	require.Zero(t, len(module)%4)
	require.GreaterOrEqual(t, len(module), 20)
	assert.Equal(t, uint32(0x07230203), binary.LittleEndian.Uint32(module))

	f := gltest.New()
	s, err := gl.NewShaderWGSL(f, gl.VertexShader, src, "main")
	require.NoError(t, err)
	assert.Equal(t, "main", f.Shader(s).Entry)
	assert.Equal(t, uint32(0x07230203), binary.LittleEndian.Uint32(f.Shader(s).Binary))
}

func TestCompileWGSLError(t *testing.T) {
	_, err := gl.CompileWGSL("fn (")
	assert.Error(t, err)
}

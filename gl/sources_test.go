// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"encoding/binary"
	"math"
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

var (
	blitVert = shader.Sources{
		Name:    "blit.vert",
		GLSL150: vertexSrc,
		Inputs: []shader.InputLocation{
			{Name: "pos", Location: 0},
			{Name: "uv", Location: 1},
		},
		Uniforms: shader.UniformsReflection{
			Locations: []shader.UniformLocation{
				{Name: "_block.scale", Type: shader.DataTypeFloat, Size: 2, Offset: 0},
				{Name: "_block.layer", Type: shader.DataTypeInt, Size: 1, Offset: 8},
			},
			Size: 12,
		},
	}
	blitFrag = shader.Sources{
		Name:           "blit.frag",
		GLSL150:        fragmentSrc,
		Textures:       []shader.TextureBinding{{Name: "tex", Binding: 2}},
		StorageBuffers: []shader.BufferBinding{{Name: "Memory", Binding: 3}},
		Uniforms: shader.UniformsReflection{
			Locations: []shader.UniformLocation{
				{Name: "_color.tint", Type: shader.DataTypeFloat, Size: 4, Offset: 0},
			},
			Size: 16,
		},
	}
)

// blitResources makes the reflected resources of blitVert and blitFrag
// active in every program linked by f.
func blitResources(f *gltest.Recorder) {
	f.OnLink = func(p gl.Program) {
		uniform := func(name string, loc int32) {
			f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: name, Props: map[gl.Enum]int32{gl.LOCATION: loc}})
		}
		uniform("tex", 3)
		uniform("_block.scale", 4)
		uniform("_block.layer", 5)
		uniform("_color.tint", 6)
		f.AddResource(p, gl.SHADER_STORAGE_BLOCK, gltest.Resource{Name: "Memory"})
	}
}

func uniformBytes(vals ...any) []byte {
	var b []byte
	for _, v := range vals {
		switch v := v.(type) {
		case float32:
			b = binary.NativeEndian.AppendUint32(b, math.Float32bits(v))
		case int32:
			b = binary.NativeEndian.AppendUint32(b, uint32(v))
		}
	}
	return b
}

func TestNewProgramSources(t *testing.T) {
	f := gltest.New()
	blitResources(f)
	p, err := gl.NewProgramSources(f, blitVert, blitFrag)
	require.NoError(t, err)

	st := f.ProgramState(p.Program)
	require.NotNil(t, st)
	assert.True(t, st.Linked)
	assert.Empty(t, st.Attached, "shaders are detached after linking")
	assert.Equal(t, map[string]gl.Attrib{"pos": 0, "uv": 1}, st.Attribs)
	assert.Equal(t, []int32{2}, st.Uniforms[gl.Uniform{V: 3}].Ints)
	assert.Equal(t, int32(3), st.Resources[gl.SHADER_STORAGE_BLOCK][0].Props[gl.BUFFER_BINDING])
	assert.Equal(t, 1, f.Live(), "only the program remains")

	assert.Equal(t, 12, p.Vert.Size)
	assert.Equal(t, []gl.SourceUniform{
		{Name: "_block.scale", Location: gl.Uniform{V: 4}, Offset: 0, Type: shader.DataTypeFloat, Size: 2},
		{Name: "_block.layer", Location: gl.Uniform{V: 5}, Offset: 8, Type: shader.DataTypeInt, Size: 1},
	}, p.Vert.Locations)
	require.Len(t, p.Frag.Locations, 1)
	assert.Equal(t, gl.Uniform{V: 6}, p.Frag.Locations[0].Location)
}

func TestSourceProgramUpload(t *testing.T) {
	f := gltest.New()
	blitResources(f)
	p, err := gl.NewProgramSources(f, blitVert, blitFrag)
	require.NoError(t, err)

	vert := uniformBytes(float32(0.5), float32(2), int32(7))
	frag := uniformBytes(float32(1), float32(0), float32(0), float32(1))
	require.NoError(t, p.Upload(f, vert, frag))

	st := f.ProgramState(p.Program)
	scale := st.Uniforms[gl.Uniform{V: 4}]
	assert.Equal(t, "ProgramUniformfv", scale.Entry)
	assert.Equal(t, 2, scale.N)
	assert.Equal(t, []float32{0.5, 2}, scale.Floats)
	layer := st.Uniforms[gl.Uniform{V: 5}]
	assert.Equal(t, "ProgramUniformiv", layer.Entry)
	assert.Equal(t, []int32{7}, layer.Ints)
	assert.Equal(t, []float32{1, 0, 0, 1}, st.Uniforms[gl.Uniform{V: 6}].Floats)

	err = p.Vert.Upload(f, p.Program, vert[:8])
	require.Error(t, err, "short uniform data")
	assert.Contains(t, err.Error(), "12 byte block")

	bad := gl.SourceUniforms{Locations: []gl.SourceUniform{{Name: "s", Location: gl.Uniform{V: 4}, Type: shader.DataTypeShort, Size: 1}}, Size: 4}
	assert.Error(t, bad.Upload(f, p.Program, make([]byte, 4)))
}

func TestNewProgramSourcesMissingUniform(t *testing.T) {
	f := gltest.New()
	f.OnLink = func(p gl.Program) {
		f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "_block.scale", Props: map[gl.Enum]int32{gl.LOCATION: 0}})
	}
	_, err := gl.NewProgramSources(f, blitVert, blitFrag)
	require.ErrorIs(t, err, gl.ErrNotFound)
	assert.Contains(t, err.Error(), "_block.layer")
	assert.Zero(t, f.Live(), "the program is deleted")
}

func TestNewProgramSourcesErrors(t *testing.T) {
	f := gltest.New()
	noGLSL := blitFrag
	noGLSL.GLSL150 = ""
	_, err := gl.NewProgramSources(f, blitVert, noGLSL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blit.frag")
	assert.Zero(t, f.Live())

	broken := blitVert
	broken.GLSL150 = " "
	_, err = gl.NewProgramSources(f, broken, blitFrag)
	var cerr *gl.CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, gl.VertexShader, cerr.Type)
	assert.Contains(t, err.Error(), "blit.vert")
}

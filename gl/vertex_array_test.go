// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestVertexArrayBindings(t *testing.T) {
	f := gltest.New()
	a, err := gl.CreateVertexArray(f)
	require.NoError(t, err)
	vbo, ibo := gl.CreateBuffer(f), gl.CreateBuffer(f)

	a.BindVertexBuffer(f, 0, vbo, 16, 24)
	a.BindElementBuffer(f, ibo)
	a.SetBindingDivisor(f, 0, 1)
	st := f.VertexArrayState(a)
	assert.Equal(t, gltest.VertexBinding{Buffer: vbo, Offset: 16, Stride: 24, Divisor: 1}, st.Bindings[0])
	assert.Equal(t, ibo, st.Element)

	a.Bind(f)
	assert.Equal(t, a, f.VertexArray)
	a.SetLabel(f, "quad")
	assert.Equal(t, "quad", f.Labels[gltest.Label{Identifier: gl.VERTEX_ARRAY, Name: a.V}])
}

func TestVertexArrayBindBuffers(t *testing.T) {
	f := gltest.New()
	a, err := gl.CreateVertexArray(f)
	require.NoError(t, err)
	bufs := []gl.Buffer{gl.CreateBuffer(f), gl.CreateBuffer(f)}

	err = a.BindVertexBuffers(f, 1, bufs, []int{0}, []int{8, 8})
	assert.Error(t, err)
	assert.Empty(t, f.Called("VertexArrayVertexBuffers"))

	require.NoError(t, a.BindVertexBuffers(f, 1, bufs, []int{0, 32}, []int{8, 12}))
	st := f.VertexArrayState(a)
	assert.Equal(t, gltest.VertexBinding{Buffer: bufs[0], Stride: 8}, st.Bindings[1])
	assert.Equal(t, gltest.VertexBinding{Buffer: bufs[1], Offset: 32, Stride: 12}, st.Bindings[2])
}

func TestVertexArrayAttributes(t *testing.T) {
	f := gltest.New()
	a, err := gl.CreateVertexArray(f)
	require.NoError(t, err)

	pos := gl.FormatOf[f32.Vec3]()
	a.SetAttribFormat(f, 0, pos.Size, pos.Type, false, 0)
	a.BindAttribute(f, 0, 0)
	a.EnableAttribute(f, 0)
	a.SetAttribIFormat(f, 1, 1, gl.AttribUnsignedInt, pos.Stride())
	a.SetAttribLFormat(f, 2, 2, gl.AttribDouble, 0)
	a.SetAttribFormat(f, 3, 4, gl.AttribUnsignedByte, true, 0)
	a.EnableAttribute(f, 3)
	a.DisableAttribute(f, 3)

	st := f.VertexArrayState(a)
	assert.Equal(t, gltest.AttribState{
		Enabled: true,
		Size:    3,
		Type:    gl.FLOAT,
		Entry:   "VertexArrayAttribFormat",
	}, *st.Attribs[0])
	assert.Equal(t, "VertexArrayAttribIFormat", st.Attribs[1].Entry)
	assert.Equal(t, 12, st.Attribs[1].RelOffset)
	assert.Equal(t, "VertexArrayAttribLFormat", st.Attribs[2].Entry)
	assert.True(t, st.Attribs[3].Normalized)
	assert.False(t, st.Attribs[3].Enabled)
}

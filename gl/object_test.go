// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestObjectRelease(t *testing.T) {
	f := gltest.New()
	b := gl.CreateBuffer(f)
	o := gl.Own(f, b)
	require.Equal(t, b, o.Handle())

	o.Release()
	assert.True(t, o.Handle().IsZero())
	assert.False(t, b.Is(f))

	o.Release()
	assert.Len(t, f.Called("DeleteBuffer"), 1)
}

func TestObjectTake(t *testing.T) {
	f := gltest.New()
	tex, err := gl.CreateTexture(f, gl.Texture2D)
	require.NoError(t, err)
	o := gl.Own(f, tex)

	assert.Equal(t, tex, o.Take())
	assert.True(t, o.Handle().IsZero())
	o.Release()
	assert.True(t, tex.Is(f), "taken texture must survive Release")
}

func TestObjectReset(t *testing.T) {
	f := gltest.New()
	a, err := gl.CreateVertexArray(f)
	require.NoError(t, err)
	b, err := gl.CreateVertexArray(f)
	require.NoError(t, err)

	o := gl.Own(f, a)
	o.Reset(b)
	assert.False(t, a.Is(f))
	assert.True(t, b.Is(f))
	assert.Equal(t, b, o.Handle())

	o.Reset(b)
	assert.True(t, b.Is(f), "resetting to the owned handle must not delete it")
	assert.Len(t, f.Called("DeleteVertexArray"), 1)
}

func TestAdopt(t *testing.T) {
	f := gltest.New()
	_, err := gl.Adopt(f, gl.Buffer{})
	assert.ErrorIs(t, err, gl.ErrInvalidName)
	_, err = gl.Adopt(f, gl.Buffer{V: 42})
	assert.ErrorIs(t, err, gl.ErrInvalidName)

	p, err := gl.CreateProgram(f)
	require.NoError(t, err)
	o, err := gl.Adopt(f, p)
	require.NoError(t, err)
	o.Release()
	assert.Equal(t, 0, f.Live())
}

func TestHandleOrder(t *testing.T) {
	a, b := gl.Shader{V: 1}, gl.Shader{V: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(gl.Shader{V: 1}))
	assert.Equal(t, 1, gl.Buffer{V: 9}.Compare(gl.Buffer{V: 3}))
}

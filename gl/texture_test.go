// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestTextureStorage(t *testing.T) {
	f := gltest.New()
	tex, err := gl.CreateTexture(f, gl.Texture2D)
	require.NoError(t, err)
	tex.SetStorage2D(f, 3, gl.FormatRGBA8, 64, 32)
	require.NoError(t, gl.CheckError(f, "storage"))

	assert.Equal(t, 64, tex.LevelParameter(f, 0, gl.TEXTURE_WIDTH))
	assert.Equal(t, 16, tex.LevelParameter(f, 1, gl.TEXTURE_HEIGHT))
	assert.Equal(t, 16, tex.LevelParameter(f, 2, gl.TEXTURE_WIDTH))
	assert.Equal(t, int(gl.FormatRGBA8), tex.LevelParameter(f, 0, gl.TEXTURE_INTERNAL_FORMAT))

	tex.SetStorage2D(f, 1, gl.FormatR8, 4, 4)
	assert.Error(t, gl.CheckError(f, "immutable"))
}

func TestTextureStorage3D(t *testing.T) {
	f := gltest.New()
	tex, err := gl.CreateTexture(f, gl.Texture2DArray)
	require.NoError(t, err)
	tex.SetStorage3D(f, 1, gl.FormatR32F, 8, 8, 4)
	assert.Equal(t, 4, tex.LevelParameter(f, 0, gl.TEXTURE_DEPTH))
}

func TestTextureUpdate(t *testing.T) {
	f := gltest.New()
	tex, err := gl.CreateTexture(f, gl.Texture2D)
	require.NoError(t, err)
	tex.SetStorage2D(f, 1, gl.FormatRGBA8, 2, 2)

	pixels := []byte{
		0xff, 0, 0, 0xff, 0, 0xff, 0, 0xff,
		0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	tex.UpdateImage2D(f, 0, 0, 0, 2, 2, gl.PixelRGBA, gl.PixelUnsignedByte, pixels)
	require.NoError(t, gl.CheckError(f, "update"))
	st := f.Texture(tex)
	require.Len(t, st.Images, 1)
	assert.Equal(t, gl.Enum(gl.RGBA), st.Images[0].Format)
	assert.Equal(t, pixels, st.Images[0].Pixels)

	tex.UpdateImage2D(f, 0, 1, 1, 2, 2, gl.PixelRGBA, gl.PixelUnsignedByte, pixels)
	assert.Error(t, gl.CheckError(f, "out of bounds"))
}

func TestTextureParametersAndUnits(t *testing.T) {
	f := gltest.New()
	tex, err := gl.CreateTexture(f, gl.Texture2D)
	require.NoError(t, err)

	tex.SetParameter(f, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	tex.GenerateMipmap(f)
	assert.Equal(t, gl.LINEAR, f.Texture(tex).Params[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, 1, f.Texture(tex).Mipmaps)

	tex.BindUnit(f, 2)
	assert.Equal(t, tex, f.Units[2])
	gl.BindTextureUnit(f, 2, gl.Texture{})
	assert.NotContains(t, f.Units, 2)

	tex.SetLabel(f, "atlas")
	assert.Equal(t, "atlas", f.Labels[gltest.Label{Identifier: gl.TEXTURE, Name: tex.V}])
}

func TestCreateTextureFailure(t *testing.T) {
	f := gltest.New()
	f.FailCreate = true
	_, err := gl.CreateTexture(f, gl.TextureCubeMap)
	assert.EqualError(t, err, "gl: CreateTextures failed")
}

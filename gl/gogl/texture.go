// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) CreateTexture(target glu.Enum) glu.Texture {
	var t uint32
	gl.CreateTextures(uint32(target), 1, &t)
	return glu.Texture{V: uint(t)}
}

func (f *Functions) DeleteTexture(t glu.Texture) {
	v := uint32(t.V)
	gl.DeleteTextures(1, &v)
}

func (f *Functions) IsTexture(t glu.Texture) bool {
	return gl.IsTexture(uint32(t.V))
}

func (f *Functions) TextureStorage2D(t glu.Texture, levels int, format glu.Enum, width, height int) {
	gl.TextureStorage2D(uint32(t.V), int32(levels), uint32(format), int32(width), int32(height))
}

func (f *Functions) TextureStorage3D(t glu.Texture, levels int, format glu.Enum, width, height, depth int) {
	gl.TextureStorage3D(uint32(t.V), int32(levels), uint32(format), int32(width), int32(height), int32(depth))
}

func (f *Functions) TextureSubImage2D(t glu.Texture, level, x, y, width, height int, format, ty glu.Enum, pixels []byte) {
	gl.TextureSubImage2D(uint32(t.V), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(pixels))
}

func (f *Functions) TextureParameteri(t glu.Texture, pname glu.Enum, param int) {
	gl.TextureParameteri(uint32(t.V), uint32(pname), int32(param))
}

func (f *Functions) GetTextureLevelParameteri(t glu.Texture, level int, pname glu.Enum) int {
	var v int32
	gl.GetTextureLevelParameteriv(uint32(t.V), int32(level), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GenerateTextureMipmap(t glu.Texture) {
	gl.GenerateTextureMipmap(uint32(t.V))
}

func (f *Functions) BindTextureUnit(unit int, t glu.Texture) {
	gl.BindTextureUnit(uint32(unit), uint32(t.V))
}

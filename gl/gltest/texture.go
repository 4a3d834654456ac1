// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import "glutils.org/gl"

// TextureState is the simulated state of a texture object.
type TextureState struct {
	Target               gl.Enum
	Levels               int
	Format               gl.Enum
	Width, Height, Depth int
	Params               map[gl.Enum]int
	Mipmaps              int
	Images               []Image
}

// Image records one TextureSubImage2D upload.
type Image struct {
	Level, X, Y, Width, Height int
	Format, Type               gl.Enum
	Pixels                     []byte
}

func (r *Recorder) Texture(t gl.Texture) *TextureState {
	return r.textures[t.V]
}

func (r *Recorder) texture(t gl.Texture) *TextureState {
	st := r.textures[t.V]
	if st == nil {
		r.fail(gl.INVALID_OPERATION)
	}
	return st
}

func (r *Recorder) CreateTexture(target gl.Enum) gl.Texture {
	r.record("CreateTexture", target)
	if r.FailCreate {
		return gl.Texture{}
	}
	t := gl.Texture{V: r.name()}
	r.textures[t.V] = &TextureState{Target: target, Params: make(map[gl.Enum]int)}
	return t
}

func (r *Recorder) DeleteTexture(t gl.Texture) {
	r.record("DeleteTexture", t)
	delete(r.textures, t.V)
	for unit, bound := range r.Units {
		if bound == t {
			delete(r.Units, unit)
		}
	}
}

func (r *Recorder) IsTexture(t gl.Texture) bool {
	r.record("IsTexture", t)
	return r.textures[t.V] != nil
}

func (r *Recorder) storage(st *TextureState, levels int, format gl.Enum, w, h, d int) {
	switch {
	case st.Levels > 0:
		r.fail(gl.INVALID_OPERATION)
	case levels < 1 || w < 1 || h < 1 || d < 1:
		r.fail(gl.INVALID_VALUE)
	default:
		st.Levels, st.Format = levels, format
		st.Width, st.Height, st.Depth = w, h, d
	}
}

func (r *Recorder) TextureStorage2D(t gl.Texture, levels int, format gl.Enum, width, height int) {
	r.record("TextureStorage2D", t, levels, format, width, height)
	if st := r.texture(t); st != nil {
		r.storage(st, levels, format, width, height, 1)
	}
}

func (r *Recorder) TextureStorage3D(t gl.Texture, levels int, format gl.Enum, width, height, depth int) {
	r.record("TextureStorage3D", t, levels, format, width, height, depth)
	if st := r.texture(t); st != nil {
		r.storage(st, levels, format, width, height, depth)
	}
}

func (r *Recorder) TextureSubImage2D(t gl.Texture, level, x, y, width, height int, format, ty gl.Enum, pixels []byte) {
	r.record("TextureSubImage2D", t, level, x, y, width, height, format, ty)
	st := r.texture(t)
	if st == nil {
		return
	}
	if level < 0 || level >= st.Levels || x < 0 || y < 0 ||
		x+width > max(st.Width>>level, 1) || y+height > max(st.Height>>level, 1) {
		r.fail(gl.INVALID_VALUE)
		return
	}
	st.Images = append(st.Images, Image{
		Level: level, X: x, Y: y, Width: width, Height: height,
		Format: format, Type: ty,
		Pixels: append([]byte(nil), pixels...),
	})
}

func (r *Recorder) TextureParameteri(t gl.Texture, pname gl.Enum, param int) {
	r.record("TextureParameteri", t, pname, param)
	if st := r.texture(t); st != nil {
		st.Params[pname] = param
	}
}

func (r *Recorder) GetTextureLevelParameteri(t gl.Texture, level int, pname gl.Enum) int {
	r.record("GetTextureLevelParameteri", t, level, pname)
	st := r.texture(t)
	if st == nil {
		return 0
	}
	if level < 0 || level >= st.Levels {
		return 0
	}
	switch pname {
	case gl.TEXTURE_WIDTH:
		return max(st.Width>>level, 1)
	case gl.TEXTURE_HEIGHT:
		return max(st.Height>>level, 1)
	case gl.TEXTURE_DEPTH:
		return max(st.Depth>>level, 1)
	case gl.TEXTURE_INTERNAL_FORMAT:
		return int(st.Format)
	default:
		r.fail(gl.INVALID_ENUM)
		return 0
	}
}

func (r *Recorder) GenerateTextureMipmap(t gl.Texture) {
	r.record("GenerateTextureMipmap", t)
	if st := r.texture(t); st != nil {
		st.Mipmaps++
	}
}

func (r *Recorder) BindTextureUnit(unit int, t gl.Texture) {
	r.record("BindTextureUnit", unit, t)
	if t.IsZero() {
		delete(r.Units, unit)
		return
	}
	if r.texture(t) != nil {
		r.Units[unit] = t
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"encoding/binary"
	"fmt"
	"math"

	"gioui.org/shader"
)

// NewShaderSources compiles the GLSL 1.50 variant of src. OpenGL 3.2 core
// and later contexts reject older dialects.
func NewShaderSources(f Functions, typ ShaderType, src shader.Sources) (Shader, error) {
	if src.GLSL150 == "" {
		return Shader{}, fmt.Errorf("%s: no GLSL 1.50 source", src.Name)
	}
	s, err := NewShader(f, typ, src.GLSL150)
	if err != nil {
		return Shader{}, fmt.Errorf("%s: %w", src.Name, err)
	}
	return s, nil
}

// SourceProgram is a program linked from a vertex and fragment shader
// pair together with their resolved uniforms.
type SourceProgram struct {
	Program
	Vert, Frag SourceUniforms
}

// SourceUniforms are the uniforms of one shader stage. Their values are
// uploaded from a single block of Size bytes.
type SourceUniforms struct {
	Locations []SourceUniform
	Size      int
}

// SourceUniform is a uniform location and where its value lives in the
// uniform block.
type SourceUniform struct {
	Name     string
	Location Uniform
	Offset   int
	Type     shader.DataType
	Size     int
}

// NewProgramSources links a program from a vertex and fragment shader
// pair. Vertex inputs are bound to their reflected locations, samplers
// to their texture units and storage blocks to their bindings. Every
// reflected uniform must be active.
func NewProgramSources(f Functions, vs, fs shader.Sources) (SourceProgram, error) {
	vsh, err := NewShaderSources(f, VertexShader, vs)
	if err != nil {
		return SourceProgram{}, err
	}
	defer vsh.Delete(f)
	fsh, err := NewShaderSources(f, FragmentShader, fs)
	if err != nil {
		return SourceProgram{}, err
	}
	defer fsh.Delete(f)
	p, err := CreateProgram(f)
	if err != nil {
		return SourceProgram{}, err
	}
	p.AttachShader(f, vsh)
	p.AttachShader(f, fsh)
	for _, inp := range vs.Inputs {
		p.BindAttribLocation(f, Attrib(inp.Location), inp.Name)
	}
	err = p.Link(f)
	p.DetachShader(f, vsh)
	p.DetachShader(f, fsh)
	if err != nil {
		p.Delete(f)
		return SourceProgram{}, fmt.Errorf("%s, %s: %w", vs.Name, fs.Name, err)
	}
	prog := SourceProgram{Program: p}
	for _, src := range []shader.Sources{vs, fs} {
		for _, tex := range src.Textures {
			if loc := f.GetUniformLocation(p, tex.Name); loc.Valid() {
				f.ProgramUniformiv(p, loc, 1, []int32{int32(tex.Binding)})
			}
		}
		for _, buf := range src.StorageBuffers {
			if idx := f.GetProgramResourceIndex(p, SHADER_STORAGE_BLOCK, buf.Name); idx != INVALID_INDEX {
				f.ShaderStorageBlockBinding(p, idx, uint(buf.Binding))
			}
		}
	}
	if prog.Vert, err = lookupSourceUniforms(f, p, vs); err == nil {
		prog.Frag, err = lookupSourceUniforms(f, p, fs)
	}
	if err != nil {
		p.Delete(f)
		return SourceProgram{}, err
	}
	return prog, nil
}

func lookupSourceUniforms(f Functions, p Program, src shader.Sources) (SourceUniforms, error) {
	u := SourceUniforms{Size: src.Uniforms.Size}
	for _, l := range src.Uniforms.Locations {
		loc, err := p.UniformLocation(f, l.Name)
		if err != nil {
			return SourceUniforms{}, fmt.Errorf("%s: %w", src.Name, err)
		}
		u.Locations = append(u.Locations, SourceUniform{
			Name:     l.Name,
			Location: loc,
			Offset:   l.Offset,
			Type:     l.Type,
			Size:     l.Size,
		})
	}
	return u, nil
}

// Upload sets every uniform of the stage from data, laid out in native
// byte order as the reflection describes.
func (u SourceUniforms) Upload(f Functions, p Program, data []byte) error {
	if len(data) < u.Size {
		return fmt.Errorf("gl: %d bytes of uniform data for %d byte block", len(data), u.Size)
	}
	for _, l := range u.Locations {
		if l.Size < 1 || l.Size > 4 || l.Offset+4*l.Size > len(data) {
			return fmt.Errorf("gl: uniform %s: %d components at offset %d out of range", l.Name, l.Size, l.Offset)
		}
		words := data[l.Offset : l.Offset+4*l.Size]
		switch l.Type {
		case shader.DataTypeFloat:
			v := make([]float32, l.Size)
			for i := range v {
				v[i] = math.Float32frombits(binary.NativeEndian.Uint32(words[4*i:]))
			}
			f.ProgramUniformfv(p, l.Location, l.Size, v)
		case shader.DataTypeInt:
			v := make([]int32, l.Size)
			for i := range v {
				v[i] = int32(binary.NativeEndian.Uint32(words[4*i:]))
			}
			f.ProgramUniformiv(p, l.Location, l.Size, v)
		default:
			return fmt.Errorf("gl: uniform %s: unsupported data type %d", l.Name, l.Type)
		}
	}
	return nil
}

// Upload sets the uniforms of both stages.
func (p SourceProgram) Upload(f Functions, vert, frag []byte) error {
	if err := p.Vert.Upload(f, p.Program, vert); err != nil {
		return err
	}
	return p.Frag.Upload(f, p.Program, frag)
}

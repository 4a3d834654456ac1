// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import (
	"strings"

	"glutils.org/gl"
)

// ShaderState is the simulated state of a shader object.
type ShaderState struct {
	Type     gl.Enum
	Source   string
	Compiled bool
	Log      string
	Deleted  bool

	Binary    []byte
	SPIRV     bool
	Entry     string
	Constants map[uint32]uint32
}

func (r *Recorder) Shader(s gl.Shader) *ShaderState {
	return r.shaders[s.V]
}

func (r *Recorder) shader(s gl.Shader) *ShaderState {
	st := r.shaders[s.V]
	if st == nil {
		r.fail(gl.INVALID_VALUE)
	}
	return st
}

func (r *Recorder) CreateShader(typ gl.Enum) gl.Shader {
	r.record("CreateShader", typ)
	switch typ {
	case gl.COMPUTE_SHADER, gl.VERTEX_SHADER, gl.TESS_CONTROL_SHADER,
		gl.TESS_EVALUATION_SHADER, gl.GEOMETRY_SHADER, gl.FRAGMENT_SHADER:
	default:
		r.fail(gl.INVALID_ENUM)
		return gl.Shader{}
	}
	if r.FailCreate {
		return gl.Shader{}
	}
	s := gl.Shader{V: r.name()}
	r.shaders[s.V] = &ShaderState{Type: typ}
	return s
}

// DeleteShader flags the shader for deletion; it is freed once no
// program has it attached.
func (r *Recorder) DeleteShader(s gl.Shader) {
	r.record("DeleteShader", s)
	st := r.shaders[s.V]
	if st == nil {
		return
	}
	st.Deleted = true
	r.collectShader(s)
}

func (r *Recorder) collectShader(s gl.Shader) {
	st := r.shaders[s.V]
	if st == nil || !st.Deleted {
		return
	}
	for _, p := range r.programs {
		for _, a := range p.Attached {
			if a == s {
				return
			}
		}
	}
	delete(r.shaders, s.V)
}

func (r *Recorder) IsShader(s gl.Shader) bool {
	r.record("IsShader", s)
	return r.shaders[s.V] != nil
}

func (r *Recorder) ShaderSource(s gl.Shader, src ...string) {
	r.record("ShaderSource", s, strings.Join(src, ""))
	if st := r.shader(s); st != nil {
		st.Source = strings.Join(src, "")
	}
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s)
	st := r.shader(s)
	if st == nil {
		return
	}
	compile := r.CompileFunc
	if compile == nil {
		compile = compileNonEmpty
	}
	st.SPIRV = false
	st.Log, st.Compiled = compile(st.Type, st.Source)
}

func compileNonEmpty(_ gl.Enum, src string) (string, bool) {
	if strings.TrimSpace(src) == "" {
		return "0:1(1): error: syntax error, unexpected end of file\n", false
	}
	return "", true
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	r.record("GetShaderi", s, pname)
	st := r.shader(s)
	if st == nil {
		return 0
	}
	switch pname {
	case gl.SHADER_TYPE:
		return int(st.Type)
	case gl.DELETE_STATUS:
		return boolean(st.Deleted)
	case gl.COMPILE_STATUS:
		return boolean(st.Compiled)
	case gl.INFO_LOG_LENGTH:
		if st.Log == "" {
			return 0
		}
		return len(st.Log) + 1
	case gl.SHADER_SOURCE_LENGTH:
		if st.Source == "" {
			return 0
		}
		return len(st.Source) + 1
	case gl.SPIR_V_BINARY:
		return boolean(st.SPIRV)
	default:
		r.fail(gl.INVALID_ENUM)
		return 0
	}
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	r.record("GetShaderInfoLog", s)
	if st := r.shader(s); st != nil {
		return st.Log
	}
	return ""
}

func (r *Recorder) ShaderBinary(shaders []gl.Shader, format gl.Enum, binary []byte) {
	r.record("ShaderBinary", shaders, format, len(binary))
	if format != gl.SHADER_BINARY_FORMAT_SPIR_V {
		r.fail(gl.INVALID_ENUM)
		return
	}
	for _, s := range shaders {
		if st := r.shader(s); st != nil {
			st.Binary = append([]byte(nil), binary...)
			st.SPIRV = true
			st.Compiled = false
		}
	}
}

// SpecializeShader succeeds when a non-empty module was loaded and an
// entry point is named.
func (r *Recorder) SpecializeShader(s gl.Shader, entry string, indices, values []uint32) {
	r.record("SpecializeShader", s, entry, indices, values)
	st := r.shader(s)
	if st == nil {
		return
	}
	if !st.SPIRV {
		r.fail(gl.INVALID_OPERATION)
		return
	}
	st.Entry = entry
	st.Constants = make(map[uint32]uint32)
	for i, idx := range indices {
		st.Constants[idx] = values[i]
	}
	switch {
	case len(st.Binary) == 0:
		st.Log, st.Compiled = "error: empty SPIR-V module\n", false
	case entry == "":
		st.Log, st.Compiled = "error: missing entry point\n", false
	default:
		st.Log, st.Compiled = "", true
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ShaderType is the stage of a shader object.
type ShaderType Enum

const (
	ComputeShader        ShaderType = COMPUTE_SHADER
	VertexShader         ShaderType = VERTEX_SHADER
	TessControlShader    ShaderType = TESS_CONTROL_SHADER
	TessEvaluationShader ShaderType = TESS_EVALUATION_SHADER
	GeometryShader       ShaderType = GEOMETRY_SHADER
	FragmentShader       ShaderType = FRAGMENT_SHADER
)

func (t ShaderType) String() string {
	switch t {
	case ComputeShader:
		return "compute"
	case VertexShader:
		return "vertex"
	case TessControlShader:
		return "tessellation control"
	case TessEvaluationShader:
		return "tessellation evaluation"
	case GeometryShader:
		return "geometry"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(0x%x)", uint(t))
	}
}

// ShaderParameter names a value returned by GetShaderiv.
type ShaderParameter Enum

const (
	ShaderTypeParam     ShaderParameter = SHADER_TYPE
	ShaderDeleteStatus  ShaderParameter = DELETE_STATUS
	ShaderCompileStatus ShaderParameter = COMPILE_STATUS
	ShaderInfoLogLength ShaderParameter = INFO_LOG_LENGTH
	ShaderSourceLength  ShaderParameter = SHADER_SOURCE_LENGTH
	ShaderSPIRVBinary   ShaderParameter = SPIR_V_BINARY
)

// CreateShader creates an empty shader object of the given stage.
func CreateShader(f Functions, typ ShaderType) (Shader, error) {
	s := f.CreateShader(Enum(typ))
	if !s.Valid() {
		return Shader{}, fmt.Errorf("%s shader: %w", typ, failure(f, "CreateShader"))
	}
	return s, nil
}

// NewShader creates and compiles a shader from source strings. The
// shader is deleted if compilation fails.
func NewShader(f Functions, typ ShaderType, src ...string) (Shader, error) {
	s, err := CreateShader(f, typ)
	if err != nil {
		return Shader{}, err
	}
	s.SetSource(f, src...)
	if err := s.Compile(f); err != nil {
		s.Delete(f)
		return Shader{}, err
	}
	return s, nil
}

func (s Shader) Delete(f Functions) {
	f.DeleteShader(s)
}

func (s Shader) Is(f Functions) bool {
	return f.IsShader(s)
}

// SetSource replaces the source of s with the concatenation of src.
func (s Shader) SetSource(f Functions, src ...string) {
	f.ShaderSource(s, src...)
}

// Compile compiles the current source and reports the information log on
// failure.
func (s Shader) Compile(f Functions) error {
	f.CompileShader(s)
	if s.Parameter(f, ShaderCompileStatus) == FALSE {
		err := &CompileError{Type: s.Type(f), Log: strings.TrimSpace(s.InfoLog(f))}
		Logger().Debug("shader compilation failed", "shader", s.V, "type", err.Type.String())
		return err
	}
	return nil
}

func (s Shader) Parameter(f Functions, pname ShaderParameter) int {
	return f.GetShaderi(s, Enum(pname))
}

func (s Shader) Type(f Functions) ShaderType {
	return ShaderType(s.Parameter(f, ShaderTypeParam))
}

// SourceLength returns the length of the concatenated source including the
// terminating NUL, or zero when there is no source.
func (s Shader) SourceLength(f Functions) int {
	return s.Parameter(f, ShaderSourceLength)
}

// InfoLog returns the information log, empty if there is none.
func (s Shader) InfoLog(f Functions) string {
	if s.Parameter(f, ShaderInfoLogLength) <= 0 {
		return ""
	}
	return f.GetShaderInfoLog(s)
}

func (s Shader) SetLabel(f Functions, label string) {
	f.ObjectLabel(SHADER, s.V, label)
}

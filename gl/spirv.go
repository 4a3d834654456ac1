// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/naga"
)

// SetSPIRV loads a SPIR-V module into s and specializes the entry point.
// consts maps specialization constant ids to their values. Like Compile,
// failure is reported with the information log.
func (s Shader) SetSPIRV(f Functions, binary []byte, entry string, consts map[uint32]uint32) error {
	if len(binary)%4 != 0 {
		return fmt.Errorf("gl: SPIR-V module length %d is not a multiple of 4", len(binary))
	}
	f.ShaderBinary([]Shader{s}, SHADER_BINARY_FORMAT_SPIR_V, binary)
	ids := slices.Sorted(maps.Keys(consts))
	vals := make([]uint32, len(ids))
	for i, id := range ids {
		vals[i] = consts[id]
	}
	f.SpecializeShader(s, entry, ids, vals)
	if s.Parameter(f, ShaderCompileStatus) == FALSE {
		return &CompileError{Type: s.Type(f), Log: strings.TrimSpace(s.InfoLog(f))}
	}
	return nil
}

// CompileWGSL translates WGSL source to a SPIR-V module suitable for
// SetSPIRV.
func CompileWGSL(src string) ([]byte, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("gl: compile WGSL: %w", err)
	}
	return spirv, nil
}

// NewShaderWGSL creates a shader of the given stage from the WGSL entry
// point.
func NewShaderWGSL(f Functions, typ ShaderType, src, entry string) (Shader, error) {
	spirv, err := CompileWGSL(src)
	if err != nil {
		return Shader{}, err
	}
	s, err := CreateShader(f, typ)
	if err != nil {
		return Shader{}, err
	}
	if err := s.SetSPIRV(f, spirv, entry, nil); err != nil {
		s.Delete(f)
		return Shader{}, err
	}
	return s, nil
}

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

// BlockKind is the program interface of an interface block.
type BlockKind Enum

const (
	UniformBlock       BlockKind = UNIFORM_BLOCK
	ShaderStorageBlock BlockKind = SHADER_STORAGE_BLOCK
)

func (k BlockKind) String() string {
	switch k {
	case UniformBlock:
		return "uniform"
	case ShaderStorageBlock:
		return "shader storage"
	default:
		return fmt.Sprintf("BlockKind(0x%x)", uint(k))
	}
}

// InterfaceBlock is an active uniform or shader storage block of a
// program, together with the binding point it was last known to use.
type InterfaceBlock struct {
	Program Program
	Kind    BlockKind
	Name    string
	Index   uint
	Binding uint
}

// LookupUniformBlock resolves the named uniform block of p.
func LookupUniformBlock(f Functions, p Program, name string) (InterfaceBlock, error) {
	return lookupBlock(f, p, UniformBlock, name)
}

// LookupShaderStorageBlock resolves the named shader storage block of p.
func LookupShaderStorageBlock(f Functions, p Program, name string) (InterfaceBlock, error) {
	return lookupBlock(f, p, ShaderStorageBlock, name)
}

func lookupBlock(f Functions, p Program, kind BlockKind, name string) (InterfaceBlock, error) {
	idx, err := p.ResourceIndex(f, ProgramInterface(kind), name)
	if err != nil {
		return InterfaceBlock{}, fmt.Errorf("no %s block named %s: %w", kind, name, ErrNotFound)
	}
	vals := p.Resource(f, ProgramInterface(kind), idx, BUFFER_BINDING)
	if len(vals) != 1 || vals[0] < 0 {
		return InterfaceBlock{}, fmt.Errorf("%s block %s: couldn't query binding: %w", kind, name, failure(f, "GetProgramResourceiv"))
	}
	return InterfaceBlock{
		Program: p,
		Kind:    kind,
		Name:    name,
		Index:   idx,
		Binding: uint(vals[0]),
	}, nil
}

// SetBinding moves the block to another binding point.
func (b *InterfaceBlock) SetBinding(f Functions, binding uint) {
	switch b.Kind {
	case UniformBlock:
		f.UniformBlockBinding(b.Program, b.Index, binding)
	case ShaderStorageBlock:
		f.ShaderStorageBlockBinding(b.Program, b.Index, binding)
	default:
		panic(fmt.Errorf("gl: invalid block kind %v", b.Kind))
	}
	b.Binding = binding
}

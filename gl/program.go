// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ProgramParameter names a value returned by GetProgramiv.
type ProgramParameter Enum

const (
	ProgramDeleteStatus                      ProgramParameter = DELETE_STATUS
	ProgramLinkStatus                        ProgramParameter = LINK_STATUS
	ProgramValidateStatus                    ProgramParameter = VALIDATE_STATUS
	ProgramInfoLogLength                     ProgramParameter = INFO_LOG_LENGTH
	ProgramAttachedShaders                   ProgramParameter = ATTACHED_SHADERS
	ProgramActiveAtomicCounterBuffers        ProgramParameter = ACTIVE_ATOMIC_COUNTER_BUFFERS
	ProgramActiveAttributes                  ProgramParameter = ACTIVE_ATTRIBUTES
	ProgramActiveAttributeMaxLength          ProgramParameter = ACTIVE_ATTRIBUTE_MAX_LENGTH
	ProgramActiveUniforms                    ProgramParameter = ACTIVE_UNIFORMS
	ProgramActiveUniformBlocks               ProgramParameter = ACTIVE_UNIFORM_BLOCKS
	ProgramActiveUniformBlockMaxNameLength   ProgramParameter = ACTIVE_UNIFORM_BLOCK_MAX_NAME_LENGTH
	ProgramActiveUniformMaxLength            ProgramParameter = ACTIVE_UNIFORM_MAX_LENGTH
	ProgramComputeWorkGroupSize              ProgramParameter = COMPUTE_WORK_GROUP_SIZE
	ProgramBinaryLength                      ProgramParameter = PROGRAM_BINARY_LENGTH
	ProgramTransformFeedbackBufferMode       ProgramParameter = TRANSFORM_FEEDBACK_BUFFER_MODE
	ProgramTransformFeedbackVaryings         ProgramParameter = TRANSFORM_FEEDBACK_VARYINGS
	ProgramTransformFeedbackVaryingMaxLength ProgramParameter = TRANSFORM_FEEDBACK_VARYING_MAX_LENGTH
	ProgramGeometryVerticesOut               ProgramParameter = GEOMETRY_VERTICES_OUT
	ProgramGeometryInputType                 ProgramParameter = GEOMETRY_INPUT_TYPE
	ProgramGeometryOutputType                ProgramParameter = GEOMETRY_OUTPUT_TYPE
)

// ProgramInterface names a class of program resources.
type ProgramInterface Enum

const (
	InterfaceUniform                         ProgramInterface = UNIFORM
	InterfaceUniformBlock                    ProgramInterface = UNIFORM_BLOCK
	InterfaceProgramInput                    ProgramInterface = PROGRAM_INPUT
	InterfaceProgramOutput                   ProgramInterface = PROGRAM_OUTPUT
	InterfaceBufferVariable                  ProgramInterface = BUFFER_VARIABLE
	InterfaceShaderStorageBlock              ProgramInterface = SHADER_STORAGE_BLOCK
	InterfaceVertexSubroutine                ProgramInterface = VERTEX_SUBROUTINE
	InterfaceTessControlSubroutine           ProgramInterface = TESS_CONTROL_SUBROUTINE
	InterfaceTessEvaluationSubroutine        ProgramInterface = TESS_EVALUATION_SUBROUTINE
	InterfaceGeometrySubroutine              ProgramInterface = GEOMETRY_SUBROUTINE
	InterfaceFragmentSubroutine              ProgramInterface = FRAGMENT_SUBROUTINE
	InterfaceComputeSubroutine               ProgramInterface = COMPUTE_SUBROUTINE
	InterfaceVertexSubroutineUniform         ProgramInterface = VERTEX_SUBROUTINE_UNIFORM
	InterfaceTessControlSubroutineUniform    ProgramInterface = TESS_CONTROL_SUBROUTINE_UNIFORM
	InterfaceTessEvaluationSubroutineUniform ProgramInterface = TESS_EVALUATION_SUBROUTINE_UNIFORM
	InterfaceGeometrySubroutineUniform       ProgramInterface = GEOMETRY_SUBROUTINE_UNIFORM
	InterfaceFragmentSubroutineUniform       ProgramInterface = FRAGMENT_SUBROUTINE_UNIFORM
	InterfaceComputeSubroutineUniform        ProgramInterface = COMPUTE_SUBROUTINE_UNIFORM
	InterfaceTransformFeedbackVarying        ProgramInterface = TRANSFORM_FEEDBACK_VARYING
	InterfaceTransformFeedbackBuffer         ProgramInterface = TRANSFORM_FEEDBACK_BUFFER
)

func CreateProgram(f Functions) (Program, error) {
	p := f.CreateProgram()
	if !p.Valid() {
		return Program{}, failure(f, "CreateProgram")
	}
	return p, nil
}

// NewProgram links a program from compiled shaders. The shaders are
// detached after linking and remain owned by the caller.
func NewProgram(f Functions, shaders ...Shader) (Program, error) {
	prog, err := CreateProgram(f)
	if err != nil {
		return Program{}, err
	}
	for _, s := range shaders {
		prog.AttachShader(f, s)
	}
	err = prog.Link(f)
	for _, s := range shaders {
		prog.DetachShader(f, s)
	}
	if err != nil {
		prog.Delete(f)
		return Program{}, err
	}
	return prog, nil
}

func (p Program) Delete(f Functions) {
	f.DeleteProgram(p)
}

func (p Program) Is(f Functions) bool {
	return f.IsProgram(p)
}

// Use installs p as part of the current rendering state.
func (p Program) Use(f Functions) {
	f.UseProgram(p)
}

// Link links the attached shaders and reports the information log on
// failure.
func (p Program) Link(f Functions) error {
	f.LinkProgram(p)
	if p.Parameter(f, ProgramLinkStatus) == FALSE {
		err := &LinkError{Op: "link", Log: strings.TrimSpace(p.InfoLog(f))}
		Logger().Debug("program link failed", "program", p.V)
		return err
	}
	return nil
}

// Validate checks whether p can execute in the current state.
func (p Program) Validate(f Functions) error {
	f.ValidateProgram(p)
	if p.Parameter(f, ProgramValidateStatus) == FALSE {
		return &LinkError{Op: "validation", Log: strings.TrimSpace(p.InfoLog(f))}
	}
	return nil
}

func (p Program) AttachShader(f Functions, s Shader) {
	f.AttachShader(p, s)
}

func (p Program) DetachShader(f Functions, s Shader) {
	f.DetachShader(p, s)
}

// BindAttribLocation associates a vertex attribute index with a named
// input. It takes effect at the next Link.
func (p Program) BindAttribLocation(f Functions, index Attrib, name string) {
	f.BindAttribLocation(p, index, name)
}

// SetUniformBlockBinding assigns a binding point to an active uniform
// block.
func (p Program) SetUniformBlockBinding(f Functions, index, binding uint) {
	f.UniformBlockBinding(p, index, binding)
}

// SetShaderStorageBlockBinding assigns a binding point to an active shader
// storage block.
func (p Program) SetShaderStorageBlockBinding(f Functions, index, binding uint) {
	f.ShaderStorageBlockBinding(p, index, binding)
}

func (p Program) Parameter(f Functions, pname ProgramParameter) int {
	return f.GetProgrami(p, Enum(pname))
}

func (p Program) InfoLog(f Functions) string {
	if p.Parameter(f, ProgramInfoLogLength) <= 0 {
		return ""
	}
	return f.GetProgramInfoLog(p)
}

// Interface queries a property of a whole program interface, such as
// ACTIVE_RESOURCES.
func (p Program) Interface(f Functions, iface ProgramInterface, pname Enum) int {
	return f.GetProgramInterfacei(p, Enum(iface), pname)
}

// Resource returns the values of props for one active resource.
func (p Program) Resource(f Functions, iface ProgramInterface, index uint, props ...Enum) []int32 {
	params := make([]int32, len(props))
	n := f.GetProgramResourcei(p, Enum(iface), index, props, params)
	return params[:min(n, len(params))]
}

// ResourceIndex returns the index of a named resource, or ErrNotFound.
func (p Program) ResourceIndex(f Functions, iface ProgramInterface, name string) (uint, error) {
	idx := f.GetProgramResourceIndex(p, Enum(iface), name)
	if idx == INVALID_INDEX {
		return 0, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return idx, nil
}

// ResourceLocation returns the location of a named resource, -1 if there
// is no such active resource.
func (p Program) ResourceLocation(f Functions, iface ProgramInterface, name string) int {
	return f.GetProgramResourceLocation(p, Enum(iface), name)
}

// ResourceLocationIndex returns the fragment color index of a named
// program output.
func (p Program) ResourceLocationIndex(f Functions, iface ProgramInterface, name string) int {
	return f.GetProgramResourceLocationIndex(p, Enum(iface), name)
}

func (p Program) ResourceName(f Functions, iface ProgramInterface, index uint) string {
	return f.GetProgramResourceName(p, Enum(iface), index)
}

// UniformLocation returns the location of a named uniform, or ErrNotFound.
func (p Program) UniformLocation(f Functions, name string) (Uniform, error) {
	loc := f.GetUniformLocation(p, name)
	if !loc.Valid() {
		return loc, fmt.Errorf("uniform %s: %w", name, ErrNotFound)
	}
	return loc, nil
}

func (p Program) SetLabel(f Functions, label string) {
	f.ObjectLabel(PROGRAM, p.V, label)
}

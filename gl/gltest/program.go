// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import (
	"slices"

	"glutils.org/gl"
)

// ProgramState is the simulated state of a program object.
type ProgramState struct {
	Attached  []gl.Shader
	Linked    bool
	Validated bool
	Log       string
	Deleted   bool
	Attribs   map[string]gl.Attrib
	// Resources lists the active resources per program interface, in
	// index order. Tests populate it with AddResource.
	Resources map[gl.Enum][]Resource
	Uniforms  map[gl.Uniform]Upload
}

// Resource is an active program resource. Props answers
// GetProgramResourceiv; NAME_LENGTH is derived from Name.
type Resource struct {
	Name  string
	Props map[gl.Enum]int32
}

// Upload is the last value uploaded to a uniform location.
type Upload struct {
	Entry      string
	N          int
	Cols, Rows int
	Transpose  bool
	Floats     []float32
	Ints       []int32
	Uints      []uint32
	Doubles    []float64
}

func (r *Recorder) ProgramState(p gl.Program) *ProgramState {
	return r.programs[p.V]
}

// AddResource makes res an active resource of p and returns its index.
func (r *Recorder) AddResource(p gl.Program, iface gl.Enum, res Resource) uint {
	st := r.programs[p.V]
	if res.Props == nil {
		res.Props = make(map[gl.Enum]int32)
	}
	st.Resources[iface] = append(st.Resources[iface], res)
	return uint(len(st.Resources[iface]) - 1)
}

func (r *Recorder) program(p gl.Program) *ProgramState {
	st := r.programs[p.V]
	if st == nil {
		r.fail(gl.INVALID_VALUE)
	}
	return st
}

func (r *Recorder) CreateProgram() gl.Program {
	r.record("CreateProgram")
	if r.FailCreate {
		return gl.Program{}
	}
	p := gl.Program{V: r.name()}
	r.programs[p.V] = &ProgramState{
		Attribs:   make(map[string]gl.Attrib),
		Resources: make(map[gl.Enum][]Resource),
		Uniforms:  make(map[gl.Uniform]Upload),
	}
	return p
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.record("DeleteProgram", p)
	st := r.programs[p.V]
	if st == nil {
		return
	}
	delete(r.programs, p.V)
	for _, s := range st.Attached {
		r.collectShader(s)
	}
	if r.Program == p {
		r.Program = gl.Program{}
	}
}

func (r *Recorder) IsProgram(p gl.Program) bool {
	r.record("IsProgram", p)
	return r.programs[p.V] != nil
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p)
	if !p.IsZero() {
		if st := r.program(p); st == nil || !st.Linked {
			r.fail(gl.INVALID_OPERATION)
			return
		}
	}
	r.Program = p
}

// LinkProgram succeeds when at least one shader is attached and every
// attached shader compiled.
func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p)
	st := r.program(p)
	if st == nil {
		return
	}
	st.Linked, st.Log = true, ""
	if len(st.Attached) == 0 {
		st.Linked, st.Log = false, "error: no shaders attached to the program\n"
		return
	}
	for _, s := range st.Attached {
		if ss := r.shaders[s.V]; ss == nil || !ss.Compiled {
			st.Linked, st.Log = false, "error: linking with uncompiled/unspecialized shader\n"
			return
		}
	}
	if r.OnLink != nil {
		r.OnLink(p)
	}
}

func (r *Recorder) ValidateProgram(p gl.Program) {
	r.record("ValidateProgram", p)
	if st := r.program(p); st != nil {
		st.Validated = st.Linked
		if !st.Linked {
			st.Log = "error: program not linked\n"
		}
	}
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p, s)
	st, ss := r.program(p), r.shader(s)
	if st == nil || ss == nil {
		return
	}
	if slices.Contains(st.Attached, s) {
		r.fail(gl.INVALID_OPERATION)
		return
	}
	st.Attached = append(st.Attached, s)
}

func (r *Recorder) DetachShader(p gl.Program, s gl.Shader) {
	r.record("DetachShader", p, s)
	st := r.program(p)
	if st == nil {
		return
	}
	i := slices.Index(st.Attached, s)
	if i < 0 {
		r.fail(gl.INVALID_OPERATION)
		return
	}
	st.Attached = slices.Delete(st.Attached, i, i+1)
	r.collectShader(s)
}

func (r *Recorder) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	r.record("BindAttribLocation", p, a, name)
	if st := r.program(p); st != nil {
		st.Attribs[name] = a
	}
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	r.record("GetProgrami", p, pname)
	st := r.program(p)
	if st == nil {
		return 0
	}
	switch pname {
	case gl.DELETE_STATUS:
		return boolean(st.Deleted)
	case gl.LINK_STATUS:
		return boolean(st.Linked)
	case gl.VALIDATE_STATUS:
		return boolean(st.Validated)
	case gl.INFO_LOG_LENGTH:
		if st.Log == "" {
			return 0
		}
		return len(st.Log) + 1
	case gl.ATTACHED_SHADERS:
		return len(st.Attached)
	case gl.ACTIVE_UNIFORMS:
		return len(st.Resources[gl.UNIFORM])
	case gl.ACTIVE_UNIFORM_BLOCKS:
		return len(st.Resources[gl.UNIFORM_BLOCK])
	case gl.ACTIVE_ATTRIBUTES:
		return len(st.Resources[gl.PROGRAM_INPUT])
	default:
		return 0
	}
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	r.record("GetProgramInfoLog", p)
	if st := r.program(p); st != nil {
		return st.Log
	}
	return ""
}

func (r *Recorder) GetProgramInterfacei(p gl.Program, iface, pname gl.Enum) int {
	r.record("GetProgramInterfacei", p, iface, pname)
	st := r.program(p)
	if st == nil {
		return 0
	}
	switch pname {
	case gl.ACTIVE_RESOURCES:
		return len(st.Resources[iface])
	case gl.MAX_NAME_LENGTH:
		n := 0
		for _, res := range st.Resources[iface] {
			n = max(n, len(res.Name)+1)
		}
		return n
	default:
		r.fail(gl.INVALID_ENUM)
		return 0
	}
}

func (r *Recorder) resource(st *ProgramState, iface gl.Enum, index uint) *Resource {
	res := st.Resources[iface]
	if index >= uint(len(res)) {
		r.fail(gl.INVALID_VALUE)
		return nil
	}
	return &res[index]
}

func (r *Recorder) GetProgramResourcei(p gl.Program, iface gl.Enum, index uint, props []gl.Enum, params []int32) int {
	r.record("GetProgramResourcei", p, iface, index, props)
	st := r.program(p)
	if st == nil {
		return 0
	}
	res := r.resource(st, iface, index)
	if res == nil {
		return 0
	}
	n := min(len(props), len(params))
	for i, prop := range props[:n] {
		if prop == gl.NAME_LENGTH {
			params[i] = int32(len(res.Name) + 1)
			continue
		}
		v, ok := res.Props[prop]
		if !ok {
			r.fail(gl.INVALID_OPERATION)
			return i
		}
		params[i] = v
	}
	return n
}

func (r *Recorder) GetProgramResourceIndex(p gl.Program, iface gl.Enum, name string) uint {
	r.record("GetProgramResourceIndex", p, iface, name)
	st := r.program(p)
	if st == nil {
		return gl.INVALID_INDEX
	}
	for i, res := range st.Resources[iface] {
		if res.Name == name {
			return uint(i)
		}
	}
	return gl.INVALID_INDEX
}

func (r *Recorder) lookupProp(p gl.Program, iface gl.Enum, name string, prop gl.Enum) int {
	st := r.program(p)
	if st == nil {
		return -1
	}
	for _, res := range st.Resources[iface] {
		if res.Name == name {
			if v, ok := res.Props[prop]; ok {
				return int(v)
			}
			return -1
		}
	}
	return -1
}

func (r *Recorder) GetProgramResourceLocation(p gl.Program, iface gl.Enum, name string) int {
	r.record("GetProgramResourceLocation", p, iface, name)
	return r.lookupProp(p, iface, name, gl.LOCATION)
}

func (r *Recorder) GetProgramResourceLocationIndex(p gl.Program, iface gl.Enum, name string) int {
	r.record("GetProgramResourceLocationIndex", p, iface, name)
	return r.lookupProp(p, iface, name, gl.LOCATION_INDEX)
}

func (r *Recorder) GetProgramResourceName(p gl.Program, iface gl.Enum, index uint) string {
	r.record("GetProgramResourceName", p, iface, index)
	st := r.program(p)
	if st == nil {
		return ""
	}
	if res := r.resource(st, iface, index); res != nil {
		return res.Name
	}
	return ""
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p, name)
	return gl.Uniform{V: r.lookupProp(p, gl.UNIFORM, name, gl.LOCATION)}
}

func (r *Recorder) setBlockBinding(p gl.Program, iface gl.Enum, index, binding uint) {
	st := r.program(p)
	if st == nil {
		return
	}
	if res := r.resource(st, iface, index); res != nil {
		res.Props[gl.BUFFER_BINDING] = int32(binding)
	}
}

func (r *Recorder) UniformBlockBinding(p gl.Program, index, binding uint) {
	r.record("UniformBlockBinding", p, index, binding)
	r.setBlockBinding(p, gl.UNIFORM_BLOCK, index, binding)
}

func (r *Recorder) ShaderStorageBlockBinding(p gl.Program, index, binding uint) {
	r.record("ShaderStorageBlockBinding", p, index, binding)
	r.setBlockBinding(p, gl.SHADER_STORAGE_BLOCK, index, binding)
}

func (r *Recorder) upload(p gl.Program, loc gl.Uniform, u Upload) {
	r.record(u.Entry, p, loc, u)
	st := r.program(p)
	if st == nil || !st.Linked {
		r.fail(gl.INVALID_OPERATION)
		return
	}
	if loc.V == -1 {
		return
	}
	st.Uniforms[loc] = u
}

func (r *Recorder) ProgramUniformfv(p gl.Program, loc gl.Uniform, n int, v []float32) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformfv", N: n, Floats: slices.Clone(v)})
}

func (r *Recorder) ProgramUniformiv(p gl.Program, loc gl.Uniform, n int, v []int32) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformiv", N: n, Ints: slices.Clone(v)})
}

func (r *Recorder) ProgramUniformuiv(p gl.Program, loc gl.Uniform, n int, v []uint32) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformuiv", N: n, Uints: slices.Clone(v)})
}

func (r *Recorder) ProgramUniformdv(p gl.Program, loc gl.Uniform, n int, v []float64) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformdv", N: n, Doubles: slices.Clone(v)})
}

func (r *Recorder) ProgramUniformMatrixfv(p gl.Program, loc gl.Uniform, cols, rows int, transpose bool, v []float32) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformMatrixfv", Cols: cols, Rows: rows, Transpose: transpose, Floats: slices.Clone(v)})
}

func (r *Recorder) ProgramUniformMatrixdv(p gl.Program, loc gl.Uniform, cols, rows int, transpose bool, v []float64) {
	r.upload(p, loc, Upload{Entry: "ProgramUniformMatrixdv", Cols: cols, Rows: rows, Transpose: transpose, Doubles: slices.Clone(v)})
}

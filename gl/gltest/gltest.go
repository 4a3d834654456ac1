// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides an in-memory gl.Functions for tests. It keeps
// just enough object state to answer the queries the wrappers make, and
// records every call.
package gltest

import (
	"slices"

	"glutils.org/gl"
)

// Call is one recorded entry point invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder implements gl.Functions without a driver. The zero value is
// not usable; call New.
type Recorder struct {
	Calls []Call
	// Errors are returned by GetError in order. Failed operations append
	// to it like a driver would.
	Errors []gl.Enum
	// Strings and Integers answer GetString and GetInteger.
	Strings  map[gl.Enum]string
	Integers map[gl.Enum]int
	Enabled  map[gl.Enum]bool
	Labels   map[Label]string
	// CompileFunc decides the outcome of CompileShader. By default a
	// shader compiles when its source is not blank.
	CompileFunc func(typ gl.Enum, src string) (log string, ok bool)
	// SyncResults are returned by ClientWaitSync in order; once empty
	// ALREADY_SIGNALED is returned.
	SyncResults []gl.Enum
	// FailCreate makes the Create* entry points return the zero name.
	FailCreate bool
	// OnLink runs after a successful LinkProgram. Tests use it to add
	// the resources a driver would reflect from the linked shaders.
	OnLink func(p gl.Program)

	Bound       map[gl.Enum]gl.Buffer
	Indexed     map[IndexedTarget]BufferBinding
	Units       map[int]gl.Texture
	Program     gl.Program
	VertexArray gl.VertexArray

	debug    func(gl.DebugMessage)
	next     uint
	buffers  map[uint]*BufferState
	shaders  map[uint]*ShaderState
	programs map[uint]*ProgramState
	textures map[uint]*TextureState
	arrays   map[uint]*VertexArrayState
	syncs    map[uintptr]*SyncState
}

// Label identifies a labeled object.
type Label struct {
	Identifier gl.Enum
	Name       uint
}

type IndexedTarget struct {
	Target gl.Enum
	Index  int
}

type BufferBinding struct {
	Buffer       gl.Buffer
	Offset, Size int
}

var _ gl.Functions = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{
		Strings: map[gl.Enum]string{
			gl.VENDOR:                   "gltest",
			gl.RENDERER:                 "gltest recorder",
			gl.VERSION:                  "4.6.0 gltest",
			gl.SHADING_LANGUAGE_VERSION: "4.60",
			gl.EXTENSIONS:               "GL_ARB_gl_spirv GL_KHR_debug",
		},
		Integers: map[gl.Enum]int{
			gl.MAJOR_VERSION:                      4,
			gl.MINOR_VERSION:                      6,
			gl.CONTEXT_PROFILE_MASK:               gl.CONTEXT_CORE_PROFILE_BIT,
			gl.NUM_EXTENSIONS:                     2,
			gl.MAX_TEXTURE_SIZE:                   16384,
			gl.MAX_3D_TEXTURE_SIZE:                2048,
			gl.MAX_VERTEX_ATTRIBS:                 16,
			gl.MAX_UNIFORM_BLOCK_SIZE:             65536,
			gl.MAX_UNIFORM_BUFFER_BINDINGS:        84,
			gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS: 16,
			gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:   192,
			gl.MAX_LABEL_LENGTH:                   256,
		},
		Enabled:  make(map[gl.Enum]bool),
		Labels:   make(map[Label]string),
		Bound:    make(map[gl.Enum]gl.Buffer),
		Indexed:  make(map[IndexedTarget]BufferBinding),
		Units:    make(map[int]gl.Texture),
		buffers:  make(map[uint]*BufferState),
		shaders:  make(map[uint]*ShaderState),
		programs: make(map[uint]*ProgramState),
		textures: make(map[uint]*TextureState),
		arrays:   make(map[uint]*VertexArrayState),
		syncs:    make(map[uintptr]*SyncState),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) fail(code gl.Enum) {
	r.Errors = append(r.Errors, code)
}

func (r *Recorder) name() uint {
	r.next++
	return r.next
}

// Called returns the recorded calls to the named entry point.
func (r *Recorder) Called(name string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Last returns the most recent call to the named entry point.
func (r *Recorder) Last(name string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset clears the call log.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Live returns the number of objects that have not been deleted.
func (r *Recorder) Live() int {
	return len(r.buffers) + len(r.shaders) + len(r.programs) + len(r.textures) + len(r.arrays) + len(r.syncs)
}

func (r *Recorder) GetError() gl.Enum {
	r.record("GetError")
	if len(r.Errors) == 0 {
		return gl.NO_ERROR
	}
	code := r.Errors[0]
	r.Errors = slices.Delete(r.Errors, 0, 1)
	return code
}

func (r *Recorder) GetString(pname gl.Enum) string {
	r.record("GetString", pname)
	return r.Strings[pname]
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	r.record("GetInteger", pname)
	return r.Integers[pname]
}

func (r *Recorder) Enable(cap gl.Enum) {
	r.record("Enable", cap)
	r.Enabled[cap] = true
}

func (r *Recorder) Disable(cap gl.Enum) {
	r.record("Disable", cap)
	delete(r.Enabled, cap)
}

func (r *Recorder) ObjectLabel(identifier gl.Enum, name uint, label string) {
	r.record("ObjectLabel", identifier, name, label)
	r.Labels[Label{Identifier: identifier, Name: name}] = label
}

func (r *Recorder) DebugMessageCallback(cb func(gl.DebugMessage)) {
	r.record("DebugMessageCallback")
	r.debug = cb
}

func (r *Recorder) DebugMessageInsert(m gl.DebugMessage) {
	r.record("DebugMessageInsert", m)
	r.Emit(m)
}

// Emit delivers m to the installed debug callback if debug output is
// enabled.
func (r *Recorder) Emit(m gl.DebugMessage) {
	if r.debug != nil && r.Enabled[gl.DEBUG_OUTPUT] {
		r.debug(m)
	}
}

func boolean(b bool) int {
	if b {
		return gl.TRUE
	}
	return gl.FALSE
}

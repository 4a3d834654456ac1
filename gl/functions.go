// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gl wraps OpenGL 4.5 direct state access objects in small typed
handles.

Every operation takes the Functions table of the context that owns the
object. A table is only valid on the OS thread where its context is
current; callers lock their goroutine with runtime.LockOSThread before
making the context current and keep all calls on that goroutine.

Errors reported by the driver are returned as values. Nothing is retried.
*/
package gl

// Functions is the table of driver entry points used by the wrappers.
// Package gogl implements it on top of a native context; package gltest
// provides an in-memory implementation for tests.
type Functions interface {
	GetError() Enum
	GetString(pname Enum) string
	GetInteger(pname Enum) int
	Enable(cap Enum)
	Disable(cap Enum)
	ObjectLabel(identifier Enum, name uint, label string)
	DebugMessageCallback(cb func(DebugMessage))
	DebugMessageInsert(m DebugMessage)

	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	IsBuffer(b Buffer) bool
	GetNamedBufferParameteri(b Buffer, pname Enum) int
	GetNamedBufferParameteri64(b Buffer, pname Enum) int64
	NamedBufferData(b Buffer, size int, data []byte, usage Enum)
	NamedBufferStorage(b Buffer, size int, data []byte, flags Enum)
	NamedBufferSubData(b Buffer, offset int, data []byte)
	GetNamedBufferSubData(b Buffer, offset int, data []byte)
	MapNamedBuffer(b Buffer, access Enum) []byte
	MapNamedBufferRange(b Buffer, offset, length int, access Enum) []byte
	UnmapNamedBuffer(b Buffer) bool
	FlushMappedNamedBufferRange(b Buffer, offset, length int)
	CopyNamedBufferSubData(src, dst Buffer, readOffset, writeOffset, size int)
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index int, b Buffer)
	BindBufferRange(target Enum, index int, b Buffer, offset, size int)

	CreateShader(typ Enum) Shader
	DeleteShader(s Shader)
	IsShader(s Shader) bool
	ShaderSource(s Shader, src ...string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	ShaderBinary(shaders []Shader, format Enum, binary []byte)
	SpecializeShader(s Shader, entry string, indices, values []uint32)

	CreateProgram() Program
	DeleteProgram(p Program)
	IsProgram(p Program) bool
	UseProgram(p Program)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetProgramInterfacei(p Program, iface, pname Enum) int
	GetProgramResourcei(p Program, iface Enum, index uint, props []Enum, params []int32) int
	GetProgramResourceIndex(p Program, iface Enum, name string) uint
	GetProgramResourceLocation(p Program, iface Enum, name string) int
	GetProgramResourceLocationIndex(p Program, iface Enum, name string) int
	GetProgramResourceName(p Program, iface Enum, index uint) string
	GetUniformLocation(p Program, name string) Uniform
	UniformBlockBinding(p Program, index, binding uint)
	ShaderStorageBlockBinding(p Program, index, binding uint)
	// ProgramUniform*v upload len(v)/n elements of n components each,
	// 1 <= n <= 4.
	ProgramUniformfv(p Program, loc Uniform, n int, v []float32)
	ProgramUniformiv(p Program, loc Uniform, n int, v []int32)
	ProgramUniformuiv(p Program, loc Uniform, n int, v []uint32)
	ProgramUniformdv(p Program, loc Uniform, n int, v []float64)
	// ProgramUniformMatrix*v upload len(v)/(cols*rows) column-major
	// matrices, 2 <= cols, rows <= 4.
	ProgramUniformMatrixfv(p Program, loc Uniform, cols, rows int, transpose bool, v []float32)
	ProgramUniformMatrixdv(p Program, loc Uniform, cols, rows int, transpose bool, v []float64)

	CreateTexture(target Enum) Texture
	DeleteTexture(t Texture)
	IsTexture(t Texture) bool
	TextureStorage2D(t Texture, levels int, format Enum, width, height int)
	TextureStorage3D(t Texture, levels int, format Enum, width, height, depth int)
	TextureSubImage2D(t Texture, level, x, y, width, height int, format, ty Enum, pixels []byte)
	TextureParameteri(t Texture, pname Enum, param int)
	GetTextureLevelParameteri(t Texture, level int, pname Enum) int
	GenerateTextureMipmap(t Texture)
	BindTextureUnit(unit int, t Texture)

	CreateVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	IsVertexArray(a VertexArray) bool
	BindVertexArray(a VertexArray)
	VertexArrayVertexBuffer(a VertexArray, binding int, b Buffer, offset, stride int)
	VertexArrayVertexBuffers(a VertexArray, first int, bufs []Buffer, offsets, strides []int)
	VertexArrayElementBuffer(a VertexArray, b Buffer)
	VertexArrayAttribBinding(a VertexArray, attr Attrib, binding int)
	EnableVertexArrayAttrib(a VertexArray, attr Attrib)
	DisableVertexArrayAttrib(a VertexArray, attr Attrib)
	VertexArrayBindingDivisor(a VertexArray, binding, divisor int)
	VertexArrayAttribFormat(a VertexArray, attr Attrib, size int, ty Enum, normalized bool, relOffset int)
	VertexArrayAttribIFormat(a VertexArray, attr Attrib, size int, ty Enum, relOffset int)
	VertexArrayAttribLFormat(a VertexArray, attr Attrib, size int, ty Enum, relOffset int)

	FenceSync(condition, flags Enum) Sync
	DeleteSync(s Sync)
	IsSync(s Sync) bool
	ClientWaitSync(s Sync, flags Enum, timeout uint64) Enum
	WaitSync(s Sync, flags Enum, timeout uint64)
}

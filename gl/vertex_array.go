// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "fmt"

func CreateVertexArray(f Functions) (VertexArray, error) {
	a := f.CreateVertexArray()
	if !a.Valid() {
		return VertexArray{}, failure(f, "CreateVertexArrays")
	}
	return a, nil
}

func (a VertexArray) Delete(f Functions) {
	f.DeleteVertexArray(a)
}

func (a VertexArray) Is(f Functions) bool {
	return f.IsVertexArray(a)
}

func (a VertexArray) Bind(f Functions) {
	f.BindVertexArray(a)
}

// BindVertexBuffer binds b to a vertex buffer binding point. offset is
// the position of the first element and stride the distance between
// elements, both in bytes.
func (a VertexArray) BindVertexBuffer(f Functions, binding int, b Buffer, offset, stride int) {
	f.VertexArrayVertexBuffer(a, binding, b, offset, stride)
}

// BindVertexBuffers binds consecutive binding points starting at first.
func (a VertexArray) BindVertexBuffers(f Functions, first int, bufs []Buffer, offsets, strides []int) error {
	if len(offsets) != len(bufs) || len(strides) != len(bufs) {
		return fmt.Errorf("gl: BindVertexBuffers: %d buffers, %d offsets, %d strides", len(bufs), len(offsets), len(strides))
	}
	f.VertexArrayVertexBuffers(a, first, bufs, offsets, strides)
	return nil
}

// BindElementBuffer sets the index buffer of a.
func (a VertexArray) BindElementBuffer(f Functions, b Buffer) {
	f.VertexArrayElementBuffer(a, b)
}

// BindAttribute sources attribute attr from a vertex buffer binding point.
func (a VertexArray) BindAttribute(f Functions, attr Attrib, binding int) {
	f.VertexArrayAttribBinding(a, attr, binding)
}

func (a VertexArray) EnableAttribute(f Functions, attr Attrib) {
	f.EnableVertexArrayAttrib(a, attr)
}

func (a VertexArray) DisableAttribute(f Functions, attr Attrib) {
	f.DisableVertexArrayAttrib(a, attr)
}

// SetBindingDivisor sets the number of instances drawn before the binding
// advances; zero advances per vertex.
func (a VertexArray) SetBindingDivisor(f Functions, binding, divisor int) {
	f.VertexArrayBindingDivisor(a, binding, divisor)
}

// SetAttribFormat describes a floating point attribute. Fixed point data
// is normalized to [0, 1] or [-1, 1] when normalized is set.
func (a VertexArray) SetAttribFormat(f Functions, attr Attrib, size AttribSize, ty AttribType, normalized bool, relOffset int) {
	f.VertexArrayAttribFormat(a, attr, int(size), Enum(ty), normalized, relOffset)
}

// SetAttribIFormat describes an integer attribute.
func (a VertexArray) SetAttribIFormat(f Functions, attr Attrib, size AttribSize, ty AttribType, relOffset int) {
	f.VertexArrayAttribIFormat(a, attr, int(size), Enum(ty), relOffset)
}

// SetAttribLFormat describes a 64 bit attribute.
func (a VertexArray) SetAttribLFormat(f Functions, attr Attrib, size AttribSize, ty AttribType, relOffset int) {
	f.VertexArrayAttribLFormat(a, attr, int(size), Enum(ty), relOffset)
}

func (a VertexArray) SetLabel(f Functions, label string) {
	f.ObjectLabel(VERTEX_ARRAY, a.V, label)
}

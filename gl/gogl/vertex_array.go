// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) CreateVertexArray() glu.VertexArray {
	var a uint32
	gl.CreateVertexArrays(1, &a)
	return glu.VertexArray{V: uint(a)}
}

func (f *Functions) DeleteVertexArray(a glu.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

func (f *Functions) IsVertexArray(a glu.VertexArray) bool {
	return gl.IsVertexArray(uint32(a.V))
}

func (f *Functions) BindVertexArray(a glu.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *Functions) VertexArrayVertexBuffer(a glu.VertexArray, binding int, b glu.Buffer, offset, stride int) {
	gl.VertexArrayVertexBuffer(uint32(a.V), uint32(binding), uint32(b.V), offset, int32(stride))
}

func (f *Functions) VertexArrayVertexBuffers(a glu.VertexArray, first int, bufs []glu.Buffer, offsets, strides []int) {
	if len(bufs) == 0 {
		return
	}
	names := make([]uint32, len(bufs))
	offs := make([]int, len(bufs))
	strs := make([]int32, len(bufs))
	for i, b := range bufs {
		names[i] = uint32(b.V)
		offs[i] = offsets[i]
		strs[i] = int32(strides[i])
	}
	gl.VertexArrayVertexBuffers(uint32(a.V), uint32(first), int32(len(names)), &names[0], &offs[0], &strs[0])
}

func (f *Functions) VertexArrayElementBuffer(a glu.VertexArray, b glu.Buffer) {
	gl.VertexArrayElementBuffer(uint32(a.V), uint32(b.V))
}

func (f *Functions) VertexArrayAttribBinding(a glu.VertexArray, attr glu.Attrib, binding int) {
	gl.VertexArrayAttribBinding(uint32(a.V), uint32(attr), uint32(binding))
}

func (f *Functions) EnableVertexArrayAttrib(a glu.VertexArray, attr glu.Attrib) {
	gl.EnableVertexArrayAttrib(uint32(a.V), uint32(attr))
}

func (f *Functions) DisableVertexArrayAttrib(a glu.VertexArray, attr glu.Attrib) {
	gl.DisableVertexArrayAttrib(uint32(a.V), uint32(attr))
}

func (f *Functions) VertexArrayBindingDivisor(a glu.VertexArray, binding, divisor int) {
	gl.VertexArrayBindingDivisor(uint32(a.V), uint32(binding), uint32(divisor))
}

func (f *Functions) VertexArrayAttribFormat(a glu.VertexArray, attr glu.Attrib, size int, ty glu.Enum, normalized bool, relOffset int) {
	gl.VertexArrayAttribFormat(uint32(a.V), uint32(attr), int32(size), uint32(ty), normalized, uint32(relOffset))
}

func (f *Functions) VertexArrayAttribIFormat(a glu.VertexArray, attr glu.Attrib, size int, ty glu.Enum, relOffset int) {
	gl.VertexArrayAttribIFormat(uint32(a.V), uint32(attr), int32(size), uint32(ty), uint32(relOffset))
}

func (f *Functions) VertexArrayAttribLFormat(a glu.VertexArray, attr glu.Attrib, size int, ty glu.Enum, relOffset int) {
	gl.VertexArrayAttribLFormat(uint32(a.V), uint32(attr), int32(size), uint32(ty), uint32(relOffset))
}

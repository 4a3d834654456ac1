// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) CreateBuffer() glu.Buffer {
	var b uint32
	gl.CreateBuffers(1, &b)
	return glu.Buffer{V: uint(b)}
}

func (f *Functions) DeleteBuffer(b glu.Buffer) {
	v := uint32(b.V)
	gl.DeleteBuffers(1, &v)
}

func (f *Functions) IsBuffer(b glu.Buffer) bool {
	return gl.IsBuffer(uint32(b.V))
}

func (f *Functions) GetNamedBufferParameteri(b glu.Buffer, pname glu.Enum) int {
	var v int32
	gl.GetNamedBufferParameteriv(uint32(b.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetNamedBufferParameteri64(b glu.Buffer, pname glu.Enum) int64 {
	var v int64
	gl.GetNamedBufferParameteri64v(uint32(b.V), uint32(pname), &v)
	return v
}

func (f *Functions) NamedBufferData(b glu.Buffer, size int, data []byte, usage glu.Enum) {
	gl.NamedBufferData(uint32(b.V), size, ptr(data), uint32(usage))
}

func (f *Functions) NamedBufferStorage(b glu.Buffer, size int, data []byte, flags glu.Enum) {
	gl.NamedBufferStorage(uint32(b.V), size, ptr(data), uint32(flags))
}

func (f *Functions) NamedBufferSubData(b glu.Buffer, offset int, data []byte) {
	gl.NamedBufferSubData(uint32(b.V), offset, len(data), ptr(data))
}

func (f *Functions) GetNamedBufferSubData(b glu.Buffer, offset int, data []byte) {
	gl.GetNamedBufferSubData(uint32(b.V), offset, len(data), ptr(data))
}

func (f *Functions) MapNamedBuffer(b glu.Buffer, access glu.Enum) []byte {
	p := gl.MapNamedBuffer(uint32(b.V), uint32(access))
	if p == nil {
		return nil
	}
	n := f.GetNamedBufferParameteri64(b, glu.BUFFER_MAP_LENGTH)
	return unsafe.Slice((*byte)(p), n)
}

func (f *Functions) MapNamedBufferRange(b glu.Buffer, offset, length int, access glu.Enum) []byte {
	p := gl.MapNamedBufferRange(uint32(b.V), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (f *Functions) UnmapNamedBuffer(b glu.Buffer) bool {
	return gl.UnmapNamedBuffer(uint32(b.V))
}

func (f *Functions) FlushMappedNamedBufferRange(b glu.Buffer, offset, length int) {
	gl.FlushMappedNamedBufferRange(uint32(b.V), offset, length)
}

func (f *Functions) CopyNamedBufferSubData(src, dst glu.Buffer, readOffset, writeOffset, size int) {
	gl.CopyNamedBufferSubData(uint32(src.V), uint32(dst.V), readOffset, writeOffset, size)
}

func (f *Functions) BindBuffer(target glu.Enum, b glu.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindBufferBase(target glu.Enum, index int, b glu.Buffer) {
	gl.BindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *Functions) BindBufferRange(target glu.Enum, index int, b glu.Buffer, offset, size int) {
	gl.BindBufferRange(uint32(target), uint32(index), uint32(b.V), offset, size)
}

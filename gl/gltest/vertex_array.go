// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import "glutils.org/gl"

// VertexArrayState is the simulated state of a vertex array object.
type VertexArrayState struct {
	Bindings map[int]VertexBinding
	Element  gl.Buffer
	Attribs  map[gl.Attrib]*AttribState
}

type VertexBinding struct {
	Buffer         gl.Buffer
	Offset, Stride int
	Divisor        int
}

// AttribState is the format of one vertex attribute. Entry names the
// format entry point that set it.
type AttribState struct {
	Enabled    bool
	Binding    int
	Size       int
	Type       gl.Enum
	Normalized bool
	RelOffset  int
	Entry      string
}

func (r *Recorder) VertexArrayState(a gl.VertexArray) *VertexArrayState {
	return r.arrays[a.V]
}

func (r *Recorder) array(a gl.VertexArray) *VertexArrayState {
	st := r.arrays[a.V]
	if st == nil {
		r.fail(gl.INVALID_OPERATION)
	}
	return st
}

func (st *VertexArrayState) attrib(a gl.Attrib) *AttribState {
	s := st.Attribs[a]
	if s == nil {
		s = &AttribState{Binding: int(a), Size: 4, Type: gl.FLOAT}
		st.Attribs[a] = s
	}
	return s
}

func (r *Recorder) CreateVertexArray() gl.VertexArray {
	r.record("CreateVertexArray")
	if r.FailCreate {
		return gl.VertexArray{}
	}
	a := gl.VertexArray{V: r.name()}
	r.arrays[a.V] = &VertexArrayState{
		Bindings: make(map[int]VertexBinding),
		Attribs:  make(map[gl.Attrib]*AttribState),
	}
	return a
}

func (r *Recorder) DeleteVertexArray(a gl.VertexArray) {
	r.record("DeleteVertexArray", a)
	delete(r.arrays, a.V)
	if r.VertexArray == a {
		r.VertexArray = gl.VertexArray{}
	}
}

func (r *Recorder) IsVertexArray(a gl.VertexArray) bool {
	r.record("IsVertexArray", a)
	return r.arrays[a.V] != nil
}

func (r *Recorder) BindVertexArray(a gl.VertexArray) {
	r.record("BindVertexArray", a)
	if !a.IsZero() && r.array(a) == nil {
		return
	}
	r.VertexArray = a
}

func (r *Recorder) VertexArrayVertexBuffer(a gl.VertexArray, binding int, b gl.Buffer, offset, stride int) {
	r.record("VertexArrayVertexBuffer", a, binding, b, offset, stride)
	st := r.array(a)
	if st == nil {
		return
	}
	if offset < 0 || stride < 0 {
		r.fail(gl.INVALID_VALUE)
		return
	}
	vb := st.Bindings[binding]
	vb.Buffer, vb.Offset, vb.Stride = b, offset, stride
	st.Bindings[binding] = vb
}

func (r *Recorder) VertexArrayVertexBuffers(a gl.VertexArray, first int, bufs []gl.Buffer, offsets, strides []int) {
	r.record("VertexArrayVertexBuffers", a, first, bufs, offsets, strides)
	st := r.array(a)
	if st == nil {
		return
	}
	for i, b := range bufs {
		vb := st.Bindings[first+i]
		vb.Buffer, vb.Offset, vb.Stride = b, offsets[i], strides[i]
		st.Bindings[first+i] = vb
	}
}

func (r *Recorder) VertexArrayElementBuffer(a gl.VertexArray, b gl.Buffer) {
	r.record("VertexArrayElementBuffer", a, b)
	if st := r.array(a); st != nil {
		st.Element = b
	}
}

func (r *Recorder) VertexArrayAttribBinding(a gl.VertexArray, attr gl.Attrib, binding int) {
	r.record("VertexArrayAttribBinding", a, attr, binding)
	if st := r.array(a); st != nil {
		st.attrib(attr).Binding = binding
	}
}

func (r *Recorder) EnableVertexArrayAttrib(a gl.VertexArray, attr gl.Attrib) {
	r.record("EnableVertexArrayAttrib", a, attr)
	if st := r.array(a); st != nil {
		st.attrib(attr).Enabled = true
	}
}

func (r *Recorder) DisableVertexArrayAttrib(a gl.VertexArray, attr gl.Attrib) {
	r.record("DisableVertexArrayAttrib", a, attr)
	if st := r.array(a); st != nil {
		st.attrib(attr).Enabled = false
	}
}

func (r *Recorder) VertexArrayBindingDivisor(a gl.VertexArray, binding, divisor int) {
	r.record("VertexArrayBindingDivisor", a, binding, divisor)
	if st := r.array(a); st != nil {
		vb := st.Bindings[binding]
		vb.Divisor = divisor
		st.Bindings[binding] = vb
	}
}

func (r *Recorder) attribFormat(entry string, a gl.VertexArray, attr gl.Attrib, size int, ty gl.Enum, normalized bool, relOffset int) {
	r.record(entry, a, attr, size, ty, normalized, relOffset)
	st := r.array(a)
	if st == nil {
		return
	}
	if size < 1 || size > 4 || relOffset < 0 {
		r.fail(gl.INVALID_VALUE)
		return
	}
	s := st.attrib(attr)
	s.Size, s.Type, s.Normalized, s.RelOffset, s.Entry = size, ty, normalized, relOffset, entry
}

func (r *Recorder) VertexArrayAttribFormat(a gl.VertexArray, attr gl.Attrib, size int, ty gl.Enum, normalized bool, relOffset int) {
	r.attribFormat("VertexArrayAttribFormat", a, attr, size, ty, normalized, relOffset)
}

func (r *Recorder) VertexArrayAttribIFormat(a gl.VertexArray, attr gl.Attrib, size int, ty gl.Enum, relOffset int) {
	r.attribFormat("VertexArrayAttribIFormat", a, attr, size, ty, false, relOffset)
}

func (r *Recorder) VertexArrayAttribLFormat(a gl.VertexArray, attr gl.Attrib, size int, ty gl.Enum, relOffset int) {
	r.attribFormat("VertexArrayAttribLFormat", a, attr, size, ty, false, relOffset)
}

// SPDX-License-Identifier: Unlicense OR MIT

package gltest

import "glutils.org/gl"

// BufferState is the simulated store of a buffer.
type BufferState struct {
	Data      []byte
	Usage     gl.Enum
	Flags     gl.Enum
	Immutable bool

	Mapped      bool
	MapOffset   int
	MapLength   int
	Access      gl.Enum
	AccessFlags gl.Enum
	// Corrupt makes the next UnmapNamedBuffer report failure.
	Corrupt bool
}

// Buffer returns the state of b, or nil if b is not a live buffer.
func (r *Recorder) Buffer(b gl.Buffer) *BufferState {
	return r.buffers[b.V]
}

func (r *Recorder) buffer(b gl.Buffer) *BufferState {
	s := r.buffers[b.V]
	if s == nil {
		r.fail(gl.INVALID_OPERATION)
	}
	return s
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	r.record("CreateBuffer")
	if r.FailCreate {
		return gl.Buffer{}
	}
	b := gl.Buffer{V: r.name()}
	r.buffers[b.V] = &BufferState{Usage: gl.STATIC_DRAW, Access: gl.READ_WRITE}
	return b
}

func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	r.record("DeleteBuffer", b)
	delete(r.buffers, b.V)
}

func (r *Recorder) IsBuffer(b gl.Buffer) bool {
	r.record("IsBuffer", b)
	return r.buffers[b.V] != nil
}

func (r *Recorder) GetNamedBufferParameteri(b gl.Buffer, pname gl.Enum) int {
	r.record("GetNamedBufferParameteri", b, pname)
	return int(r.bufferParam(b, pname))
}

func (r *Recorder) GetNamedBufferParameteri64(b gl.Buffer, pname gl.Enum) int64 {
	r.record("GetNamedBufferParameteri64", b, pname)
	return r.bufferParam(b, pname)
}

func (r *Recorder) bufferParam(b gl.Buffer, pname gl.Enum) int64 {
	s := r.buffer(b)
	if s == nil {
		return 0
	}
	switch pname {
	case gl.BUFFER_ACCESS:
		return int64(s.Access)
	case gl.BUFFER_ACCESS_FLAGS:
		return int64(s.AccessFlags)
	case gl.BUFFER_IMMUTABLE_STORAGE:
		return int64(boolean(s.Immutable))
	case gl.BUFFER_MAPPED:
		return int64(boolean(s.Mapped))
	case gl.BUFFER_MAP_LENGTH:
		return int64(s.MapLength)
	case gl.BUFFER_MAP_OFFSET:
		return int64(s.MapOffset)
	case gl.BUFFER_SIZE:
		return int64(len(s.Data))
	case gl.BUFFER_STORAGE_FLAGS:
		return int64(s.Flags)
	case gl.BUFFER_USAGE:
		return int64(s.Usage)
	default:
		r.fail(gl.INVALID_ENUM)
		return 0
	}
}

func (r *Recorder) NamedBufferData(b gl.Buffer, size int, data []byte, usage gl.Enum) {
	r.record("NamedBufferData", b, size, usage)
	s := r.buffer(b)
	switch {
	case s == nil:
	case s.Immutable:
		r.fail(gl.INVALID_OPERATION)
	case size < 0:
		r.fail(gl.INVALID_VALUE)
	default:
		s.Data = make([]byte, size)
		copy(s.Data, data)
		s.Usage = usage
		s.Mapped = false
	}
}

func (r *Recorder) NamedBufferStorage(b gl.Buffer, size int, data []byte, flags gl.Enum) {
	r.record("NamedBufferStorage", b, size, flags)
	s := r.buffer(b)
	switch {
	case s == nil:
	case s.Immutable:
		r.fail(gl.INVALID_OPERATION)
	case size <= 0:
		r.fail(gl.INVALID_VALUE)
	default:
		s.Data = make([]byte, size)
		copy(s.Data, data)
		s.Flags = flags
		s.Immutable = true
		s.Usage = gl.DYNAMIC_DRAW
	}
}

func (r *Recorder) inRange(s *BufferState, offset, length int) bool {
	if offset < 0 || length < 0 || offset+length > len(s.Data) {
		r.fail(gl.INVALID_VALUE)
		return false
	}
	return true
}

func (r *Recorder) NamedBufferSubData(b gl.Buffer, offset int, data []byte) {
	r.record("NamedBufferSubData", b, offset, len(data))
	s := r.buffer(b)
	if s == nil || !r.inRange(s, offset, len(data)) {
		return
	}
	if s.Immutable && s.Flags&gl.DYNAMIC_STORAGE_BIT == 0 {
		r.fail(gl.INVALID_OPERATION)
		return
	}
	copy(s.Data[offset:], data)
}

func (r *Recorder) GetNamedBufferSubData(b gl.Buffer, offset int, data []byte) {
	r.record("GetNamedBufferSubData", b, offset, len(data))
	s := r.buffer(b)
	if s == nil || !r.inRange(s, offset, len(data)) {
		return
	}
	copy(data, s.Data[offset:])
}

func (r *Recorder) MapNamedBuffer(b gl.Buffer, access gl.Enum) []byte {
	r.record("MapNamedBuffer", b, access)
	s := r.buffer(b)
	if s == nil {
		return nil
	}
	if s.Mapped {
		r.fail(gl.INVALID_OPERATION)
		return nil
	}
	var flags gl.Enum
	switch access {
	case gl.READ_ONLY:
		flags = gl.MAP_READ_BIT
	case gl.WRITE_ONLY:
		flags = gl.MAP_WRITE_BIT
	case gl.READ_WRITE:
		flags = gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
	default:
		r.fail(gl.INVALID_ENUM)
		return nil
	}
	s.Mapped, s.MapOffset, s.MapLength = true, 0, len(s.Data)
	s.Access, s.AccessFlags = access, flags
	return s.Data
}

func (r *Recorder) MapNamedBufferRange(b gl.Buffer, offset, length int, access gl.Enum) []byte {
	r.record("MapNamedBufferRange", b, offset, length, access)
	s := r.buffer(b)
	if s == nil || !r.inRange(s, offset, length) {
		return nil
	}
	if s.Mapped || length == 0 || access&(gl.MAP_READ_BIT|gl.MAP_WRITE_BIT) == 0 {
		r.fail(gl.INVALID_OPERATION)
		return nil
	}
	s.Mapped, s.MapOffset, s.MapLength = true, offset, length
	s.AccessFlags = access
	switch {
	case access&gl.MAP_READ_BIT != 0 && access&gl.MAP_WRITE_BIT != 0:
		s.Access = gl.READ_WRITE
	case access&gl.MAP_WRITE_BIT != 0:
		s.Access = gl.WRITE_ONLY
	default:
		s.Access = gl.READ_ONLY
	}
	return s.Data[offset : offset+length : offset+length]
}

func (r *Recorder) UnmapNamedBuffer(b gl.Buffer) bool {
	r.record("UnmapNamedBuffer", b)
	s := r.buffer(b)
	if s == nil {
		return false
	}
	if !s.Mapped {
		r.fail(gl.INVALID_OPERATION)
		return false
	}
	s.Mapped, s.MapOffset, s.MapLength, s.AccessFlags = false, 0, 0, 0
	if s.Corrupt {
		s.Corrupt = false
		return false
	}
	return true
}

func (r *Recorder) FlushMappedNamedBufferRange(b gl.Buffer, offset, length int) {
	r.record("FlushMappedNamedBufferRange", b, offset, length)
	s := r.buffer(b)
	if s == nil {
		return
	}
	if !s.Mapped || s.AccessFlags&gl.MAP_FLUSH_EXPLICIT_BIT == 0 || offset < 0 || offset+length > s.MapLength {
		r.fail(gl.INVALID_OPERATION)
	}
}

func (r *Recorder) CopyNamedBufferSubData(src, dst gl.Buffer, readOffset, writeOffset, size int) {
	r.record("CopyNamedBufferSubData", src, dst, readOffset, writeOffset, size)
	s, d := r.buffer(src), r.buffer(dst)
	if s == nil || d == nil || !r.inRange(s, readOffset, size) || !r.inRange(d, writeOffset, size) {
		return
	}
	copy(d.Data[writeOffset:writeOffset+size], s.Data[readOffset:readOffset+size])
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b)
	r.Bound[target] = b
}

func (r *Recorder) BindBufferBase(target gl.Enum, index int, b gl.Buffer) {
	r.record("BindBufferBase", target, index, b)
	size := 0
	if s := r.buffers[b.V]; s != nil {
		size = len(s.Data)
	}
	r.Indexed[IndexedTarget{Target: target, Index: index}] = BufferBinding{Buffer: b, Size: size}
	r.Bound[target] = b
}

func (r *Recorder) BindBufferRange(target gl.Enum, index int, b gl.Buffer, offset, size int) {
	r.record("BindBufferRange", target, index, b, offset, size)
	if s := r.buffer(b); s == nil || !r.inRange(s, offset, size) {
		return
	}
	r.Indexed[IndexedTarget{Target: target, Index: index}] = BufferBinding{Buffer: b, Offset: offset, Size: size}
	r.Bound[target] = b
}

// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// BufferParameter names a value returned by GetNamedBufferParameter.
type BufferParameter Enum

const (
	BufferAccess       BufferParameter = BUFFER_ACCESS
	BufferAccessFlags  BufferParameter = BUFFER_ACCESS_FLAGS
	BufferImmutable    BufferParameter = BUFFER_IMMUTABLE_STORAGE
	BufferMapped       BufferParameter = BUFFER_MAPPED
	BufferMapLength    BufferParameter = BUFFER_MAP_LENGTH
	BufferMapOffset    BufferParameter = BUFFER_MAP_OFFSET
	BufferSize         BufferParameter = BUFFER_SIZE
	BufferStorageFlags BufferParameter = BUFFER_STORAGE_FLAGS
	BufferUsageParam   BufferParameter = BUFFER_USAGE
)

// AccessMode is the access policy of MapNamedBuffer.
type AccessMode Enum

const (
	ReadOnly  AccessMode = READ_ONLY
	WriteOnly AccessMode = WRITE_ONLY
	ReadWrite AccessMode = READ_WRITE
)

func (a AccessMode) String() string {
	switch a {
	case ReadOnly:
		return "READ_ONLY"
	case WriteOnly:
		return "WRITE_ONLY"
	case ReadWrite:
		return "READ_WRITE"
	default:
		return fmt.Sprintf("AccessMode(0x%x)", uint(a))
	}
}

// AccessFlags is the access bit set of MapNamedBufferRange.
type AccessFlags Enum

const (
	MapRead             AccessFlags = MAP_READ_BIT
	MapWrite            AccessFlags = MAP_WRITE_BIT
	MapInvalidateRange  AccessFlags = MAP_INVALIDATE_RANGE_BIT
	MapInvalidateBuffer AccessFlags = MAP_INVALIDATE_BUFFER_BIT
	MapFlushExplicit    AccessFlags = MAP_FLUSH_EXPLICIT_BIT
	MapUnsynchronized   AccessFlags = MAP_UNSYNCHRONIZED_BIT
	MapPersistent       AccessFlags = MAP_PERSISTENT_BIT
	MapCoherent         AccessFlags = MAP_COHERENT_BIT
)

var accessFlagNames = []struct {
	bit  AccessFlags
	name string
}{
	{MapRead, "read"},
	{MapWrite, "write"},
	{MapInvalidateRange, "invalidate_range"},
	{MapInvalidateBuffer, "invalidate_buffer"},
	{MapFlushExplicit, "flush_explicit"},
	{MapUnsynchronized, "unsynchronized"},
	{MapPersistent, "persistent"},
	{MapCoherent, "coherent"},
}

func (a AccessFlags) String() string {
	var names []string
	for _, n := range accessFlagNames {
		if a&n.bit != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// BufferUsage is the usage hint of mutable buffer storage.
type BufferUsage Enum

const (
	StaticDraw  BufferUsage = STATIC_DRAW
	StaticRead  BufferUsage = STATIC_READ
	StaticCopy  BufferUsage = STATIC_COPY
	DynamicDraw BufferUsage = DYNAMIC_DRAW
	DynamicRead BufferUsage = DYNAMIC_READ
	DynamicCopy BufferUsage = DYNAMIC_COPY
	StreamDraw  BufferUsage = STREAM_DRAW
	StreamRead  BufferUsage = STREAM_READ
	StreamCopy  BufferUsage = STREAM_COPY
)

// StorageFlags is the bit set of immutable buffer storage.
type StorageFlags Enum

const (
	StorageDynamic       StorageFlags = DYNAMIC_STORAGE_BIT
	StorageMapRead       StorageFlags = MAP_READ_BIT
	StorageMapWrite      StorageFlags = MAP_WRITE_BIT
	StorageMapPersistent StorageFlags = MAP_PERSISTENT_BIT
	StorageMapCoherent   StorageFlags = MAP_COHERENT_BIT
	StorageClient        StorageFlags = CLIENT_STORAGE_BIT
)

// CreateBuffer creates a buffer object with no storage.
func CreateBuffer(f Functions) Buffer {
	return f.CreateBuffer()
}

func (b Buffer) Delete(f Functions) {
	f.DeleteBuffer(b)
}

func (b Buffer) Is(f Functions) bool {
	return f.IsBuffer(b)
}

// Parameter queries a buffer parameter.
func (b Buffer) Parameter(f Functions, pname BufferParameter) int {
	return f.GetNamedBufferParameteri(b, Enum(pname))
}

// Parameter64 is like Parameter but reads a 64 bit value.
func (b Buffer) Parameter64(f Functions, pname BufferParameter) int64 {
	return f.GetNamedBufferParameteri64(b, Enum(pname))
}

// AccessMode returns the access policy of the current mapping.
func (b Buffer) AccessMode(f Functions) AccessMode {
	return AccessMode(b.Parameter(f, BufferAccess))
}

// AccessFlags returns the access bits of the current mapping, zero if
// unmapped.
func (b Buffer) AccessFlags(f Functions) AccessFlags {
	return AccessFlags(b.Parameter(f, BufferAccessFlags))
}

func (b Buffer) Immutable(f Functions) bool {
	return b.Parameter(f, BufferImmutable) != FALSE
}

func (b Buffer) Mapped(f Functions) bool {
	return b.Parameter(f, BufferMapped) != FALSE
}

func (b Buffer) MapLength(f Functions) int {
	return int(b.Parameter64(f, BufferMapLength))
}

func (b Buffer) MapOffset(f Functions) int {
	return int(b.Parameter64(f, BufferMapOffset))
}

// Size returns the size of the data store in bytes.
func (b Buffer) Size(f Functions) int {
	return int(b.Parameter64(f, BufferSize))
}

func (b Buffer) Usage(f Functions) BufferUsage {
	return BufferUsage(b.Parameter(f, BufferUsageParam))
}

func (b Buffer) StorageFlags(f Functions) StorageFlags {
	return StorageFlags(b.Parameter(f, BufferStorageFlags))
}

// Allocate (re)creates mutable storage of size bytes, initialized from
// data when it is not nil.
func (b Buffer) Allocate(f Functions, size int, usage BufferUsage, data []byte) error {
	if data != nil && len(data) < size {
		return fmt.Errorf("gl: Allocate: %d bytes of data for %d byte store", len(data), size)
	}
	f.NamedBufferData(b, size, data, Enum(usage))
	return nil
}

// AllocateImmutable creates storage that cannot be resized.
func (b Buffer) AllocateImmutable(f Functions, size int, flags StorageFlags, data []byte) error {
	if data != nil && len(data) < size {
		return fmt.Errorf("gl: AllocateImmutable: %d bytes of data for %d byte store", len(data), size)
	}
	f.NamedBufferStorage(b, size, data, Enum(flags))
	return nil
}

// Write copies data into the store starting at offset.
func (b Buffer) Write(f Functions, offset int, data []byte) {
	f.NamedBufferSubData(b, offset, data)
}

// Read copies len(data) bytes of the store starting at offset.
func (b Buffer) Read(f Functions, offset int, data []byte) {
	f.GetNamedBufferSubData(b, offset, data)
}

// Map maps the whole store. The result is nil if the driver failed; the
// slice is invalid after Unmap.
func (b Buffer) Map(f Functions, access AccessMode) []byte {
	return f.MapNamedBuffer(b, Enum(access))
}

// MapRange maps length bytes starting at offset.
func (b Buffer) MapRange(f Functions, offset, length int, access AccessFlags) []byte {
	return f.MapNamedBufferRange(b, offset, length, Enum(access))
}

// Unmap releases the current mapping.
func (b Buffer) Unmap(f Functions) error {
	if !f.UnmapNamedBuffer(b) {
		return fmt.Errorf("unmap buffer %d: %w", b.V, ErrUnmapCorrupted)
	}
	return nil
}

// FlushRange flushes a range of a MapFlushExplicit mapping. offset is
// relative to the start of the mapping.
func (b Buffer) FlushRange(f Functions, offset, length int) {
	f.FlushMappedNamedBufferRange(b, offset, length)
}

// CopyTo copies size bytes from b at readOffset into dst at writeOffset.
func (b Buffer) CopyTo(f Functions, dst Buffer, readOffset, writeOffset, size int) {
	f.CopyNamedBufferSubData(b, dst, readOffset, writeOffset, size)
}

// Bind binds b to a non-indexed target.
func (b Buffer) Bind(f Functions, target Enum) {
	f.BindBuffer(target, b)
}

// BindBase binds the whole store to an indexed target such as
// UNIFORM_BUFFER or SHADER_STORAGE_BUFFER.
func (b Buffer) BindBase(f Functions, target Enum, index int) {
	f.BindBufferBase(target, index, b)
}

func (b Buffer) BindRange(f Functions, target Enum, index, offset, size int) {
	f.BindBufferRange(target, index, b, offset, size)
}

func (b Buffer) SetLabel(f Functions, label string) {
	f.ObjectLabel(BUFFER, b.V, label)
}

// BufferOffset is a byte offset into a buffer.
type BufferOffset struct {
	Buffer Buffer
	Offset int
}

func (o BufferOffset) Write(f Functions, data []byte) {
	o.Buffer.Write(f, o.Offset, data)
}

func (o BufferOffset) Read(f Functions, data []byte) {
	o.Buffer.Read(f, o.Offset, data)
}

func (o BufferOffset) Map(f Functions, length int, access AccessFlags) []byte {
	return o.Buffer.MapRange(f, o.Offset, length, access)
}

// BufferRange is a byte range of a buffer.
type BufferRange struct {
	BufferOffset
	Size int
}

// Range returns the range of size bytes starting at offset.
func (b Buffer) Range(offset, size int) BufferRange {
	return BufferRange{BufferOffset: BufferOffset{Buffer: b, Offset: offset}, Size: size}
}

// Write writes data to the start of the range.
func (r BufferRange) Write(f Functions, data []byte) error {
	if len(data) > r.Size {
		return fmt.Errorf("gl: write of %d bytes to %d byte range", len(data), r.Size)
	}
	r.BufferOffset.Write(f, data)
	return nil
}

// Read fills data from the start of the range.
func (r BufferRange) Read(f Functions, data []byte) error {
	if len(data) > r.Size {
		return fmt.Errorf("gl: read of %d bytes from %d byte range", len(data), r.Size)
	}
	r.BufferOffset.Read(f, data)
	return nil
}

func (r BufferRange) Map(f Functions, access AccessFlags) []byte {
	return r.BufferOffset.Map(f, r.Size, access)
}

// Bind binds the range to an indexed target.
func (r BufferRange) Bind(f Functions, target Enum, index int) {
	r.Buffer.BindRange(f, target, index, r.Offset, r.Size)
}

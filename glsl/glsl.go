// SPDX-License-Identifier: Unlicense OR MIT

// Package glsl prints GLSL declarations.
package glsl

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is a GLSL variable type.
type Type uint8

const (
	Float Type = iota
	Vec2
	Vec3
	Vec4
	Int
	IVec2
	IVec3
	IVec4
	Uint
	UVec2
	UVec3
	UVec4
	Mat2
	Mat3
	Mat4
	Sampler2D
)

var typeNames = [...]string{
	Float: "float", Vec2: "vec2", Vec3: "vec3", Vec4: "vec4",
	Int: "int", IVec2: "ivec2", IVec3: "ivec3", IVec4: "ivec4",
	Uint: "uint", UVec2: "uvec2", UVec3: "uvec3", UVec4: "uvec4",
	Mat2: "mat2", Mat3: "mat3", Mat4: "mat4",
	Sampler2D: "sampler2D",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Memory is the memory layout of an interface block.
type Memory uint8

const (
	MemoryNone Memory = iota
	Packed
	Shared
	Std140
	Std430
)

func (m Memory) String() string {
	switch m {
	case MemoryNone:
		return ""
	case Packed:
		return "packed"
	case Shared:
		return "shared"
	case Std140:
		return "std140"
	case Std430:
		return "std430"
	default:
		return fmt.Sprintf("Memory(%d)", uint8(m))
	}
}

// Index is an optional layout index such as a location or binding. The
// zero Index is unset and is not printed.
type Index struct {
	v   int
	set bool
}

// At returns the index n. A negative n is unset.
func At(n int) Index {
	return Index{v: n, set: n >= 0}
}

// Get returns the index and whether it is set.
func (i Index) Get() (int, bool) {
	return i.v, i.set
}

// LayoutQualifiers is a layout(...) qualifier list. The zero value has no
// qualifiers.
type LayoutQualifiers struct {
	Memory    Memory
	Location  Index
	Component Index
	Binding   Index
}

// IsSet reports whether any qualifier is set.
func (l LayoutQualifiers) IsSet() bool {
	return l.Memory != MemoryNone || l.Location.set || l.Component.set || l.Binding.set
}

// String returns the qualifier list, or the empty string if none is set.
func (l LayoutQualifiers) String() string {
	if !l.IsSet() {
		return ""
	}
	j := joiner{sep: ", "}
	if l.Memory != MemoryNone {
		j.add(l.Memory.String())
	}
	j.addIndex("location", l.Location)
	j.addIndex("component", l.Component)
	j.addIndex("binding", l.Binding)
	return "layout(" + j.String() + ")"
}

// StorageQualifier is the storage class of a declaration.
type StorageQualifier uint8

const (
	StorageNone StorageQualifier = iota
	Const
	In
	Out
	Uniform
	Buffer
)

func (s StorageQualifier) String() string {
	switch s {
	case StorageNone:
		return ""
	case Const:
		return "const"
	case In:
		return "in"
	case Out:
		return "out"
	case Uniform:
		return "uniform"
	case Buffer:
		return "buffer"
	default:
		return fmt.Sprintf("StorageQualifier(%d)", uint8(s))
	}
}

// Initializer is the constructor expression of a declaration, such as
// "vec4(1.0)". The empty Initializer prints nothing.
type Initializer string

func (i Initializer) String() string {
	if i == "" {
		return ""
	}
	return "= " + string(i)
}

// Definition is a variable declaration. A positive ArraySize declares an
// array of that size, a negative one an unsized array.
type Definition struct {
	Layout    LayoutQualifiers
	Storage   StorageQualifier
	Type      Type
	Name      string
	ArraySize int
	Init      Initializer
}

// Var returns a definition with no layout qualifiers.
func Var(storage StorageQualifier, typ Type, name string) Definition {
	return Definition{Storage: storage, Type: typ, Name: name}
}

func (d Definition) String() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d Definition) write(b *strings.Builder) {
	j := joiner{sep: " "}
	j.add(d.Layout.String())
	j.add(d.Storage.String())
	j.add(d.Type.String())
	name := d.Name
	if name == "" {
		name = "unnamed_variable"
	}
	switch {
	case d.ArraySize < 0:
		name += "[]"
	case d.ArraySize > 0:
		name += "[" + strconv.Itoa(d.ArraySize) + "]"
	}
	j.add(name)
	j.add(d.Init.String())
	b.WriteString(j.String())
	b.WriteByte(';')
}

// MemoryQualifier is a set of buffer memory qualifiers.
type MemoryQualifier uint8

const (
	Coherent MemoryQualifier = 1 << iota
	Volatile
	Restrict
	ReadOnly
	WriteOnly
)

var memoryQualifierNames = [...]string{"coherent", "volatile", "restrict", "readonly", "writeonly"}

func (q MemoryQualifier) String() string {
	j := joiner{sep: " "}
	for i, name := range memoryQualifierNames {
		if q&(1<<i) != 0 {
			j.add(name)
		}
	}
	return j.String()
}

// BlockDefinition is a uniform or buffer interface block.
type BlockDefinition struct {
	Layout   LayoutQualifiers
	Storage  StorageQualifier
	Memory   MemoryQualifier
	Name     string
	Instance string
	Defs     []Definition
}

// Block returns a block definition with no layout qualifiers.
func Block(storage StorageQualifier, name, instance string, defs ...Definition) BlockDefinition {
	return BlockDefinition{Storage: storage, Name: name, Instance: instance, Defs: defs}
}

func (d BlockDefinition) String() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d BlockDefinition) write(b *strings.Builder) {
	j := joiner{sep: " "}
	j.add(d.Layout.String())
	j.add(d.Memory.String())
	j.add(d.Storage.String())
	name := d.Name
	if name == "" {
		name = "UnnamedBlock"
	}
	j.add(name)
	b.WriteString(j.String())
	b.WriteString("\n{")
	for _, def := range d.Defs {
		b.WriteString("\n  ")
		def.write(b)
	}
	b.WriteString("\n}")
	if d.Instance != "" {
		b.WriteByte(' ')
		b.WriteString(d.Instance)
	}
	b.WriteByte(';')
}

// joiner joins the non-empty items it is given.
type joiner struct {
	sep   string
	items []string
}

func (j *joiner) add(s string) {
	if s != "" {
		j.items = append(j.items, s)
	}
}

func (j *joiner) addIndex(name string, i Index) {
	if v, ok := i.Get(); ok {
		j.add(name + " = " + strconv.Itoa(v))
	}
}

func (j *joiner) String() string {
	return strings.Join(j.items, j.sep)
}

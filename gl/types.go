// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "cmp"

// Handles name driver objects. The zero value refers to no object.
type (
	Buffer      struct{ V uint }
	Program     struct{ V uint }
	Shader      struct{ V uint }
	Texture     struct{ V uint }
	VertexArray struct{ V uint }
	Uniform     struct{ V int }
)

// Handle is implemented by every object name that can be owned by an
// [Object].
type Handle interface {
	comparable
	IsZero() bool
	Is(f Functions) bool
	Delete(f Functions)
}

func (b Buffer) IsZero() bool      { return b.V == 0 }
func (p Program) IsZero() bool     { return p.V == 0 }
func (s Shader) IsZero() bool      { return s.V == 0 }
func (t Texture) IsZero() bool     { return t.V == 0 }
func (a VertexArray) IsZero() bool { return a.V == 0 }

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

// Compare orders handles by their integer name.
func (b Buffer) Compare(o Buffer) int           { return cmp.Compare(b.V, o.V) }
func (p Program) Compare(o Program) int         { return cmp.Compare(p.V, o.V) }
func (s Shader) Compare(o Shader) int           { return cmp.Compare(s.V, o.V) }
func (t Texture) Compare(o Texture) int         { return cmp.Compare(t.V, o.V) }
func (a VertexArray) Compare(o VertexArray) int { return cmp.Compare(a.V, o.V) }

func (b Buffer) Less(o Buffer) bool           { return b.V < o.V }
func (p Program) Less(o Program) bool         { return p.V < o.V }
func (s Shader) Less(o Shader) bool           { return s.V < o.V }
func (t Texture) Less(o Texture) bool         { return t.V < o.V }
func (a VertexArray) Less(o VertexArray) bool { return a.V < o.V }

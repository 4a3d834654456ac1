// SPDX-License-Identifier: Unlicense OR MIT

package glsl

import (
	"fmt"
	"strings"
)

// Profile is the profile of a #version directive.
type Profile uint8

const (
	ProfileNone Profile = iota
	Core
	Compatibility
	ES
)

func (p Profile) String() string {
	switch p {
	case Core:
		return "core"
	case Compatibility:
		return "compatibility"
	case ES:
		return "es"
	default:
		return ""
	}
}

// Decl is a top level declaration.
type Decl interface {
	fmt.Stringer
}

// Source is a shader preamble: a version directive, extensions and
// declarations, each on its own line.
type Source struct {
	Version    int
	Profile    Profile
	Extensions []string
	Decls      []Decl
}

func (s Source) String() string {
	var b strings.Builder
	if s.Version > 0 {
		fmt.Fprintf(&b, "#version %d", s.Version)
		if p := s.Profile.String(); p != "" {
			b.WriteString(" " + p)
		}
		b.WriteByte('\n')
	}
	for _, ext := range s.Extensions {
		fmt.Fprintf(&b, "#extension %s : require\n", ext)
	}
	for _, d := range s.Decls {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

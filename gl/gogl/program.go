// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) CreateProgram() glu.Program {
	return glu.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) DeleteProgram(p glu.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) IsProgram(p glu.Program) bool {
	return gl.IsProgram(uint32(p.V))
}

func (f *Functions) UseProgram(p glu.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) LinkProgram(p glu.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) ValidateProgram(p glu.Program) {
	gl.ValidateProgram(uint32(p.V))
}

func (f *Functions) AttachShader(p glu.Program, s glu.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) DetachShader(p glu.Program, s glu.Shader) {
	gl.DetachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindAttribLocation(p glu.Program, a glu.Attrib, name string) {
	gl.BindAttribLocation(uint32(p.V), uint32(a), gl.Str(name+"\x00"))
}

func (f *Functions) GetProgrami(p glu.Program, pname glu.Enum) int {
	var params [3]int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &params[0])
	return int(params[0])
}

func (f *Functions) GetProgramInfoLog(p glu.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p.V), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) GetProgramInterfacei(p glu.Program, iface, pname glu.Enum) int {
	var v int32
	gl.GetProgramInterfaceiv(uint32(p.V), uint32(iface), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramResourcei(p glu.Program, iface glu.Enum, index uint, props []glu.Enum, params []int32) int {
	if len(props) == 0 || len(params) == 0 {
		return 0
	}
	ps := make([]uint32, len(props))
	for i, prop := range props {
		ps[i] = uint32(prop)
	}
	var n int32
	gl.GetProgramResourceiv(uint32(p.V), uint32(iface), uint32(index), int32(len(ps)), &ps[0], int32(len(params)), &n, &params[0])
	return int(n)
}

func (f *Functions) GetProgramResourceIndex(p glu.Program, iface glu.Enum, name string) uint {
	return uint(gl.GetProgramResourceIndex(uint32(p.V), uint32(iface), gl.Str(name+"\x00")))
}

func (f *Functions) GetProgramResourceLocation(p glu.Program, iface glu.Enum, name string) int {
	return int(gl.GetProgramResourceLocation(uint32(p.V), uint32(iface), gl.Str(name+"\x00")))
}

func (f *Functions) GetProgramResourceLocationIndex(p glu.Program, iface glu.Enum, name string) int {
	return int(gl.GetProgramResourceLocationIndex(uint32(p.V), uint32(iface), gl.Str(name+"\x00")))
}

func (f *Functions) GetProgramResourceName(p glu.Program, iface glu.Enum, index uint) string {
	prop := uint32(gl.NAME_LENGTH)
	var size int32
	gl.GetProgramResourceiv(uint32(p.V), uint32(iface), uint32(index), 1, &prop, 1, nil, &size)
	if size <= 0 {
		return ""
	}
	name := make([]byte, size)
	var n int32
	gl.GetProgramResourceName(uint32(p.V), uint32(iface), uint32(index), size, &n, &name[0])
	return string(name[:n])
}

func (f *Functions) GetUniformLocation(p glu.Program, name string) glu.Uniform {
	return glu.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}

func (f *Functions) UniformBlockBinding(p glu.Program, index, binding uint) {
	gl.UniformBlockBinding(uint32(p.V), uint32(index), uint32(binding))
}

func (f *Functions) ShaderStorageBlockBinding(p glu.Program, index, binding uint) {
	gl.ShaderStorageBlockBinding(uint32(p.V), uint32(index), uint32(binding))
}

func (f *Functions) ProgramUniformfv(p glu.Program, loc glu.Uniform, n int, v []float32) {
	f.uniformf[n-1](uint32(p.V), int32(loc.V), int32(len(v)/n), &v[0])
}

func (f *Functions) ProgramUniformiv(p glu.Program, loc glu.Uniform, n int, v []int32) {
	f.uniformi[n-1](uint32(p.V), int32(loc.V), int32(len(v)/n), &v[0])
}

func (f *Functions) ProgramUniformuiv(p glu.Program, loc glu.Uniform, n int, v []uint32) {
	f.uniformui[n-1](uint32(p.V), int32(loc.V), int32(len(v)/n), &v[0])
}

func (f *Functions) ProgramUniformdv(p glu.Program, loc glu.Uniform, n int, v []float64) {
	f.uniformd[n-1](uint32(p.V), int32(loc.V), int32(len(v)/n), &v[0])
}

func (f *Functions) ProgramUniformMatrixfv(p glu.Program, loc glu.Uniform, cols, rows int, transpose bool, v []float32) {
	f.matrixf[cols-2][rows-2](uint32(p.V), int32(loc.V), int32(len(v)/(cols*rows)), transpose, &v[0])
}

func (f *Functions) ProgramUniformMatrixdv(p glu.Program, loc glu.Uniform, cols, rows int, transpose bool, v []float64) {
	f.matrixd[cols-2][rows-2](uint32(p.V), int32(loc.V), int32(len(v)/(cols*rows)), transpose, &v[0])
}

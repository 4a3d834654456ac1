// SPDX-License-Identifier: Unlicense OR MIT

package gogl

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	glu "glutils.org/gl"
)

func (f *Functions) CreateShader(ty glu.Enum) glu.Shader {
	return glu.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) DeleteShader(s glu.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) IsShader(s glu.Shader) bool {
	return gl.IsShader(uint32(s.V))
}

func (f *Functions) ShaderSource(s glu.Shader, src ...string) {
	if len(src) == 0 {
		src = []string{""}
	}
	lengths := make([]int32, len(src))
	for i, str := range src {
		lengths[i] = int32(len(str))
	}
	csrc, free := gl.Strs(src...)
	defer free()
	gl.ShaderSource(uint32(s.V), int32(len(src)), csrc, &lengths[0])
}

func (f *Functions) CompileShader(s glu.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) GetShaderi(s glu.Shader, pname glu.Enum) int {
	var i int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetShaderInfoLog(s glu.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s.V), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s.V), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) ShaderBinary(shaders []glu.Shader, format glu.Enum, binary []byte) {
	if len(shaders) == 0 {
		return
	}
	names := make([]uint32, len(shaders))
	for i, s := range shaders {
		names[i] = uint32(s.V)
	}
	gl.ShaderBinary(int32(len(names)), &names[0], uint32(format), ptr(binary), int32(len(binary)))
}

func (f *Functions) SpecializeShader(s glu.Shader, entry string, indices, values []uint32) {
	var pidx, pval *uint32
	if len(indices) > 0 {
		pidx, pval = &indices[0], &values[0]
	}
	gl.SpecializeShader(uint32(s.V), gl.Str(entry+"\x00"), uint32(len(indices)), pidx, pval)
}

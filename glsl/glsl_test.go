// SPDX-License-Identifier: Unlicense OR MIT

package glsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutQualifiers(t *testing.T) {
	tests := []struct {
		layout LayoutQualifiers
		want   string
	}{
		{LayoutQualifiers{}, ""},
		{LayoutQualifiers{Location: At(-1)}, ""},
		{LayoutQualifiers{Memory: Std140}, "layout(std140)"},
		{LayoutQualifiers{Location: At(0)}, "layout(location = 0)"},
		{LayoutQualifiers{Component: At(1)}, "layout(component = 1)"},
		{LayoutQualifiers{Memory: Std140, Location: At(0), Component: At(1), Binding: At(2)}, "layout(std140, location = 0, component = 1, binding = 2)"},
		{LayoutQualifiers{Memory: Std430, Binding: At(3)}, "layout(std430, binding = 3)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.layout.String())
		assert.Equal(t, test.want != "", test.layout.IsSet())
	}
}

func TestIndex(t *testing.T) {
	_, ok := Index{}.Get()
	assert.False(t, ok, "zero index is unset")
	v, ok := At(0).Get()
	assert.True(t, ok)
	assert.Zero(t, v)
	_, ok = At(-1).Get()
	assert.False(t, ok)
	assert.Equal(t, "float x;", Definition{Type: Float, Name: "x"}.String(), "zero layout prints nothing")
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "ivec3", IVec3.String())
	assert.Equal(t, "uvec4", UVec4.String())
	assert.Equal(t, "mat4", Mat4.String())
	assert.Equal(t, "sampler2D", Sampler2D.String())
	assert.Equal(t, "Type(200)", Type(200).String())
}

func TestStorageQualifier(t *testing.T) {
	names := map[StorageQualifier]string{
		StorageNone: "",
		Const:       "const",
		In:          "in",
		Out:         "out",
		Uniform:     "uniform",
		Buffer:      "buffer",
	}
	for q, want := range names {
		assert.Equal(t, want, q.String())
	}
}

func TestDefinition(t *testing.T) {
	tests := []struct {
		def  Definition
		want string
	}{
		{Var(StorageNone, Float, "x"), "float x;"},
		{Var(In, Vec3, "pos"), "in vec3 pos;"},
		{Definition{Type: Int}, "int unnamed_variable;"},
		{
			Definition{
				Layout:    LayoutQualifiers{Location: At(2)},
				Storage:   Uniform,
				Type:      Vec4,
				Name:      "colors",
				ArraySize: 3,
				Init:      "vec4[3](vec4(0.0), vec4(0.5), vec4(1.0))",
			},
			"layout(location = 2) uniform vec4 colors[3] = vec4[3](vec4(0.0), vec4(0.5), vec4(1.0));",
		},
		{
			Definition{Type: Float, Name: "data", ArraySize: -1},
			"float data[];",
		},
		{
			Definition{Storage: Const, Type: Float, Name: "pi", Init: "3.14159"},
			"const float pi = 3.14159;",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.def.String())
	}
}

func TestMemoryQualifier(t *testing.T) {
	assert.Equal(t, "", MemoryQualifier(0).String())
	assert.Equal(t, "coherent", Coherent.String())
	assert.Equal(t, "readonly", ReadOnly.String())
	assert.Equal(t, "coherent volatile restrict readonly writeonly",
		(Coherent | Volatile | Restrict | ReadOnly | WriteOnly).String())
	assert.Equal(t, "restrict writeonly", (WriteOnly | Restrict).String())
}

func TestBlockDefinition(t *testing.T) {
	block := BlockDefinition{
		Layout:   LayoutQualifiers{Memory: Std140, Binding: At(0)},
		Storage:  Buffer,
		Name:     "Block",
		Instance: "inst",
		Defs: []Definition{
			Var(StorageNone, Float, "a"),
			Var(StorageNone, Vec4, "b"),
		},
	}
	want := "layout(std140, binding = 0) buffer Block\n{\n  float a;\n  vec4 b;\n} inst;"
	assert.Equal(t, want, block.String())

	block.Memory = ReadOnly | Restrict
	block.Instance = ""
	want = "layout(std140, binding = 0) restrict readonly buffer Block\n{\n  float a;\n  vec4 b;\n};"
	assert.Equal(t, want, block.String())
}

func TestEmptyBlock(t *testing.T) {
	assert.Equal(t, "uniform UnnamedBlock\n{\n};", Block(Uniform, "", "").String())
}

func TestSource(t *testing.T) {
	src := Source{
		Version:    460,
		Profile:    Core,
		Extensions: []string{"GL_ARB_bindless_texture"},
		Decls: []Decl{
			Var(In, Vec2, "uv"),
			Var(Out, Vec4, "color"),
			Block(Uniform, "Params", "params", Var(StorageNone, Mat4, "transform")),
		},
	}
	want := "#version 460 core\n" +
		"#extension GL_ARB_bindless_texture : require\n" +
		"in vec2 uv;\n" +
		"out vec4 color;\n" +
		"uniform Params\n{\n  mat4 transform;\n} params;\n"
	assert.Equal(t, want, src.String())
	assert.Equal(t, "float x;\n", Source{Decls: []Decl{Var(StorageNone, Float, "x")}}.String())
}

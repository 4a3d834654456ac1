// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

const fragmentSrc = "#version 460 core\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"

func newProgram(t *testing.T, f *gltest.Recorder) gl.Program {
	t.Helper()
	vs, err := gl.NewShader(f, gl.VertexShader, vertexSrc)
	require.NoError(t, err)
	defer vs.Delete(f)
	fs, err := gl.NewShader(f, gl.FragmentShader, fragmentSrc)
	require.NoError(t, err)
	defer fs.Delete(f)
	p, err := gl.NewProgram(f, vs, fs)
	require.NoError(t, err)
	return p
}

func TestNewProgram(t *testing.T) {
	f := gltest.New()
	p := newProgram(t, f)

	assert.Equal(t, gl.TRUE, p.Parameter(f, gl.ProgramLinkStatus))
	assert.Equal(t, 0, p.Parameter(f, gl.ProgramAttachedShaders))
	assert.Len(t, f.Called("DetachShader"), 2)
	require.NoError(t, p.Validate(f))

	p.Use(f)
	assert.Equal(t, p, f.Program)
	p.Delete(f)
	assert.Equal(t, 0, f.Live(), "detached shaders are freed with their program")
}

func TestProgramLinkError(t *testing.T) {
	f := gltest.New()
	_, err := gl.NewProgram(f)
	var lerr *gl.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "link", lerr.Op)
	assert.Equal(t, "error: no shaders attached to the program", lerr.Log)
	assert.Equal(t, "program link failed: error: no shaders attached to the program", err.Error())
	assert.Equal(t, 0, f.Live())
}

func TestProgramValidateError(t *testing.T) {
	f := gltest.New()
	p, err := gl.CreateProgram(f)
	require.NoError(t, err)
	err = p.Validate(f)
	var lerr *gl.LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "validation", lerr.Op)
}

func TestProgramAttributes(t *testing.T) {
	f := gltest.New()
	p, err := gl.CreateProgram(f)
	require.NoError(t, err)
	p.BindAttribLocation(f, 3, "position")
	assert.Equal(t, gl.Attrib(3), f.ProgramState(p).Attribs["position"])
}

func TestProgramResources(t *testing.T) {
	f := gltest.New()
	p := newProgram(t, f)
	f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "transform", Props: map[gl.Enum]int32{gl.LOCATION: 4, gl.TYPE: 0x8B5C}})
	f.AddResource(p, gl.UNIFORM, gltest.Resource{Name: "tint", Props: map[gl.Enum]int32{gl.LOCATION: 8}})
	f.AddResource(p, gl.PROGRAM_OUTPUT, gltest.Resource{Name: "color", Props: map[gl.Enum]int32{gl.LOCATION: 0, gl.LOCATION_INDEX: 1}})

	assert.Equal(t, 2, p.Interface(f, gl.InterfaceUniform, gl.ACTIVE_RESOURCES))
	assert.Equal(t, len("transform")+1, p.Interface(f, gl.InterfaceUniform, gl.MAX_NAME_LENGTH))
	assert.Equal(t, 2, p.Parameter(f, gl.ProgramActiveUniforms))

	idx, err := p.ResourceIndex(f, gl.InterfaceUniform, "tint")
	require.NoError(t, err)
	assert.Equal(t, uint(1), idx)
	assert.Equal(t, "tint", p.ResourceName(f, gl.InterfaceUniform, idx))
	assert.Equal(t, []int32{8, 5}, p.Resource(f, gl.InterfaceUniform, idx, gl.LOCATION, gl.NAME_LENGTH))
	assert.Equal(t, []int32{0x8B5C}, p.Resource(f, gl.InterfaceUniform, 0, gl.TYPE))

	_, err = p.ResourceIndex(f, gl.InterfaceUniform, "missing")
	assert.ErrorIs(t, err, gl.ErrNotFound)

	assert.Equal(t, 0, p.ResourceLocation(f, gl.InterfaceProgramOutput, "color"))
	assert.Equal(t, 1, p.ResourceLocationIndex(f, gl.InterfaceProgramOutput, "color"))
	assert.Equal(t, -1, p.ResourceLocation(f, gl.InterfaceProgramOutput, "depth"))

	loc, err := p.UniformLocation(f, "transform")
	require.NoError(t, err)
	assert.Equal(t, gl.Uniform{V: 4}, loc)
	_, err = p.UniformLocation(f, "missing")
	assert.ErrorIs(t, err, gl.ErrNotFound)

	p.SetLabel(f, "blit")
	assert.Equal(t, "blit", f.Labels[gltest.Label{Identifier: gl.PROGRAM, Name: p.V}])
}

// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want [2]int
	}{
		{"4.6.0 NVIDIA 535.54.03", [2]int{4, 6}},
		{"4.5 (Core Profile) Mesa 23.1.4", [2]int{4, 5}},
		{"OpenGL ES 3.2 Mesa 23.1.4", [2]int{3, 2}},
	}
	for _, test := range tests {
		got, err := gl.ParseGLVersion(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: got %v, expected %v", test.in, got, test.want)
		}
	}
	_, err := gl.ParseGLVersion("unknown")
	assert.Error(t, err)
}

func TestContextVersion(t *testing.T) {
	f := gltest.New()
	v, err := gl.ContextVersion(f)
	require.NoError(t, err)
	assert.Equal(t, 46, v)

	delete(f.Integers, gl.MAJOR_VERSION)
	f.Strings[gl.VERSION] = "4.5.0 Mesa"
	v, err = gl.ContextVersion(f)
	require.NoError(t, err)
	assert.Equal(t, 45, v)

	f.Strings[gl.VERSION] = ""
	_, err = gl.ContextVersion(f)
	assert.Error(t, err)
}

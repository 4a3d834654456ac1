// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glutils.org/gl"
	"glutils.org/gl/gltest"
)

func TestQueryInfo(t *testing.T) {
	f := gltest.New()
	info, err := queryInfo(f)
	require.NoError(t, err)
	assert.Equal(t, "gltest", info.Vendor)
	assert.Equal(t, "gltest recorder", info.Renderer)
	assert.Equal(t, 46, info.Context)
	assert.Equal(t, "core", info.Profile)
	assert.Contains(t, info.Limits, Limit{Name: "max texture size", Value: 16384})
	assert.Equal(t, []string{"GL_ARB_gl_spirv", "GL_KHR_debug"}, info.Extensions)

	f.Integers[gl.CONTEXT_PROFILE_MASK] = 0
	info, err = queryInfo(f)
	require.NoError(t, err)
	assert.Equal(t, "compatibility", info.Profile)
}

func TestQueryInfoErrors(t *testing.T) {
	f := gltest.New()
	f.Errors = []gl.Enum{gl.INVALID_ENUM}
	_, err := queryInfo(f)
	var glErr *gl.Error
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, gl.Enum(gl.INVALID_ENUM), glErr.Code)

	f = gltest.New()
	delete(f.Integers, gl.MAJOR_VERSION)
	f.Strings[gl.VERSION] = "garbage"
	_, err = queryInfo(f)
	assert.Error(t, err)
}

func TestWriteInfo(t *testing.T) {
	info, err := queryInfo(gltest.New())
	require.NoError(t, err)

	var buf bytes.Buffer
	info.write(&buf, false)
	out := buf.String()
	assert.Contains(t, out, "gltest recorder")
	assert.Contains(t, out, "4.6 core")
	assert.Contains(t, out, "16384")
	assert.NotContains(t, out, "GL_KHR_debug")

	buf.Reset()
	info.write(&buf, true)
	assert.Contains(t, buf.String(), "GL_KHR_debug")
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl_test

import (
	"testing"

	"cogentcore.org/glt/gl"
	"cogentcore.org/glt/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	c := gltest.NewVersion(3, 3)
	ma, mi := gl.Version(c)
	assert.Equal(t, 3, ma)
	assert.Equal(t, 3, mi)
	assert.True(t, gl.AtLeast(c, 3, 2))
	assert.True(t, gl.AtLeast(c, 2, 9))
	assert.False(t, gl.AtLeast(c, 4, 1))
	assert.False(t, gl.AtLeast(c, 3, 4))
}

func TestHasExtension(t *testing.T) {
	c := gltest.New()
	assert.True(t, gl.HasExtension(c, "GL_KHR_debug"))
	assert.False(t, gl.HasExtension(c, "GL_ARB_separate_shader_objects"))
	assert.False(t, gl.HasExtension(c, ""))
	assert.Empty(t, gl.DrainErrors(c))
}

func TestDrainErrors(t *testing.T) {
	c := gltest.New()
	c.BindBuffer(gl.ARRAY_BUFFER, 99)
	c.GetInteger(0x1234)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION, gl.INVALID_ENUM}, gl.DrainErrors(c))
	assert.Empty(t, gl.DrainErrors(c))
}

func TestQueryInfo(t *testing.T) {
	c := gltest.New()
	c.Flags = gl.CONTEXT_FLAG_DEBUG_BIT
	in := gl.QueryInfo(c)
	assert.Equal(t, 4, in.Major)
	assert.Equal(t, 6, in.Minor)
	assert.Equal(t, "Core", in.Profile)
	assert.True(t, in.Debug)
	assert.False(t, in.ForwardCompatible)

	s := in.String()
	assert.Contains(t, s, "==== OpenGL Info ====")
	assert.Contains(t, s, "Renderer    : gltest software")
	assert.Contains(t, s, "(parsed 4.6, Core profile, debug)")

	in.Vendor = ""
	assert.Contains(t, in.String(), "Vendor      : n/a")
}

func TestSupportsGLSL(t *testing.T) {
	in := gl.QueryInfo(gltest.New())
	v, err := in.GLSLVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v.Major())
	assert.Equal(t, uint64(60), v.Minor())

	ok, err := in.SupportsGLSL(">= 4.10")
	require.NoError(t, err)
	assert.True(t, ok)

	old := gl.QueryInfo(gltest.NewVersion(3, 3))
	ok, err = old.SupportsGLSL(">= 4.10")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = gl.Info{GLSL: "unknown"}.GLSLVersion()
	assert.Error(t, err)
	_, err = in.SupportsGLSL("not a constraint")
	assert.Error(t, err)
}

func TestBindingQueries(t *testing.T) {
	c := gltest.New()
	b := c.GenBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, b)
	assert.Equal(t, b, gl.BoundArrayBuffer(c))
	va := c.GenVertexArray()
	c.BindVertexArray(va)
	assert.Equal(t, va, gl.BoundVertexArray(c))
	assert.EqualValues(t, 4, gl.UnpackAlignment(c))
	assert.EqualValues(t, 0, gl.CurrentProgram(c))
}

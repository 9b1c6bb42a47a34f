// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"cogentcore.org/glt/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vert = `#version 410 core
layout(location = 0) in vec3 pos;
uniform mat4 mvp;
uniform float unused;
void main() { gl_Position = mvp * vec4(pos, 1.0); }
`

const frag = `#version 410 core
uniform vec4 color;
out vec4 frag;
void main() { frag = color; }
`

func linked(t *testing.T, c *Context) uint32 {
	vs := c.CreateShader(gl.VERTEX_SHADER)
	c.ShaderSource(vs, vert)
	c.CompileShader(vs)
	fs := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(fs, frag)
	c.CompileShader(fs)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	require.EqualValues(t, 1, c.GetProgrami(p, gl.LINK_STATUS))
	c.DetachShader(p, vs)
	c.DetachShader(p, fs)
	c.DeleteShader(vs)
	c.DeleteShader(fs)
	return p
}

func TestCompileError(t *testing.T) {
	c := New()
	s := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(s, "#version 410 core\n#error bad token\n")
	c.CompileShader(s)
	assert.EqualValues(t, 0, c.GetShaderi(s, gl.COMPILE_STATUS))
	assert.Equal(t, "0:2(1): error: bad token\n", c.GetShaderInfoLog(s))
	assert.EqualValues(t, len(c.GetShaderInfoLog(s))+1, c.GetShaderi(s, gl.INFO_LOG_LENGTH))
}

func TestUniformLocations(t *testing.T) {
	c := New()
	p := linked(t, c)
	assert.Equal(t, map[string]int32{"color": 0, "mvp": 1}, c.Locations(p))
	assert.EqualValues(t, -1, c.GetUniformLocation(p, "unused"))
	assert.EqualValues(t, 0, c.Live(Shaders))
	assert.Equal(t, 1, c.Live(Programs))
}

func TestDeleteAttachedShader(t *testing.T) {
	c := New()
	s := c.CreateShader(gl.VERTEX_SHADER)
	p := c.CreateProgram()
	c.AttachShader(p, s)
	c.DeleteShader(s)
	assert.Equal(t, 0, c.Live(Shaders))
	assert.EqualValues(t, 1, c.GetShaderi(s, gl.DELETE_STATUS))
	c.DeleteProgram(p)
	assert.Empty(t, c.shaders)
	assert.Equal(t, 0, c.Live(Programs))
}

func TestLinkFailures(t *testing.T) {
	c := New()
	fs := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(fs, frag)
	c.CompileShader(fs)
	p := c.CreateProgram()
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	assert.False(t, c.Linked(p))
	assert.Contains(t, c.GetProgramInfoLog(p), "no vertex shader")

	c.LinkFails = true
	q := linkedOrZero(c)
	assert.False(t, c.Linked(q))
}

func linkedOrZero(c *Context) uint32 {
	vs := c.CreateShader(gl.VERTEX_SHADER)
	c.ShaderSource(vs, vert)
	c.CompileShader(vs)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.LinkProgram(p)
	return p
}

func TestUniformPaths(t *testing.T) {
	c := New()
	p := linked(t, c)
	loc := c.GetUniformLocation(p, "color")

	c.Uniform4f(loc, 1, 2, 3, 4)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, gl.DrainErrors(c))

	c.ProgramUniform4f(p, loc, 1, 2, 3, 4)
	v, ok := c.Uniform(p, "color")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3, 4}, v.F)

	c.UseProgram(p)
	c.Uniform1f(-1, 5)
	c.Uniform4f(loc, 4, 3, 2, 1)
	assert.Empty(t, gl.DrainErrors(c))
	v, _ = c.Uniform(p, "color")
	assert.Equal(t, []float32{4, 3, 2, 1}, v.F)

	c.Uniform1i(42, 1)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, gl.DrainErrors(c))
}

func TestUniformTypeChecks(t *testing.T) {
	c := New()
	p := linked(t, c)
	color := c.GetUniformLocation(p, "color")
	mvp := c.GetUniformLocation(p, "mvp")

	c.ProgramUniform1i(p, color, 1)
	c.ProgramUniform4ui(p, color, 1, 2, 3, 4)
	c.ProgramUniform3f(p, color, 1, 2, 3)
	c.ProgramUniformMatrix2fv(p, color, false, []float32{1, 2, 3, 4})
	c.ProgramUniformMatrix3fv(p, mvp, false, make([]float32, 9))
	c.ProgramUniform4f(p, mvp, 1, 2, 3, 4)
	assert.Len(t, gl.DrainErrors(c), 6)
	assert.Empty(t, c.Uniforms(p))

	assert.True(t, assignable("sampler2D", "int"))
	assert.False(t, assignable("sampler2D", "float"))
	assert.True(t, assignable("bool", "uint"))
	assert.True(t, assignable("bvec3", "vec3"))
	assert.False(t, assignable("bvec3", "ivec2"))
	assert.False(t, assignable("ivec2", "uvec2"))
}

func TestUniformTypeConflict(t *testing.T) {
	c := New()
	vs := c.CreateShader(gl.VERTEX_SHADER)
	c.ShaderSource(vs, vert)
	c.CompileShader(vs)
	fs := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(fs, "#version 410 core\nuniform mat3 mvp;\nout vec4 frag;\nvoid main() { frag = vec4(mvp[0], 1.0); }\n")
	c.CompileShader(fs)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	assert.EqualValues(t, 0, c.GetProgrami(p, gl.LINK_STATUS))
	assert.Contains(t, c.GetProgramInfoLog(p), "mvp declared as both mat4 and mat3")
}

func TestMatrixTranspose(t *testing.T) {
	c := New()
	p := linked(t, c)
	loc := c.GetUniformLocation(p, "mvp")
	m := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	c.ProgramUniformMatrix4fv(p, loc, true, m)
	v, _ := c.Uniform(p, "mvp")
	assert.Equal(t, []float32{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, v.F)
}

func TestDirectUniformsMissing(t *testing.T) {
	c := NewVersion(3, 3)
	p := linked(t, c)
	assert.Panics(t, func() { c.ProgramUniform1f(p, 0, 1) })
	c.Extensions = append(c.Extensions, "GL_ARB_separate_shader_objects")
	assert.NotPanics(t, func() { c.ProgramUniform1f(p, 0, 1) })
}

func TestBuffers(t *testing.T) {
	c := New()
	b := c.GenBuffer()
	c.BufferData(gl.ARRAY_BUFFER, 4, nil, gl.STATIC_DRAW)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, gl.DrainErrors(c))

	c.BindBuffer(gl.ARRAY_BUFFER, b)
	c.BufferData(gl.ARRAY_BUFFER, 4, []byte{1, 2, 3, 4}, gl.DYNAMIC_DRAW)
	assert.EqualValues(t, 4, c.GetBufferParameteri(gl.ARRAY_BUFFER, gl.BUFFER_SIZE))
	assert.EqualValues(t, gl.DYNAMIC_DRAW, c.GetBufferParameteri(gl.ARRAY_BUFFER, gl.BUFFER_USAGE))
	assert.Equal(t, []byte{1, 2, 3, 4}, c.BufferBytes(b))

	c.ShortAlloc = true
	c.BufferData(gl.ARRAY_BUFFER, 8, nil, gl.STATIC_DRAW)
	assert.Equal(t, []gl.Enum{gl.OUT_OF_MEMORY}, gl.DrainErrors(c))
	assert.EqualValues(t, 0, c.GetBufferParameteri(gl.ARRAY_BUFFER, gl.BUFFER_SIZE))

	c.DeleteBuffer(b)
	assert.EqualValues(t, 0, gl.BoundArrayBuffer(c))
	assert.Equal(t, 0, c.Live(Buffers))
}

func TestElementBufferFollowsVertexArray(t *testing.T) {
	c := New()
	va := c.GenVertexArray()
	eb := c.GenBuffer()
	c.BindVertexArray(va)
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, eb)
	c.BindVertexArray(0)
	assert.EqualValues(t, 0, gl.BoundElementBuffer(c))
	c.BindVertexArray(va)
	assert.Equal(t, eb, gl.BoundElementBuffer(c))
	assert.Equal(t, eb, c.ElementBuffer(va))
}

func TestAttribPointers(t *testing.T) {
	c := New()
	c.VertexAttribPointer(0, 3, gl.FLOAT, false, 12, 0)
	assert.Equal(t, []gl.Enum{gl.INVALID_OPERATION}, gl.DrainErrors(c))

	va := c.GenVertexArray()
	vb := c.GenBuffer()
	c.BindVertexArray(va)
	c.BindBuffer(gl.ARRAY_BUFFER, vb)
	c.VertexAttribPointer(0, 3, gl.FLOAT, false, 20, 0)
	c.VertexAttribIPointer(1, 2, gl.INT, 20, 12)
	c.EnableVertexAttribArray(1)
	c.VertexAttribDivisor(1, 1)
	c.VertexAttribIPointer(2, 2, gl.FLOAT, 20, 12)
	assert.Equal(t, []gl.Enum{gl.INVALID_ENUM}, gl.DrainErrors(c))

	a, ok := c.Attrib(va, 1)
	require.True(t, ok)
	assert.Equal(t, Attrib{Enabled: true, Size: 2, Type: gl.INT, Integer: true, Stride: 20, Offset: 12, Buffer: vb, Divisor: 1}, a)
	a, _ = c.Attrib(va, 0)
	assert.False(t, a.Enabled)
}

func TestTexImageAlignment(t *testing.T) {
	c := New()
	tex := c.GenTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	// 2x2 RGB rows are 6 bytes; at alignment 4 each row is padded to 8.
	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGB8), 2, 2, gl.RGB, gl.UNSIGNED_BYTE,
		[]byte{1, 2, 3, 4, 5, 6, 0, 0, 7, 8, 9, 10, 11, 12})
	assert.Equal(t, []byte{7, 8, 9}, c.Texel(tex, 0, 1))

	c.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	c.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGB8), 2, 2, gl.RGB, gl.UNSIGNED_BYTE,
		[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	assert.Equal(t, []byte{7, 8, 9}, c.Texel(tex, 0, 1))
	assert.Equal(t, []byte{10, 11, 12}, c.Texel(tex, 1, 1))

	c.GenerateMipmap(gl.TEXTURE_2D)
	st, _ := c.Texture(tex)
	assert.Equal(t, 2, st.Levels)
}

func TestTextureUnits(t *testing.T) {
	c := New()
	a, b := c.GenTexture(), c.GenTexture()
	c.ActiveTexture(gl.TEXTURE0 + 3)
	c.BindTexture(gl.TEXTURE_2D, a)
	c.ActiveTexture(gl.TEXTURE0)
	c.BindTexture(gl.TEXTURE_2D, b)
	assert.Equal(t, b, gl.BoundTexture2D(c))
	c.ActiveTexture(gl.TEXTURE0 + 3)
	assert.Equal(t, a, gl.BoundTexture2D(c))
	c.DeleteTexture(a)
	assert.EqualValues(t, 0, gl.BoundTexture2D(c))
}

func TestFailCreate(t *testing.T) {
	c := New()
	c.FailCreate[Buffers] = true
	assert.EqualValues(t, 0, c.GenBuffer())
	assert.NotZero(t, c.GenTexture())
	assert.Equal(t, 1, c.Live(Textures))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the boundary between glt resources and the native
// graphics driver: the [Context] function table, the GL tokens the
// resources use, and queries for the implicit bound-object state.
//
// Every GL object name is a uint32 and 0 means "no object". A name has no
// meaning outside the context that created it. Uniform locations are
// int32 and a negative location means the uniform is not active.
//
// The driver keeps one "currently bound" object per binding point
// (program, array buffer, element buffer, vertex array, 2D texture).
// That state is global to the context and shared by all resources of the
// same kind; the functions in this package read it explicitly so callers
// can verify a binding before mutating through it.
package gl

// Context is the subset of the OpenGL 4.1 core function table used by glt.
// Implementations are bound to a single OS thread and are not safe for
// concurrent use. See package glcore for the driver-backed implementation
// and package gltest for a software implementation.
type Context interface {
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32

	// Uniforms on the currently bound program.
	Uniform1i(loc, v0 int32)
	Uniform2i(loc, v0, v1 int32)
	Uniform3i(loc, v0, v1, v2 int32)
	Uniform4i(loc, v0, v1, v2, v3 int32)
	Uniform1ui(loc int32, v0 uint32)
	Uniform2ui(loc int32, v0, v1 uint32)
	Uniform3ui(loc int32, v0, v1, v2 uint32)
	Uniform4ui(loc int32, v0, v1, v2, v3 uint32)
	Uniform1f(loc int32, v0 float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	UniformMatrix2fv(loc int32, transpose bool, m []float32)
	UniformMatrix3fv(loc int32, transpose bool, m []float32)
	UniformMatrix4fv(loc int32, transpose bool, m []float32)

	// Uniforms on a given program, without binding it. These entry points
	// are only present on 4.1+ contexts or with ARB_separate_shader_objects;
	// calling them on a context without them is undefined.
	ProgramUniform1i(program uint32, loc, v0 int32)
	ProgramUniform2i(program uint32, loc, v0, v1 int32)
	ProgramUniform3i(program uint32, loc, v0, v1, v2 int32)
	ProgramUniform4i(program uint32, loc, v0, v1, v2, v3 int32)
	ProgramUniform1ui(program uint32, loc int32, v0 uint32)
	ProgramUniform2ui(program uint32, loc int32, v0, v1 uint32)
	ProgramUniform3ui(program uint32, loc int32, v0, v1, v2 uint32)
	ProgramUniform4ui(program uint32, loc int32, v0, v1, v2, v3 uint32)
	ProgramUniform1f(program uint32, loc int32, v0 float32)
	ProgramUniform2f(program uint32, loc int32, v0, v1 float32)
	ProgramUniform3f(program uint32, loc int32, v0, v1, v2 float32)
	ProgramUniform4f(program uint32, loc int32, v0, v1, v2, v3 float32)
	ProgramUniformMatrix2fv(program uint32, loc int32, transpose bool, m []float32)
	ProgramUniformMatrix3fv(program uint32, loc int32, transpose bool, m []float32)
	ProgramUniformMatrix4fv(program uint32, loc int32, transpose bool, m []float32)

	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	BindBuffer(target Enum, buf uint32)
	// BufferData (re)specifies the storage of the buffer bound to target.
	// A nil data allocates size bytes of uninitialized storage.
	BufferData(target Enum, size int, data []byte, usage Enum)
	GetBufferParameteri(target, pname Enum) int32

	GenVertexArray() uint32
	DeleteVertexArray(va uint32)
	BindVertexArray(va uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, typ Enum, stride int32, offset int)
	VertexAttribLPointer(index uint32, size int32, typ Enum, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribDivisor(index, divisor uint32)

	GenTexture() uint32
	DeleteTexture(tex uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex uint32)
	TexParameteri(target, pname Enum, param int32)
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, typ Enum, pix []byte)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int32)

	GetInteger(pname Enum) int32
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetError() Enum

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
}

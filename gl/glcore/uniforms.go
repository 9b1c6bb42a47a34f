// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcore

import "github.com/go-gl/gl/v4.1-core/gl"

func (c *Context) Uniform1i(loc, v0 int32)             { gl.Uniform1i(loc, v0) }
func (c *Context) Uniform2i(loc, v0, v1 int32)         { gl.Uniform2i(loc, v0, v1) }
func (c *Context) Uniform3i(loc, v0, v1, v2 int32)     { gl.Uniform3i(loc, v0, v1, v2) }
func (c *Context) Uniform4i(loc, v0, v1, v2, v3 int32) { gl.Uniform4i(loc, v0, v1, v2, v3) }

func (c *Context) Uniform1ui(loc int32, v0 uint32)         { gl.Uniform1ui(loc, v0) }
func (c *Context) Uniform2ui(loc int32, v0, v1 uint32)     { gl.Uniform2ui(loc, v0, v1) }
func (c *Context) Uniform3ui(loc int32, v0, v1, v2 uint32) { gl.Uniform3ui(loc, v0, v1, v2) }
func (c *Context) Uniform4ui(loc int32, v0, v1, v2, v3 uint32) {
	gl.Uniform4ui(loc, v0, v1, v2, v3)
}

func (c *Context) Uniform1f(loc int32, v0 float32)         { gl.Uniform1f(loc, v0) }
func (c *Context) Uniform2f(loc int32, v0, v1 float32)     { gl.Uniform2f(loc, v0, v1) }
func (c *Context) Uniform3f(loc int32, v0, v1, v2 float32) { gl.Uniform3f(loc, v0, v1, v2) }
func (c *Context) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(loc, v0, v1, v2, v3)
}

func (c *Context) UniformMatrix2fv(loc int32, transpose bool, m []float32) {
	if len(m) >= 4 {
		gl.UniformMatrix2fv(loc, 1, transpose, &m[0])
	}
}

func (c *Context) UniformMatrix3fv(loc int32, transpose bool, m []float32) {
	if len(m) >= 9 {
		gl.UniformMatrix3fv(loc, 1, transpose, &m[0])
	}
}

func (c *Context) UniformMatrix4fv(loc int32, transpose bool, m []float32) {
	if len(m) >= 16 {
		gl.UniformMatrix4fv(loc, 1, transpose, &m[0])
	}
}

func (c *Context) ProgramUniform1i(p uint32, loc, v0 int32) { gl.ProgramUniform1i(p, loc, v0) }
func (c *Context) ProgramUniform2i(p uint32, loc, v0, v1 int32) {
	gl.ProgramUniform2i(p, loc, v0, v1)
}
func (c *Context) ProgramUniform3i(p uint32, loc, v0, v1, v2 int32) {
	gl.ProgramUniform3i(p, loc, v0, v1, v2)
}
func (c *Context) ProgramUniform4i(p uint32, loc, v0, v1, v2, v3 int32) {
	gl.ProgramUniform4i(p, loc, v0, v1, v2, v3)
}

func (c *Context) ProgramUniform1ui(p uint32, loc int32, v0 uint32) {
	gl.ProgramUniform1ui(p, loc, v0)
}
func (c *Context) ProgramUniform2ui(p uint32, loc int32, v0, v1 uint32) {
	gl.ProgramUniform2ui(p, loc, v0, v1)
}
func (c *Context) ProgramUniform3ui(p uint32, loc int32, v0, v1, v2 uint32) {
	gl.ProgramUniform3ui(p, loc, v0, v1, v2)
}
func (c *Context) ProgramUniform4ui(p uint32, loc int32, v0, v1, v2, v3 uint32) {
	gl.ProgramUniform4ui(p, loc, v0, v1, v2, v3)
}

func (c *Context) ProgramUniform1f(p uint32, loc int32, v0 float32) {
	gl.ProgramUniform1f(p, loc, v0)
}
func (c *Context) ProgramUniform2f(p uint32, loc int32, v0, v1 float32) {
	gl.ProgramUniform2f(p, loc, v0, v1)
}
func (c *Context) ProgramUniform3f(p uint32, loc int32, v0, v1, v2 float32) {
	gl.ProgramUniform3f(p, loc, v0, v1, v2)
}
func (c *Context) ProgramUniform4f(p uint32, loc int32, v0, v1, v2, v3 float32) {
	gl.ProgramUniform4f(p, loc, v0, v1, v2, v3)
}

func (c *Context) ProgramUniformMatrix2fv(p uint32, loc int32, transpose bool, m []float32) {
	if len(m) >= 4 {
		gl.ProgramUniformMatrix2fv(p, loc, 1, transpose, &m[0])
	}
}

func (c *Context) ProgramUniformMatrix3fv(p uint32, loc int32, transpose bool, m []float32) {
	if len(m) >= 9 {
		gl.ProgramUniformMatrix3fv(p, loc, 1, transpose, &m[0])
	}
}

func (c *Context) ProgramUniformMatrix4fv(p uint32, loc int32, transpose bool, m []float32) {
	if len(m) >= 16 {
		gl.ProgramUniformMatrix4fv(p, loc, 1, transpose, &m[0])
	}
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [api.Context] on the OpenGL 4.1 core
// bindings of github.com/go-gl/gl. It requires cgo.
package glcore

import (
	"strings"

	api "cogentcore.org/glt/gl"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the GL function table for the context that is current
// on the calling thread. It must be called after the window system
// has made a context current, and before any resource is created.
// It fails if the driver cannot provide every 4.1 core entry point,
// ProgramUniform included, so a driver older than 4.1 is not supported.
func Init() error {
	return gl.Init()
}

// Context is the driver-backed [api.Context]. It has no state of its own:
// all state lives in the context current on the calling thread.
type Context struct{}

// New returns a Context for the current GL context.
func New() *Context {
	return &Context{}
}

var _ api.Context = (*Context)(nil)

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func (c *Context) CreateShader(typ api.Enum) uint32 {
	return gl.CreateShader(uint32(typ))
}

func (c *Context) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (c *Context) GetShaderi(shader uint32, pname api.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	n := c.GetShaderi(shader, api.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (c *Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (c *Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (c *Context) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (c *Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (c *Context) GetProgrami(program uint32, pname api.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	n := c.GetProgrami(program, api.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}

func (c *Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (c *Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (c *Context) GetInteger(pname api.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (c *Context) GetString(name api.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (c *Context) GetStringi(name api.Enum, index uint32) string {
	s := gl.GetStringi(uint32(name), index)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (c *Context) GetError() api.Enum { return api.Enum(gl.GetError()) }

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask api.Enum) { gl.Clear(uint32(mask)) }

func (c *Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (c *Context) DrawArrays(mode api.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) DrawElements(mode api.Enum, count int32, typ api.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(offset))
}

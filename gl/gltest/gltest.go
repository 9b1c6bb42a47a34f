// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a software implementation of [gl.Context]
// for testing code that manages GL objects without a window or a driver.
//
// The Context follows the core profile rules that matter for resource
// management: object names are only valid after being generated, deleting
// an object that is bound resets the binding, stateful calls target the
// currently bound object and record INVALID_OPERATION when nothing is
// bound, and shaders flagged for deletion while attached are freed when
// detached. It also counts live objects per [Kind] for leak checks and can
// be told to fail in the ways a real driver can.
//
// Shader "compilation" is a scan of the source: a source containing
// #error fails with the rest of that line as its log, and each declared
// uniform is active if its name is used somewhere else in the source.
package gltest

import (
	"fmt"

	"cogentcore.org/glt/gl"
)

// Kind is a class of GL object.
type Kind int

const (
	Shaders Kind = iota
	Programs
	Buffers
	VertexArrays
	Textures
)

func (k Kind) String() string {
	switch k {
	case Shaders:
		return "Shaders"
	case Programs:
		return "Programs"
	case Buffers:
		return "Buffers"
	case VertexArrays:
		return "VertexArrays"
	case Textures:
		return "Textures"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Context is a software [gl.Context]. The exported fields configure the
// reported capabilities and fault injection, and may be changed at any time.
type Context struct {
	// Major and Minor are the reported context version.
	Major, Minor int

	// Extensions are reported through GetStringi(EXTENSIONS).
	Extensions []string

	Vendor   string
	Renderer string

	// Profile is the CONTEXT_PROFILE_MASK value and Flags the CONTEXT_FLAGS value.
	Profile gl.Enum
	Flags   gl.Enum

	// FailCreate makes object creation of the given kinds return 0.
	FailCreate map[Kind]bool

	// LinkFails makes every LinkProgram fail.
	LinkFails bool

	// ShortAlloc makes BufferData fail to allocate, leaving the
	// buffer with no storage and recording OUT_OF_MEMORY.
	ShortAlloc bool

	// FailTexImage makes TexImage2D record OUT_OF_MEMORY and store nothing.
	FailTexImage bool

	// Calls records the name of every function called, in order.
	Calls []string

	// ClearRGBA, ViewportRect and Draws record the effect of the
	// corresponding calls.
	ClearRGBA    [4]float32
	ViewportRect [4]int32
	Draws        int

	next     uint32
	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj
	buffers  map[uint32]*bufferObj
	arrays   map[uint32]*arrayObj
	textures map[uint32]*textureObj

	program       uint32
	arrayBuffer   uint32
	elementBuffer uint32
	vertexArray   uint32
	activeUnit    uint32
	texUnits      map[uint32]uint32
	unpack        int32
	pack          int32

	errs []gl.Enum
}

var _ gl.Context = (*Context)(nil)

// New returns a Context reporting a 4.6 core profile.
func New() *Context {
	return NewVersion(4, 6)
}

// NewVersion returns a Context reporting the given core profile version.
// Contexts older than 4.1 do not provide the ProgramUniform functions
// unless GL_ARB_separate_shader_objects is added to Extensions.
func NewVersion(major, minor int) *Context {
	return &Context{
		Major:      major,
		Minor:      minor,
		Extensions: []string{"GL_ARB_debug_output", "GL_KHR_debug"},
		Vendor:     "Cogent Core",
		Renderer:   "gltest software",
		Profile:    gl.CONTEXT_CORE_PROFILE_BIT,
		FailCreate: map[Kind]bool{},
		shaders:    map[uint32]*shaderObj{},
		programs:   map[uint32]*programObj{},
		buffers:    map[uint32]*bufferObj{},
		arrays:     map[uint32]*arrayObj{},
		textures:   map[uint32]*textureObj{},
		texUnits:   map[uint32]uint32{},
		unpack:     4,
		pack:       4,
	}
}

func (c *Context) record(name string) {
	c.Calls = append(c.Calls, name)
}

func (c *Context) fail(e gl.Enum) {
	c.errs = append(c.errs, e)
}

func (c *Context) gen(k Kind) uint32 {
	if c.FailCreate[k] {
		return 0
	}
	c.next++
	return c.next
}

// Live returns the number of objects of the given kind that have been
// created and not deleted. Shaders flagged for deletion while still
// attached to a program are not counted.
func (c *Context) Live(k Kind) int {
	switch k {
	case Shaders:
		n := 0
		for _, s := range c.shaders {
			if !s.deleted {
				n++
			}
		}
		return n
	case Programs:
		return len(c.programs)
	case Buffers:
		return len(c.buffers)
	case VertexArrays:
		return len(c.arrays)
	case Textures:
		return len(c.textures)
	}
	return 0
}

// Called reports whether the named function has been called.
func (c *Context) Called(name string) bool {
	for _, n := range c.Calls {
		if n == name {
			return true
		}
	}
	return false
}

// Errors returns the pending errors without clearing them.
func (c *Context) Errors() []gl.Enum {
	return append([]gl.Enum(nil), c.errs...)
}

func (c *Context) directUniforms() bool {
	if c.Major > 4 || (c.Major == 4 && c.Minor >= 1) {
		return true
	}
	for _, e := range c.Extensions {
		if e == "GL_ARB_separate_shader_objects" {
			return true
		}
	}
	return false
}

func (c *Context) GetInteger(pname gl.Enum) int32 {
	c.record("GetInteger")
	switch pname {
	case gl.CURRENT_PROGRAM:
		return int32(c.program)
	case gl.ARRAY_BUFFER_BINDING:
		return int32(c.arrayBuffer)
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return int32(c.boundElements())
	case gl.VERTEX_ARRAY_BINDING:
		return int32(c.vertexArray)
	case gl.TEXTURE_BINDING_2D:
		return int32(c.texUnits[c.activeUnit])
	case gl.ACTIVE_TEXTURE:
		return int32(gl.TEXTURE0) + int32(c.activeUnit)
	case gl.UNPACK_ALIGNMENT:
		return c.unpack
	case gl.PACK_ALIGNMENT:
		return c.pack
	case gl.MAJOR_VERSION:
		return int32(c.Major)
	case gl.MINOR_VERSION:
		return int32(c.Minor)
	case gl.NUM_EXTENSIONS:
		return int32(len(c.Extensions))
	case gl.CONTEXT_PROFILE_MASK:
		return int32(c.Profile)
	case gl.CONTEXT_FLAGS:
		return int32(c.Flags)
	}
	c.fail(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetString(name gl.Enum) string {
	c.record("GetString")
	switch name {
	case gl.VENDOR:
		return c.Vendor
	case gl.RENDERER:
		return c.Renderer
	case gl.VERSION:
		return fmt.Sprintf("%d.%d.0 gltest", c.Major, c.Minor)
	case gl.SHADING_LANGUAGE_VERSION:
		return fmt.Sprintf("%d.%d0 gltest", c.Major, c.Minor)
	}
	c.fail(gl.INVALID_ENUM)
	return ""
}

func (c *Context) GetStringi(name gl.Enum, index uint32) string {
	c.record("GetStringi")
	if name != gl.EXTENSIONS {
		c.fail(gl.INVALID_ENUM)
		return ""
	}
	if int(index) >= len(c.Extensions) {
		c.fail(gl.INVALID_VALUE)
		return ""
	}
	return c.Extensions[index]
}

func (c *Context) GetError() gl.Enum {
	c.record("GetError")
	if len(c.errs) == 0 {
		return gl.NO_ERROR
	}
	e := c.errs[0]
	c.errs = c.errs[1:]
	return e
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor")
	c.ClearRGBA = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask gl.Enum) {
	c.record("Clear")
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport")
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.ViewportRect = [4]int32{x, y, width, height}
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int32) {
	c.record("DrawArrays")
	c.draw()
}

func (c *Context) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int) {
	c.record("DrawElements")
	if c.boundElements() == 0 {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	c.draw()
}

func (c *Context) draw() {
	if c.program == 0 || c.vertexArray == 0 {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	c.Draws++
}

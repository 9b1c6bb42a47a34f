// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/glt/gl"
)

type shaderObj struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
	uniforms []uniformVar
	attached int
	deleted  bool
}

type programObj struct {
	attached []uint32
	linked   bool
	log      string
	locs     map[string]int32
	types    map[int32]string
	values   map[int32]Value
}

// uniformVar is a declared uniform and its GLSL type.
type uniformVar struct {
	name, typ string
}

var uniformDecl = regexp.MustCompile(`\buniform\s+(\w+)\s+(\w+)\s*(?:\[\s*\d*\s*\])?\s*;`)

// activeUniforms returns the declared uniforms that are also used
// somewhere else in the source.
func activeUniforms(src string) []uniformVar {
	var act []uniformVar
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		u := uniformVar{name: m[2], typ: m[1]}
		uses := regexp.MustCompile(`\b`+regexp.QuoteMeta(u.name)+`\b`).FindAllStringIndex(src, -1)
		if len(uses) > 1 && !slices.Contains(act, u) {
			act = append(act, u)
		}
	}
	return act
}

func (c *Context) CreateShader(typ gl.Enum) uint32 {
	c.record("CreateShader")
	switch typ {
	case gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, gl.GEOMETRY_SHADER:
	default:
		c.fail(gl.INVALID_ENUM)
		return 0
	}
	id := c.gen(Shaders)
	if id == 0 {
		return 0
	}
	c.shaders[id] = &shaderObj{typ: typ}
	return id
}

func (c *Context) shader(id uint32) *shaderObj {
	s, ok := c.shaders[id]
	if !ok {
		c.fail(gl.INVALID_VALUE)
		return nil
	}
	return s
}

func (c *Context) ShaderSource(shader uint32, src string) {
	c.record("ShaderSource")
	if s := c.shader(shader); s != nil {
		s.src = src
	}
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader")
	s := c.shader(shader)
	if s == nil {
		return
	}
	s.compiled, s.log, s.uniforms = false, "", nil
	if i := strings.Index(s.src, "#error"); i >= 0 {
		msg := s.src[i+len("#error"):]
		if nl := strings.IndexByte(msg, '\n'); nl >= 0 {
			msg = msg[:nl]
		}
		line := strings.Count(s.src[:i], "\n") + 1
		s.log = "0:" + strconv.Itoa(line) + "(1): error: " + strings.TrimSpace(msg) + "\n"
		return
	}
	if strings.TrimSpace(s.src) == "" {
		s.log = "0:1(1): error: empty source\n"
		return
	}
	s.compiled = true
	s.uniforms = activeUniforms(s.src)
}

func (c *Context) GetShaderi(shader uint32, pname gl.Enum) int32 {
	c.record("GetShaderi")
	s := c.shader(shader)
	if s == nil {
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if s.compiled {
			return 1
		}
		return 0
	case gl.INFO_LOG_LENGTH:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	case gl.SHADER_TYPE:
		return int32(s.typ)
	case gl.DELETE_STATUS:
		if s.deleted {
			return 1
		}
		return 0
	}
	c.fail(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	c.record("GetShaderInfoLog")
	if s := c.shader(shader); s != nil {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader")
	if shader == 0 {
		return
	}
	s := c.shader(shader)
	if s == nil {
		return
	}
	s.deleted = true
	if s.attached == 0 {
		delete(c.shaders, shader)
	}
}

func (c *Context) CreateProgram() uint32 {
	c.record("CreateProgram")
	id := c.gen(Programs)
	if id == 0 {
		return 0
	}
	c.programs[id] = &programObj{}
	return id
}

func (c *Context) prog(id uint32) *programObj {
	p, ok := c.programs[id]
	if !ok {
		c.fail(gl.INVALID_VALUE)
		return nil
	}
	return p
}

func (c *Context) AttachShader(program, shader uint32) {
	c.record("AttachShader")
	p, s := c.prog(program), c.shader(shader)
	if p == nil || s == nil {
		return
	}
	if slices.Contains(p.attached, shader) {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	p.attached = append(p.attached, shader)
	s.attached++
}

func (c *Context) DetachShader(program, shader uint32) {
	c.record("DetachShader")
	p, s := c.prog(program), c.shader(shader)
	if p == nil || s == nil {
		return
	}
	i := slices.Index(p.attached, shader)
	if i < 0 {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	p.attached = slices.Delete(p.attached, i, i+1)
	c.release(shader, s)
}

func (c *Context) release(id uint32, s *shaderObj) {
	s.attached--
	if s.deleted && s.attached == 0 {
		delete(c.shaders, id)
	}
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram")
	p := c.prog(program)
	if p == nil {
		return
	}
	p.linked, p.log, p.locs, p.types, p.values = false, "", nil, nil, nil
	if c.LinkFails {
		p.log = "error: link failure injected\n"
		return
	}
	var names []string
	decl := map[string]string{}
	vertex := false
	for _, id := range p.attached {
		s := c.shaders[id]
		if !s.compiled {
			p.log = "error: attached shader is not compiled\n"
			return
		}
		if s.typ == gl.VERTEX_SHADER {
			vertex = true
		}
		for _, u := range s.uniforms {
			if t, ok := decl[u.name]; ok {
				if t != u.typ {
					p.log = fmt.Sprintf("error: uniform %s declared as both %s and %s\n", u.name, t, u.typ)
					return
				}
				continue
			}
			decl[u.name] = u.typ
			names = append(names, u.name)
		}
	}
	if !vertex {
		p.log = "error: no vertex shader attached\n"
		return
	}
	slices.Sort(names)
	p.locs = make(map[string]int32, len(names))
	p.types = make(map[int32]string, len(names))
	for i, n := range names {
		p.locs[n] = int32(i)
		p.types[int32(i)] = decl[n]
	}
	p.values = map[int32]Value{}
	p.linked = true
}

func (c *Context) GetProgrami(program uint32, pname gl.Enum) int32 {
	c.record("GetProgrami")
	p := c.prog(program)
	if p == nil {
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if p.linked {
			return 1
		}
		return 0
	case gl.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	case gl.ATTACHED_SHADERS:
		return int32(len(p.attached))
	case gl.ACTIVE_UNIFORMS:
		return int32(len(p.locs))
	case gl.DELETE_STATUS:
		return 0
	}
	c.fail(gl.INVALID_ENUM)
	return 0
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	c.record("GetProgramInfoLog")
	if p := c.prog(program); p != nil {
		return p.log
	}
	return ""
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram")
	if program == 0 {
		return
	}
	p := c.prog(program)
	if p == nil {
		return
	}
	for _, id := range p.attached {
		c.release(id, c.shaders[id])
	}
	delete(c.programs, program)
	if c.program == program {
		c.program = 0
	}
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram")
	if program == 0 {
		c.program = 0
		return
	}
	p := c.prog(program)
	if p == nil {
		return
	}
	if !p.linked {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	c.program = program
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("GetUniformLocation")
	p := c.prog(program)
	if p == nil {
		return -1
	}
	if !p.linked {
		c.fail(gl.INVALID_OPERATION)
		return -1
	}
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	return -1
}

// Attached returns the shaders attached to the program.
func (c *Context) Attached(program uint32) []uint32 {
	if p, ok := c.programs[program]; ok {
		return append([]uint32(nil), p.attached...)
	}
	return nil
}

// Linked reports whether the program exists and is linked.
func (c *Context) Linked(program uint32) bool {
	p, ok := c.programs[program]
	return ok && p.linked
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/glt/gl"
)

// Value is the stored value of a uniform. Exactly one of I, U or F is set.
// Matrices are stored in F in the order they were passed.
type Value struct {
	I []int32
	U []uint32
	F []float32
}

// typed is a value together with the GLSL type the entry point sets.
type typed struct {
	typ string
	v   Value
}

// assignable reports whether a uniform declared as decl can be set by an
// entry point for set. Samplers take a single int; bools take any
// scalar or vector of the same size.
func assignable(decl, set string) bool {
	switch {
	case decl == set:
		return true
	case strings.Contains(decl, "sampler"):
		return set == "int"
	case decl == "bool":
		return set == "int" || set == "uint" || set == "float"
	case strings.HasPrefix(decl, "bvec"):
		n := decl[len(decl)-1:]
		return set == "ivec"+n || set == "uvec"+n || set == "vec"+n
	}
	return false
}

func (c *Context) setUniform(program uint32, loc int32, v typed) {
	if program == 0 {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	p, ok := c.programs[program]
	if !ok || !p.linked {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	if loc == -1 {
		return
	}
	decl, ok := p.types[loc]
	if !ok || !assignable(decl, v.typ) {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	p.values[loc] = v.v
}

func (c *Context) bound(name string, loc int32, v typed) {
	c.record(name)
	c.setUniform(c.program, loc, v)
}

// direct stands in for the ProgramUniform entry points, which are
// not loaded on contexts without separate shader objects; calling
// through a missing entry point crashes a real process, so it panics.
func (c *Context) direct(name string, program uint32, loc int32, v typed) {
	c.record(name)
	if !c.directUniforms() {
		panic(fmt.Sprintf("gltest: %s called on a %d.%d context that does not provide it", name, c.Major, c.Minor))
	}
	c.setUniform(program, loc, v)
}

func vecType(scalar, vec string, n int) string {
	if n == 1 {
		return scalar
	}
	return vec + strconv.Itoa(n)
}

func ints(v ...int32) typed     { return typed{vecType("int", "ivec", len(v)), Value{I: v}} }
func uints(v ...uint32) typed   { return typed{vecType("uint", "uvec", len(v)), Value{U: v}} }
func floats(v ...float32) typed { return typed{vecType("float", "vec", len(v)), Value{F: v}} }

func mat(m []float32, n int, transpose bool) typed {
	out := make([]float32, n*n)
	copy(out, m)
	if transpose {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out[i*n+j] = m[j*n+i]
			}
		}
	}
	return typed{"mat" + strconv.Itoa(n), Value{F: out}}
}

// Uniform returns the value last stored in the named uniform of the program.
func (c *Context) Uniform(program uint32, name string) (Value, bool) {
	p, ok := c.programs[program]
	if !ok || !p.linked {
		return Value{}, false
	}
	loc, ok := p.locs[name]
	if !ok {
		return Value{}, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// Uniforms returns a copy of all values stored in the program, by location.
func (c *Context) Uniforms(program uint32) map[int32]Value {
	p, ok := c.programs[program]
	if !ok {
		return nil
	}
	m := make(map[int32]Value, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Locations returns the active uniforms of a linked program by name.
func (c *Context) Locations(program uint32) map[string]int32 {
	p, ok := c.programs[program]
	if !ok {
		return nil
	}
	m := make(map[string]int32, len(p.locs))
	for k, v := range p.locs {
		m[k] = v
	}
	return m
}

func (c *Context) Uniform1i(loc, v0 int32)         { c.bound("Uniform1i", loc, ints(v0)) }
func (c *Context) Uniform2i(loc, v0, v1 int32)     { c.bound("Uniform2i", loc, ints(v0, v1)) }
func (c *Context) Uniform3i(loc, v0, v1, v2 int32) { c.bound("Uniform3i", loc, ints(v0, v1, v2)) }
func (c *Context) Uniform4i(loc, v0, v1, v2, v3 int32) {
	c.bound("Uniform4i", loc, ints(v0, v1, v2, v3))
}

func (c *Context) Uniform1ui(loc int32, v0 uint32)     { c.bound("Uniform1ui", loc, uints(v0)) }
func (c *Context) Uniform2ui(loc int32, v0, v1 uint32) { c.bound("Uniform2ui", loc, uints(v0, v1)) }
func (c *Context) Uniform3ui(loc int32, v0, v1, v2 uint32) {
	c.bound("Uniform3ui", loc, uints(v0, v1, v2))
}
func (c *Context) Uniform4ui(loc int32, v0, v1, v2, v3 uint32) {
	c.bound("Uniform4ui", loc, uints(v0, v1, v2, v3))
}

func (c *Context) Uniform1f(loc int32, v0 float32)     { c.bound("Uniform1f", loc, floats(v0)) }
func (c *Context) Uniform2f(loc int32, v0, v1 float32) { c.bound("Uniform2f", loc, floats(v0, v1)) }
func (c *Context) Uniform3f(loc int32, v0, v1, v2 float32) {
	c.bound("Uniform3f", loc, floats(v0, v1, v2))
}
func (c *Context) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	c.bound("Uniform4f", loc, floats(v0, v1, v2, v3))
}

func (c *Context) UniformMatrix2fv(loc int32, transpose bool, m []float32) {
	c.bound("UniformMatrix2fv", loc, mat(m, 2, transpose))
}
func (c *Context) UniformMatrix3fv(loc int32, transpose bool, m []float32) {
	c.bound("UniformMatrix3fv", loc, mat(m, 3, transpose))
}
func (c *Context) UniformMatrix4fv(loc int32, transpose bool, m []float32) {
	c.bound("UniformMatrix4fv", loc, mat(m, 4, transpose))
}

func (c *Context) ProgramUniform1i(p uint32, loc, v0 int32) {
	c.direct("ProgramUniform1i", p, loc, ints(v0))
}
func (c *Context) ProgramUniform2i(p uint32, loc, v0, v1 int32) {
	c.direct("ProgramUniform2i", p, loc, ints(v0, v1))
}
func (c *Context) ProgramUniform3i(p uint32, loc, v0, v1, v2 int32) {
	c.direct("ProgramUniform3i", p, loc, ints(v0, v1, v2))
}
func (c *Context) ProgramUniform4i(p uint32, loc, v0, v1, v2, v3 int32) {
	c.direct("ProgramUniform4i", p, loc, ints(v0, v1, v2, v3))
}

func (c *Context) ProgramUniform1ui(p uint32, loc int32, v0 uint32) {
	c.direct("ProgramUniform1ui", p, loc, uints(v0))
}
func (c *Context) ProgramUniform2ui(p uint32, loc int32, v0, v1 uint32) {
	c.direct("ProgramUniform2ui", p, loc, uints(v0, v1))
}
func (c *Context) ProgramUniform3ui(p uint32, loc int32, v0, v1, v2 uint32) {
	c.direct("ProgramUniform3ui", p, loc, uints(v0, v1, v2))
}
func (c *Context) ProgramUniform4ui(p uint32, loc int32, v0, v1, v2, v3 uint32) {
	c.direct("ProgramUniform4ui", p, loc, uints(v0, v1, v2, v3))
}

func (c *Context) ProgramUniform1f(p uint32, loc int32, v0 float32) {
	c.direct("ProgramUniform1f", p, loc, floats(v0))
}
func (c *Context) ProgramUniform2f(p uint32, loc int32, v0, v1 float32) {
	c.direct("ProgramUniform2f", p, loc, floats(v0, v1))
}
func (c *Context) ProgramUniform3f(p uint32, loc int32, v0, v1, v2 float32) {
	c.direct("ProgramUniform3f", p, loc, floats(v0, v1, v2))
}
func (c *Context) ProgramUniform4f(p uint32, loc int32, v0, v1, v2, v3 float32) {
	c.direct("ProgramUniform4f", p, loc, floats(v0, v1, v2, v3))
}

func (c *Context) ProgramUniformMatrix2fv(p uint32, loc int32, transpose bool, m []float32) {
	c.direct("ProgramUniformMatrix2fv", p, loc, mat(m, 2, transpose))
}
func (c *Context) ProgramUniformMatrix3fv(p uint32, loc int32, transpose bool, m []float32) {
	c.direct("ProgramUniformMatrix3fv", p, loc, mat(m, 3, transpose))
}
func (c *Context) ProgramUniformMatrix4fv(p uint32, loc int32, transpose bool, m []float32) {
	c.direct("ProgramUniformMatrix4fv", p, loc, mat(m, 4, transpose))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"cogentcore.org/glt/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// value is a uniform value that can be set through either uniform path.
type value interface {
	// bound sets the value on the current program.
	bound(ctx gl.Context, loc int32)

	// direct sets the value on the given program.
	direct(ctx gl.Context, prog uint32, loc int32)
}

type ints []int32

func (v ints) bound(ctx gl.Context, loc int32) {
	switch len(v) {
	case 1:
		ctx.Uniform1i(loc, v[0])
	case 2:
		ctx.Uniform2i(loc, v[0], v[1])
	case 3:
		ctx.Uniform3i(loc, v[0], v[1], v[2])
	case 4:
		ctx.Uniform4i(loc, v[0], v[1], v[2], v[3])
	}
}

func (v ints) direct(ctx gl.Context, prog uint32, loc int32) {
	switch len(v) {
	case 1:
		ctx.ProgramUniform1i(prog, loc, v[0])
	case 2:
		ctx.ProgramUniform2i(prog, loc, v[0], v[1])
	case 3:
		ctx.ProgramUniform3i(prog, loc, v[0], v[1], v[2])
	case 4:
		ctx.ProgramUniform4i(prog, loc, v[0], v[1], v[2], v[3])
	}
}

type uints []uint32

func (v uints) bound(ctx gl.Context, loc int32) {
	switch len(v) {
	case 1:
		ctx.Uniform1ui(loc, v[0])
	case 2:
		ctx.Uniform2ui(loc, v[0], v[1])
	case 3:
		ctx.Uniform3ui(loc, v[0], v[1], v[2])
	case 4:
		ctx.Uniform4ui(loc, v[0], v[1], v[2], v[3])
	}
}

func (v uints) direct(ctx gl.Context, prog uint32, loc int32) {
	switch len(v) {
	case 1:
		ctx.ProgramUniform1ui(prog, loc, v[0])
	case 2:
		ctx.ProgramUniform2ui(prog, loc, v[0], v[1])
	case 3:
		ctx.ProgramUniform3ui(prog, loc, v[0], v[1], v[2])
	case 4:
		ctx.ProgramUniform4ui(prog, loc, v[0], v[1], v[2], v[3])
	}
}

type floats []float32

func (v floats) bound(ctx gl.Context, loc int32) {
	switch len(v) {
	case 1:
		ctx.Uniform1f(loc, v[0])
	case 2:
		ctx.Uniform2f(loc, v[0], v[1])
	case 3:
		ctx.Uniform3f(loc, v[0], v[1], v[2])
	case 4:
		ctx.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (v floats) direct(ctx gl.Context, prog uint32, loc int32) {
	switch len(v) {
	case 1:
		ctx.ProgramUniform1f(prog, loc, v[0])
	case 2:
		ctx.ProgramUniform2f(prog, loc, v[0], v[1])
	case 3:
		ctx.ProgramUniform3f(prog, loc, v[0], v[1], v[2])
	case 4:
		ctx.ProgramUniform4f(prog, loc, v[0], v[1], v[2], v[3])
	}
}

// matrix is a square column-major matrix of order 2, 3 or 4.
type matrix []float32

func (m matrix) bound(ctx gl.Context, loc int32) {
	switch len(m) {
	case 4:
		ctx.UniformMatrix2fv(loc, false, m)
	case 9:
		ctx.UniformMatrix3fv(loc, false, m)
	case 16:
		ctx.UniformMatrix4fv(loc, false, m)
	}
}

func (m matrix) direct(ctx gl.Context, prog uint32, loc int32) {
	switch len(m) {
	case 4:
		ctx.ProgramUniformMatrix2fv(prog, loc, false, m)
	case 9:
		ctx.ProgramUniformMatrix3fv(prog, loc, false, m)
	case 16:
		ctx.ProgramUniformMatrix4fv(prog, loc, false, m)
	}
}

// dispatch sets v at loc of prog. On the bound path prog is made current
// if it is not already, and is left current.
func dispatch(ctx gl.Context, prog uint32, loc int32, v value, direct bool) {
	if direct {
		v.direct(ctx, prog, loc)
		return
	}
	if gl.CurrentProgram(ctx) != prog {
		ctx.UseProgram(prog)
	}
	v.bound(ctx, loc)
}

func (pr *Program) setAt(loc int32, v value) {
	if !pr.Valid() || loc < 0 {
		return
	}
	dispatch(pr.ctx, pr.handle, loc, v, DirectUniforms(pr.ctx))
}

func (pr *Program) set(name string, v value) {
	pr.setAt(pr.Location(name), v)
}

// SetInt sets the named int uniform. A name that is not an active uniform
// of the program is ignored, as is a nil or destroyed program.
// The same holds for every other named setter.
func (pr *Program) SetInt(name string, x int32) { pr.set(name, ints{x}) }

// SetIVec2 sets the named ivec2 uniform.
func (pr *Program) SetIVec2(name string, x, y int32) { pr.set(name, ints{x, y}) }

// SetIVec3 sets the named ivec3 uniform.
func (pr *Program) SetIVec3(name string, x, y, z int32) { pr.set(name, ints{x, y, z}) }

// SetIVec4 sets the named ivec4 uniform.
func (pr *Program) SetIVec4(name string, x, y, z, w int32) { pr.set(name, ints{x, y, z, w}) }

// SetUint sets the named uint uniform.
func (pr *Program) SetUint(name string, x uint32) { pr.set(name, uints{x}) }

// SetUVec2 sets the named uvec2 uniform.
func (pr *Program) SetUVec2(name string, x, y uint32) { pr.set(name, uints{x, y}) }

// SetUVec3 sets the named uvec3 uniform.
func (pr *Program) SetUVec3(name string, x, y, z uint32) { pr.set(name, uints{x, y, z}) }

// SetUVec4 sets the named uvec4 uniform.
func (pr *Program) SetUVec4(name string, x, y, z, w uint32) { pr.set(name, uints{x, y, z, w}) }

// SetFloat sets the named float uniform.
func (pr *Program) SetFloat(name string, x float32) { pr.set(name, floats{x}) }

// SetVec2 sets the named vec2 uniform.
func (pr *Program) SetVec2(name string, x, y float32) { pr.set(name, floats{x, y}) }

// SetVec3 sets the named vec3 uniform.
func (pr *Program) SetVec3(name string, x, y, z float32) { pr.set(name, floats{x, y, z}) }

// SetVec4 sets the named vec4 uniform.
func (pr *Program) SetVec4(name string, x, y, z, w float32) { pr.set(name, floats{x, y, z, w}) }

// SetMat2 sets the named mat2 uniform.
func (pr *Program) SetMat2(name string, m mgl32.Mat2) { pr.set(name, matrix(m[:])) }

// SetMat3 sets the named mat3 uniform.
func (pr *Program) SetMat3(name string, m mgl32.Mat3) { pr.set(name, matrix(m[:])) }

// SetMat4 sets the named mat4 uniform.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) { pr.set(name, matrix(m[:])) }

// SetIntAt sets the int uniform at loc. A negative location is ignored,
// as is a nil or destroyed program. The same holds for every other
// location setter.
//
// Unless [DirectUniforms] is true, the program is bound first if it is
// not the current program, and remains bound afterwards.
func (pr *Program) SetIntAt(loc int32, x int32) { pr.setAt(loc, ints{x}) }

func (pr *Program) SetIVec2At(loc int32, x, y int32)       { pr.setAt(loc, ints{x, y}) }
func (pr *Program) SetIVec3At(loc int32, x, y, z int32)    { pr.setAt(loc, ints{x, y, z}) }
func (pr *Program) SetIVec4At(loc int32, x, y, z, w int32) { pr.setAt(loc, ints{x, y, z, w}) }

func (pr *Program) SetUintAt(loc int32, x uint32)           { pr.setAt(loc, uints{x}) }
func (pr *Program) SetUVec2At(loc int32, x, y uint32)       { pr.setAt(loc, uints{x, y}) }
func (pr *Program) SetUVec3At(loc int32, x, y, z uint32)    { pr.setAt(loc, uints{x, y, z}) }
func (pr *Program) SetUVec4At(loc int32, x, y, z, w uint32) { pr.setAt(loc, uints{x, y, z, w}) }

func (pr *Program) SetFloatAt(loc int32, x float32)         { pr.setAt(loc, floats{x}) }
func (pr *Program) SetVec2At(loc int32, x, y float32)       { pr.setAt(loc, floats{x, y}) }
func (pr *Program) SetVec3At(loc int32, x, y, z float32)    { pr.setAt(loc, floats{x, y, z}) }
func (pr *Program) SetVec4At(loc int32, x, y, z, w float32) { pr.setAt(loc, floats{x, y, z, w}) }

func (pr *Program) SetMat2At(loc int32, m mgl32.Mat2) { pr.setAt(loc, matrix(m[:])) }
func (pr *Program) SetMat3At(loc int32, m mgl32.Mat3) { pr.setAt(loc, matrix(m[:])) }
func (pr *Program) SetMat4At(loc int32, m mgl32.Mat4) { pr.setAt(loc, matrix(m[:])) }

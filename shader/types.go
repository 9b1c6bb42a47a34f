// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader provides the Program resource: compiling shader stages,
// linking them, and setting uniforms on the linked program.
//
// Uniforms are set either directly on the program (ProgramUniform, when
// the context provides it) or by binding the program and setting them on
// the current program. Which path is taken is decided once per process by
// [DirectUniforms]. The bound path leaves the program bound.
package shader

import (
	"fmt"

	"cogentcore.org/glt/gl"
)

// Types is a kind of shader stage.
type Types int32

const (
	// VertexShader runs once per vertex.
	VertexShader Types = iota

	// FragmentShader runs once per fragment.
	FragmentShader

	// GeometryShader runs once per primitive, between the vertex
	// and fragment stages.
	GeometryShader
)

func (typ Types) String() string {
	switch typ {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	case GeometryShader:
		return "GeometryShader"
	}
	return fmt.Sprintf("Types(%d)", int32(typ))
}

// GLType returns the GL token for the stage type, and false if there is none.
func (typ Types) GLType() (gl.Enum, bool) {
	e, ok := glShaders[typ]
	return e, ok
}

var glShaders = map[Types]gl.Enum{
	VertexShader:   gl.VERTEX_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
	GeometryShader: gl.GEOMETRY_SHADER,
}

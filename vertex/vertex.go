// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vertex

import (
	"unsafe"

	"cogentcore.org/glt/buffer"
	"cogentcore.org/glt/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the standard interleaved vertex: a position, a color and a
// texture coordinate, read by shader inputs 0, 1 and 2.
type Vertex struct {
	Pos      mgl32.Vec3
	Color    mgl32.Vec3
	TexCoord mgl32.Vec2
}

// VertexStride is the size in bytes of a [Vertex].
const VertexStride = int32(unsafe.Sizeof(Vertex{}))

// Shader input locations of the [Vertex] fields.
const (
	PosLoc uint32 = iota
	ColorLoc
	TexCoordLoc
)

// VertexAttribs sets up inputs 0, 1 and 2 to read a slice of [Vertex]
// values from buf.
func (l *Layout) VertexAttribs(buf *buffer.Buffer) {
	var v Vertex
	l.AttribPointer(buf, PosLoc, 3, gl.FLOAT, false, VertexStride, int(unsafe.Offsetof(v.Pos)))
	l.AttribPointer(buf, ColorLoc, 3, gl.FLOAT, false, VertexStride, int(unsafe.Offsetof(v.Color)))
	l.AttribPointer(buf, TexCoordLoc, 2, gl.FLOAT, false, VertexStride, int(unsafe.Offsetof(v.TexCoord)))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vertex provides the Layout resource, a GL vertex array object
// describing how the bytes of array buffers map to shader inputs.
package vertex

import (
	"log/slog"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/buffer"
	"cogentcore.org/glt/gl"
)

// Layout owns a GL vertex array object. Attributes are driver state of the
// vertex array and are not kept in the Layout. A Layout refers to the
// buffers of its attributes without owning them; they must outlive every
// draw that uses the layout. A nil *Layout is valid and every method on it
// does nothing.
type Layout struct {
	ctx    gl.Context
	handle uint32
}

// New creates a vertex array.
func New(ctx gl.Context) (*Layout, error) {
	if ctx == nil {
		return nil, errors.Errorf("vertex: no context: %w", errors.ErrInvalidArgument)
	}
	handle := ctx.GenVertexArray()
	if handle == 0 {
		return nil, errors.Errorf("vertex: GenVertexArrays returned 0: %w", errors.ErrAllocation)
	}
	return &Layout{ctx: ctx, handle: handle}, nil
}

// Valid reports whether the layout holds a vertex array object.
func (l *Layout) Valid() bool {
	return l != nil && l.handle != 0
}

// Handle returns the GL vertex array object, or 0.
func (l *Layout) Handle() uint32 {
	if l == nil {
		return 0
	}
	return l.handle
}

// Bind makes this the current vertex array.
func (l *Layout) Bind() {
	if !l.Valid() {
		return
	}
	l.ctx.BindVertexArray(l.handle)
}

// Unbind clears the current vertex array.
func (l *Layout) Unbind() {
	if !l.Valid() {
		return
	}
	l.ctx.BindVertexArray(0)
}

// Destroy deletes the vertex array. It is safe to call more than once.
func (l *Layout) Destroy() {
	if !l.Valid() {
		return
	}
	l.ctx.DeleteVertexArray(l.handle)
	l.handle = 0
}

// prepare binds the layout and buf for an attribute, and reports whether
// both are usable. The bindings are left in place.
func (l *Layout) prepare(fn string, buf *buffer.Buffer) bool {
	switch {
	case !l.Valid():
		slog.Error("vertex: "+fn+": invalid layout", "layout", l.Handle())
		return false
	case !buf.Valid():
		slog.Error("vertex: "+fn+": invalid buffer", "layout", l.handle, "buffer", buf.Handle())
		return false
	case buf.Target() != gl.ARRAY_BUFFER:
		slog.Error("vertex: "+fn+": buffer is not an array buffer", "layout", l.handle, "buffer", buf.Handle())
		return false
	}
	l.ctx.BindVertexArray(l.handle)
	l.ctx.BindBuffer(gl.ARRAY_BUFFER, buf.Handle())
	return true
}

// AttribPointer sets attribute index to read size components of typ from
// buf, starting at byte offset and stride bytes apart, converted to
// floating point and optionally normalized, and enables it.
// The layout and the buffer are left bound.
func (l *Layout) AttribPointer(buf *buffer.Buffer, index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) {
	if !l.prepare("AttribPointer", buf) {
		return
	}
	l.ctx.VertexAttribPointer(index, size, typ, normalized, stride, offset)
	l.ctx.EnableVertexAttribArray(index)
}

// AttribIPointer is [Layout.AttribPointer] for integer shader inputs:
// the components are passed as integers, unconverted.
func (l *Layout) AttribIPointer(buf *buffer.Buffer, index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	if !l.prepare("AttribIPointer", buf) {
		return
	}
	l.ctx.VertexAttribIPointer(index, size, typ, stride, offset)
	l.ctx.EnableVertexAttribArray(index)
}

// AttribLPointer is [Layout.AttribPointer] for double shader inputs.
// typ must be DOUBLE.
func (l *Layout) AttribLPointer(buf *buffer.Buffer, index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	if !l.prepare("AttribLPointer", buf) {
		return
	}
	l.ctx.VertexAttribLPointer(index, size, typ, stride, offset)
	l.ctx.EnableVertexAttribArray(index)
}

// bound reports whether a vertex array is bound, logging if not.
func bound(ctx gl.Context, fn string, index uint32) bool {
	if ctx == nil {
		return false
	}
	if gl.BoundVertexArray(ctx) == 0 {
		slog.Warn("vertex: "+fn+": no vertex array bound", "index", index)
		return false
	}
	return true
}

// EnableAttrib enables attribute index of the current vertex array.
// Bind the intended layout first.
func EnableAttrib(ctx gl.Context, index uint32) {
	if bound(ctx, "EnableAttrib", index) {
		ctx.EnableVertexAttribArray(index)
	}
}

// DisableAttrib disables attribute index of the current vertex array.
func DisableAttrib(ctx gl.Context, index uint32) {
	if bound(ctx, "DisableAttrib", index) {
		ctx.DisableVertexAttribArray(index)
	}
}

// SetDivisor sets the instancing divisor of attribute index of the
// current vertex array: the attribute advances once every divisor
// instances, or once per vertex for 0.
func SetDivisor(ctx gl.Context, index, divisor uint32) {
	if bound(ctx, "SetDivisor", index) {
		ctx.VertexAttribDivisor(index, divisor)
	}
}

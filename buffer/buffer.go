// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer provides the Buffer resource, a GL buffer object holding
// vertex data or element indexes.
package buffer

import (
	"unsafe"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
)

// Usage is a hint about how often the buffer contents will change.
type Usage = gl.Enum

const (
	// StaticDraw is for contents set once and drawn many times.
	StaticDraw Usage = gl.STATIC_DRAW

	// DynamicDraw is for contents changed repeatedly and drawn many times.
	DynamicDraw Usage = gl.DYNAMIC_DRAW

	// StreamDraw is for contents set once and drawn a few times.
	StreamDraw Usage = gl.STREAM_DRAW
)

// Buffer owns a GL buffer object bound to either the ARRAY_BUFFER or
// the ELEMENT_ARRAY_BUFFER target. A nil *Buffer is valid and every
// method on it does nothing.
type Buffer struct {
	ctx    gl.Context
	handle uint32
	target gl.Enum
	size   int
	usage  Usage
}

// New creates an array buffer of size bytes holding data. A nil data
// allocates the storage without initializing it; otherwise data must
// hold at least size bytes.
//
// The allocation is checked against the size the driver reports, which
// is how an out of memory failure shows up; on a mismatch the buffer is
// deleted and an [errors.ErrAllocation] is returned. New leaves
// ARRAY_BUFFER unbound.
func New(ctx gl.Context, data []byte, size int, usage Usage) (*Buffer, error) {
	return create(ctx, gl.ARRAY_BUFFER, data, size, usage)
}

// NewFrom creates an array buffer holding the memory of data, which
// must be a slice of fixed size values such as float32 or a vertex struct.
func NewFrom[T any](ctx gl.Context, data []T, usage Usage) (*Buffer, error) {
	b := Bytes(data)
	return New(ctx, b, len(b), usage)
}

// NewIndexes creates an element array buffer holding the given indexes.
// The ELEMENT_ARRAY_BUFFER binding belongs to the bound vertex array,
// so it is restored to what it was before the call.
func NewIndexes(ctx gl.Context, idxs []uint32, usage Usage) (*Buffer, error) {
	b := Bytes(idxs)
	return create(ctx, gl.ELEMENT_ARRAY_BUFFER, b, len(b), usage)
}

func create(ctx gl.Context, target gl.Enum, data []byte, size int, usage Usage) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.Errorf("buffer: size %d is not positive: %w", size, errors.ErrInvalidArgument)
	}
	if ctx == nil {
		return nil, errors.Errorf("buffer: no context: %w", errors.ErrInvalidArgument)
	}
	if data != nil && len(data) < size {
		return nil, errors.Errorf("buffer: %d bytes of data for a size of %d: %w", len(data), size, errors.ErrInvalidArgument)
	}
	handle := ctx.GenBuffer()
	if handle == 0 {
		return nil, errors.Errorf("buffer: GenBuffers returned 0: %w", errors.ErrAllocation)
	}
	b := &Buffer{ctx: ctx, handle: handle, target: target, usage: usage}
	restore := b.bindTarget()
	got := b.upload(data, size)
	if got != size {
		ctx.DeleteBuffer(handle)
		restore()
		return nil, errors.Errorf("buffer: driver allocated %d of %d bytes (%v): %w",
			got, size, errorNames(gl.DrainErrors(ctx)), errors.ErrAllocation)
	}
	restore()
	b.size = size
	return b, nil
}

// bindTarget binds the buffer and returns a function that undoes it:
// it unbinds ARRAY_BUFFER and restores the previous ELEMENT_ARRAY_BUFFER.
func (b *Buffer) bindTarget() func() {
	prev := uint32(0)
	if b.target == gl.ELEMENT_ARRAY_BUFFER {
		prev = gl.BoundElementBuffer(b.ctx)
	}
	b.ctx.BindBuffer(b.target, b.handle)
	return func() {
		b.ctx.BindBuffer(b.target, prev)
	}
}

// upload respecifies the storage of the bound buffer and returns the
// size the driver reports for it.
func (b *Buffer) upload(data []byte, size int) int {
	if data != nil {
		data = data[:size]
	}
	b.ctx.BufferData(b.target, size, data, b.usage)
	return int(b.ctx.GetBufferParameteri(b.target, gl.BUFFER_SIZE))
}

func errorNames(errs []gl.Enum) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = gl.ErrorString(e)
	}
	return names
}

// SetData replaces the contents of the buffer with data, with the same
// usage. It does nothing for an empty data or a nil or destroyed buffer.
// [Buffer.Size] changes only once the driver reports the new size; if the
// driver fails to allocate it, the failure is logged and the size is kept.
func (b *Buffer) SetData(data []byte) {
	if !b.Valid() || len(data) == 0 {
		return
	}
	restore := b.bindTarget()
	defer restore()
	got := b.upload(data, len(data))
	if got != len(data) {
		errors.Log(errors.Errorf("buffer: SetData of %d bytes to buffer %d allocated %d %v: %w",
			len(data), b.handle, got, errorNames(gl.DrainErrors(b.ctx)), errors.ErrAllocation))
		return
	}
	b.size = len(data)
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	if !b.Valid() {
		return
	}
	b.ctx.BindBuffer(b.target, b.handle)
}

// Unbind clears the binding of the buffer's target.
func (b *Buffer) Unbind() {
	if !b.Valid() {
		return
	}
	b.ctx.BindBuffer(b.target, 0)
}

// Valid reports whether the buffer holds a buffer object.
func (b *Buffer) Valid() bool {
	return b != nil && b.handle != 0
}

// Handle returns the GL buffer object, or 0.
func (b *Buffer) Handle() uint32 {
	if b == nil {
		return 0
	}
	return b.handle
}

// Size returns the size in bytes of the last successful upload.
func (b *Buffer) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Usage returns the usage hint of the buffer.
func (b *Buffer) Usage() Usage {
	if b == nil {
		return 0
	}
	return b.usage
}

// Target returns ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER.
func (b *Buffer) Target() gl.Enum {
	if b == nil {
		return 0
	}
	return b.target
}

// Destroy deletes the buffer object. It is safe to call more than once.
func (b *Buffer) Destroy() {
	if !b.Valid() {
		return
	}
	b.ctx.DeleteBuffer(b.handle)
	b.handle = 0
	b.size = 0
}

// Bytes returns the memory of s as a byte slice, without copying.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
	"cogentcore.org/glt/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidSize(t *testing.T) {
	c := gltest.New()
	for _, size := range []int{-1, 0} {
		b, err := New(c, nil, size, StaticDraw)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	}
	assert.Empty(t, c.Calls)

	_, err := New(c, []byte{1, 2}, 4, StaticDraw)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = New(nil, nil, 4, StaticDraw)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Empty(t, c.Calls)
}

func TestNew(t *testing.T) {
	c := gltest.New()
	b, err := New(c, []byte{1, 2, 3, 4, 5}, 4, DynamicDraw)
	require.NoError(t, err)
	assert.NotZero(t, b.Handle())
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, DynamicDraw, b.Usage())
	assert.Equal(t, gl.ARRAY_BUFFER, b.Target())
	assert.Equal(t, []byte{1, 2, 3, 4}, c.BufferBytes(b.Handle()))
	assert.EqualValues(t, 0, gl.BoundArrayBuffer(c))

	u, err := New(c, nil, 16, StreamDraw)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 16), c.BufferBytes(u.Handle()))
	assert.Equal(t, 2, c.Live(gltest.Buffers))
}

func TestNewAllocationFailure(t *testing.T) {
	c := gltest.New()
	c.FailCreate[gltest.Buffers] = true
	_, err := New(c, nil, 4, StaticDraw)
	assert.ErrorIs(t, err, errors.ErrAllocation)

	c.FailCreate[gltest.Buffers] = false
	c.ShortAlloc = true
	b, err := New(c, nil, 1024, StaticDraw)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, errors.ErrAllocation)
	assert.Contains(t, err.Error(), "OUT_OF_MEMORY")
	assert.Equal(t, 0, c.Live(gltest.Buffers))
	assert.EqualValues(t, 0, gl.BoundArrayBuffer(c))
	assert.Empty(t, gl.DrainErrors(c))
}

func TestSetData(t *testing.T) {
	c := gltest.New()
	b, err := New(c, nil, 4, DynamicDraw)
	require.NoError(t, err)
	d := []byte("twelve bytes")
	b.SetData(d)
	assert.Equal(t, len(d), b.Size())
	assert.Equal(t, d, c.BufferBytes(b.Handle()))

	b.SetData(nil)
	assert.Equal(t, len(d), b.Size())
}

func TestSetDataFailureKeepsSize(t *testing.T) {
	var logs bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(old)

	c := gltest.New()
	b, err := New(c, []byte{1, 2, 3}, 3, StaticDraw)
	require.NoError(t, err)
	c.ShortAlloc = true
	b.SetData(make([]byte, 64))
	assert.Equal(t, 3, b.Size())
	assert.Empty(t, gl.DrainErrors(c))
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), errors.ErrAllocation.Error())
}

func TestIndexes(t *testing.T) {
	c := gltest.New()
	va := c.GenVertexArray()
	c.BindVertexArray(va)
	eb := c.GenBuffer()
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, eb)

	ib, err := NewIndexes(c, []uint32{0, 1, 2, 2, 3, 0}, StaticDraw)
	require.NoError(t, err)
	assert.Equal(t, 24, ib.Size())
	assert.Equal(t, gl.ELEMENT_ARRAY_BUFFER, ib.Target())
	assert.Equal(t, eb, gl.BoundElementBuffer(c))
	assert.Equal(t, []byte{2, 0, 0, 0}, c.BufferBytes(ib.Handle())[8:12])

	ib.Bind()
	assert.Equal(t, ib.Handle(), c.ElementBuffer(va))
	ib.Unbind()
	assert.EqualValues(t, 0, c.ElementBuffer(va))
}

func TestNewFrom(t *testing.T) {
	c := gltest.New()
	b, err := NewFrom(c, []float32{1, 0, 0, 1}, StaticDraw)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Size())
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, c.BufferBytes(b.Handle())[:4])

	_, err = NewFrom[float32](c, nil, StaticDraw)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestBindDestroy(t *testing.T) {
	c := gltest.New()
	b, err := New(c, nil, 8, StaticDraw)
	require.NoError(t, err)
	b.Bind()
	assert.Equal(t, b.Handle(), gl.BoundArrayBuffer(c))
	b.Unbind()
	assert.EqualValues(t, 0, gl.BoundArrayBuffer(c))

	b.Destroy()
	b.Destroy()
	assert.False(t, b.Valid())
	assert.Zero(t, b.Size())
	assert.Equal(t, 0, c.Live(gltest.Buffers))

	var nb *Buffer
	assert.NotPanics(t, func() {
		nb.Destroy()
		nb.Bind()
		nb.Unbind()
		nb.SetData([]byte{1})
	})
	assert.Zero(t, nb.Handle())
}

func TestBytes(t *testing.T) {
	assert.Nil(t, Bytes[uint16](nil))
	assert.Len(t, Bytes([]uint16{1, 2, 3}), 6)
	type vert struct{ X, Y, Z float32 }
	assert.Len(t, Bytes([]vert{{}, {}}), 24)
}

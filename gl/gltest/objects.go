// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"math/bits"

	"cogentcore.org/glt/gl"
)

type bufferObj struct {
	data  []byte
	usage gl.Enum
}

type arrayObj struct {
	attribs  map[uint32]*Attrib
	elements uint32
}

// Attrib is the recorded state of one vertex attribute of a vertex array.
type Attrib struct {
	Enabled    bool
	Size       int32
	Type       gl.Enum
	Normalized bool

	// Integer and Double report whether the attribute was specified
	// through VertexAttribIPointer or VertexAttribLPointer.
	Integer bool
	Double  bool

	Stride  int32
	Offset  int
	Buffer  uint32
	Divisor uint32
}

// TextureState is the recorded state of a texture object.
type TextureState struct {
	Width, Height  int32
	InternalFormat int32
	Format         gl.Enum

	// Pix holds the uploaded level 0 image, tightly packed.
	Pix []byte

	// Levels is the number of mip levels, 1 until GenerateMipmap is called.
	Levels int
	Params map[gl.Enum]int32
}

type textureObj struct {
	TextureState
}

// maxAttribs is MAX_VERTEX_ATTRIBS for every gltest context.
const maxAttribs = 16

func (c *Context) GenBuffer() uint32 {
	c.record("GenBuffer")
	id := c.gen(Buffers)
	if id == 0 {
		return 0
	}
	c.buffers[id] = &bufferObj{usage: gl.STATIC_DRAW}
	return id
}

func (c *Context) DeleteBuffer(buf uint32) {
	c.record("DeleteBuffer")
	if _, ok := c.buffers[buf]; !ok {
		return
	}
	delete(c.buffers, buf)
	if c.arrayBuffer == buf {
		c.arrayBuffer = 0
	}
	if va := c.arrays[c.vertexArray]; va != nil && va.elements == buf {
		va.elements = 0
	}
	if c.elementBuffer == buf {
		c.elementBuffer = 0
	}
}

// boundElements returns the element buffer of the bound vertex array,
// or the loose binding when no vertex array is bound.
func (c *Context) boundElements() uint32 {
	if va := c.arrays[c.vertexArray]; va != nil {
		return va.elements
	}
	return c.elementBuffer
}

func (c *Context) BindBuffer(target gl.Enum, buf uint32) {
	c.record("BindBuffer")
	if buf != 0 {
		if _, ok := c.buffers[buf]; !ok {
			c.fail(gl.INVALID_OPERATION)
			return
		}
	}
	switch target {
	case gl.ARRAY_BUFFER:
		c.arrayBuffer = buf
	case gl.ELEMENT_ARRAY_BUFFER:
		if va := c.arrays[c.vertexArray]; va != nil {
			va.elements = buf
		} else {
			c.elementBuffer = buf
		}
	default:
		c.fail(gl.INVALID_ENUM)
	}
}

func (c *Context) targetBuffer(target gl.Enum) *bufferObj {
	var id uint32
	switch target {
	case gl.ARRAY_BUFFER:
		id = c.arrayBuffer
	case gl.ELEMENT_ARRAY_BUFFER:
		id = c.boundElements()
	default:
		c.fail(gl.INVALID_ENUM)
		return nil
	}
	b := c.buffers[id]
	if b == nil {
		c.fail(gl.INVALID_OPERATION)
	}
	return b
}

func (c *Context) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	c.record("BufferData")
	if size < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	b := c.targetBuffer(target)
	if b == nil {
		return
	}
	if c.ShortAlloc {
		b.data = nil
		c.fail(gl.OUT_OF_MEMORY)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
}

func (c *Context) GetBufferParameteri(target, pname gl.Enum) int32 {
	c.record("GetBufferParameteri")
	b := c.targetBuffer(target)
	if b == nil {
		return 0
	}
	switch pname {
	case gl.BUFFER_SIZE:
		return int32(len(b.data))
	case gl.BUFFER_USAGE:
		return int32(b.usage)
	}
	c.fail(gl.INVALID_ENUM)
	return 0
}

// BufferBytes returns the contents of the buffer.
func (c *Context) BufferBytes(buf uint32) []byte {
	if b, ok := c.buffers[buf]; ok {
		return append([]byte(nil), b.data...)
	}
	return nil
}

func (c *Context) GenVertexArray() uint32 {
	c.record("GenVertexArray")
	id := c.gen(VertexArrays)
	if id == 0 {
		return 0
	}
	c.arrays[id] = &arrayObj{attribs: map[uint32]*Attrib{}}
	return id
}

func (c *Context) DeleteVertexArray(va uint32) {
	c.record("DeleteVertexArray")
	if _, ok := c.arrays[va]; !ok {
		return
	}
	delete(c.arrays, va)
	if c.vertexArray == va {
		c.vertexArray = 0
	}
}

func (c *Context) BindVertexArray(va uint32) {
	c.record("BindVertexArray")
	if va != 0 {
		if _, ok := c.arrays[va]; !ok {
			c.fail(gl.INVALID_OPERATION)
			return
		}
	}
	c.vertexArray = va
}

// attrib returns the attribute of the bound vertex array, creating it.
func (c *Context) attrib(index uint32) *Attrib {
	va := c.arrays[c.vertexArray]
	if va == nil {
		c.fail(gl.INVALID_OPERATION)
		return nil
	}
	if index >= maxAttribs {
		c.fail(gl.INVALID_VALUE)
		return nil
	}
	a := va.attribs[index]
	if a == nil {
		a = &Attrib{Size: 4, Type: gl.FLOAT}
		va.attribs[index] = a
	}
	return a
}

func (c *Context) pointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) *Attrib {
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		c.fail(gl.INVALID_VALUE)
		return nil
	}
	if c.arrayBuffer == 0 && offset != 0 {
		c.fail(gl.INVALID_OPERATION)
		return nil
	}
	a := c.attrib(index)
	if a == nil {
		return nil
	}
	a.Size, a.Type, a.Normalized = size, typ, normalized
	a.Stride, a.Offset, a.Buffer = stride, offset, c.arrayBuffer
	a.Integer, a.Double = false, false
	return a
}

func (c *Context) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) {
	c.record("VertexAttribPointer")
	c.pointer(index, size, typ, normalized, stride, offset)
}

func (c *Context) VertexAttribIPointer(index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	c.record("VertexAttribIPointer")
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE, gl.SHORT, gl.UNSIGNED_SHORT, gl.INT, gl.UNSIGNED_INT:
	default:
		c.fail(gl.INVALID_ENUM)
		return
	}
	if a := c.pointer(index, size, typ, false, stride, offset); a != nil {
		a.Integer = true
	}
}

func (c *Context) VertexAttribLPointer(index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	c.record("VertexAttribLPointer")
	if typ != gl.DOUBLE {
		c.fail(gl.INVALID_ENUM)
		return
	}
	if a := c.pointer(index, size, typ, false, stride, offset); a != nil {
		a.Double = true
	}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray")
	if a := c.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.record("DisableVertexAttribArray")
	if a := c.attrib(index); a != nil {
		a.Enabled = false
	}
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.record("VertexAttribDivisor")
	if a := c.attrib(index); a != nil {
		a.Divisor = divisor
	}
}

// Attrib returns the state of an attribute of the vertex array.
func (c *Context) Attrib(va, index uint32) (Attrib, bool) {
	v, ok := c.arrays[va]
	if !ok {
		return Attrib{}, false
	}
	a, ok := v.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *a, true
}

// ElementBuffer returns the element buffer recorded in the vertex array.
func (c *Context) ElementBuffer(va uint32) uint32 {
	if v, ok := c.arrays[va]; ok {
		return v.elements
	}
	return 0
}

func (c *Context) GenTexture() uint32 {
	c.record("GenTexture")
	id := c.gen(Textures)
	if id == 0 {
		return 0
	}
	c.textures[id] = &textureObj{TextureState{Params: map[gl.Enum]int32{}}}
	return id
}

func (c *Context) DeleteTexture(tex uint32) {
	c.record("DeleteTexture")
	if _, ok := c.textures[tex]; !ok {
		return
	}
	delete(c.textures, tex)
	for u, t := range c.texUnits {
		if t == tex {
			delete(c.texUnits, u)
		}
	}
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	c.record("ActiveTexture")
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+32 {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.activeUnit = uint32(unit - gl.TEXTURE0)
}

func (c *Context) BindTexture(target gl.Enum, tex uint32) {
	c.record("BindTexture")
	if target != gl.TEXTURE_2D {
		c.fail(gl.INVALID_ENUM)
		return
	}
	if tex != 0 {
		if _, ok := c.textures[tex]; !ok {
			c.fail(gl.INVALID_OPERATION)
			return
		}
	}
	c.texUnits[c.activeUnit] = tex
}

func (c *Context) boundTexture(target gl.Enum) *textureObj {
	if target != gl.TEXTURE_2D {
		c.fail(gl.INVALID_ENUM)
		return nil
	}
	t := c.textures[c.texUnits[c.activeUnit]]
	if t == nil {
		c.fail(gl.INVALID_OPERATION)
	}
	return t
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int32) {
	c.record("TexParameteri")
	if t := c.boundTexture(target); t != nil {
		t.Params[pname] = param
	}
}

func channels(format gl.Enum) int {
	switch format {
	case gl.RED:
		return 1
	case gl.RG:
		return 2
	case gl.RGB:
		return 3
	case gl.RGBA:
		return 4
	}
	return 0
}

func (c *Context) TexImage2D(target gl.Enum, level, internalFormat, width, height int32, format, typ gl.Enum, pix []byte) {
	c.record("TexImage2D")
	t := c.boundTexture(target)
	if t == nil {
		return
	}
	n := channels(format)
	if n == 0 || typ != gl.UNSIGNED_BYTE {
		c.fail(gl.INVALID_ENUM)
		return
	}
	if level < 0 || width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	if level != 0 {
		return
	}
	if c.FailTexImage {
		c.fail(gl.OUT_OF_MEMORY)
		return
	}
	row := int(width) * n
	align := int(c.unpack)
	stride := (row + align - 1) / align * align
	if pix != nil && len(pix) < stride*(int(height)-1)+row {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	t.Width, t.Height = width, height
	t.InternalFormat, t.Format = internalFormat, format
	t.Levels = 1
	t.Pix = make([]byte, row*int(height))
	if pix == nil {
		return
	}
	for y := 0; y < int(height); y++ {
		copy(t.Pix[y*row:(y+1)*row], pix[y*stride:])
	}
}

func (c *Context) GenerateMipmap(target gl.Enum) {
	c.record("GenerateMipmap")
	t := c.boundTexture(target)
	if t == nil {
		return
	}
	if t.Levels == 0 {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	t.Levels = bits.Len32(uint32(max(t.Width, t.Height)))
}

func (c *Context) PixelStorei(pname gl.Enum, param int32) {
	c.record("PixelStorei")
	switch param {
	case 1, 2, 4, 8:
	default:
		c.fail(gl.INVALID_VALUE)
		return
	}
	switch pname {
	case gl.UNPACK_ALIGNMENT:
		c.unpack = param
	case gl.PACK_ALIGNMENT:
		c.pack = param
	default:
		c.fail(gl.INVALID_ENUM)
	}
}

// Texture returns the state of the texture.
func (c *Context) Texture(tex uint32) (TextureState, bool) {
	t, ok := c.textures[tex]
	if !ok {
		return TextureState{}, false
	}
	return t.TextureState, true
}

// Texel returns the channels of the level 0 texel at x, y,
// where y = 0 is the first row uploaded.
func (c *Context) Texel(tex uint32, x, y int) []byte {
	t, ok := c.textures[tex]
	if !ok || x < 0 || y < 0 || x >= int(t.Width) || y >= int(t.Height) {
		return nil
	}
	n := channels(t.Format)
	i := (y*int(t.Width) + x) * n
	return append([]byte(nil), t.Pix[i:i+n]...)
}

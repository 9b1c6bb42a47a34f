// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcore

import (
	"unsafe"

	api "cogentcore.org/glt/gl"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func (c *Context) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (c *Context) DeleteBuffer(buf uint32) {
	if buf != 0 {
		gl.DeleteBuffers(1, &buf)
	}
}

func (c *Context) BindBuffer(target api.Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (c *Context) BufferData(target api.Enum, size int, data []byte, usage api.Enum) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), size, p, uint32(usage))
}

func (c *Context) GetBufferParameteri(target, pname api.Enum) int32 {
	var v int32
	gl.GetBufferParameteriv(uint32(target), uint32(pname), &v)
	return v
}

func (c *Context) GenVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (c *Context) DeleteVertexArray(va uint32) {
	if va != 0 {
		gl.DeleteVertexArrays(1, &va)
	}
}

func (c *Context) BindVertexArray(va uint32) { gl.BindVertexArray(va) }

func (c *Context) VertexAttribPointer(index uint32, size int32, typ api.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, stride, gl.PtrOffset(offset))
}

func (c *Context) VertexAttribIPointer(index uint32, size int32, typ api.Enum, stride int32, offset int) {
	gl.VertexAttribIPointer(index, size, uint32(typ), stride, gl.PtrOffset(offset))
}

func (c *Context) VertexAttribLPointer(index uint32, size int32, typ api.Enum, stride int32, offset int) {
	gl.VertexAttribLPointer(index, size, uint32(typ), stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (c *Context) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (c *Context) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (c *Context) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (c *Context) DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

func (c *Context) ActiveTexture(unit api.Enum) { gl.ActiveTexture(uint32(unit)) }

func (c *Context) BindTexture(target api.Enum, tex uint32) { gl.BindTexture(uint32(target), tex) }

func (c *Context) TexParameteri(target, pname api.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (c *Context) TexImage2D(target api.Enum, level, internalFormat, width, height int32, format, typ api.Enum, pix []byte) {
	var p unsafe.Pointer
	if len(pix) > 0 {
		p = gl.Ptr(pix)
	}
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, 0, uint32(format), uint32(typ), p)
}

func (c *Context) GenerateMipmap(target api.Enum) { gl.GenerateMipmap(uint32(target)) }

func (c *Context) PixelStorei(pname api.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

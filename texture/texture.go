// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture provides the Texture resource, a 2D GL texture with a
// full mipmap chain, built from an image file or from pixels in memory.
package texture

import (
	"image"
	"log/slog"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
)

// Texture owns a GL 2D texture object. A nil *Texture is valid and every
// method on it does nothing.
type Texture struct {
	ctx    gl.Context
	handle uint32
	width  int
	height int
}

// Formats returns the internal and transfer formats for 8 bit texels of
// the given number of channels, and false if channels is not 1 to 4.
func Formats(channels int) (internal, format gl.Enum, ok bool) {
	switch channels {
	case 1:
		return gl.R8, gl.RED, true
	case 2:
		return gl.RG8, gl.RG, true
	case 3:
		return gl.RGB8, gl.RGB, true
	case 4:
		return gl.RGBA8, gl.RGBA, true
	}
	return 0, 0, false
}

// Load decodes the image file at path with a [FileDecoder], flipped
// vertically, and uploads it.
func Load(ctx gl.Context, path string) (*Texture, error) {
	return LoadWith(ctx, FileDecoder{}, path)
}

// LoadWith is [Load] with the given decoder.
func LoadWith(ctx gl.Context, dec Decoder, path string) (*Texture, error) {
	if dec == nil {
		return nil, errors.Errorf("texture: no decoder: %w", errors.ErrInvalidArgument)
	}
	im, err := dec.Decode(path, true)
	if err != nil {
		return nil, errors.Errorf("texture: load %s: %w", path, err)
	}
	if im == nil {
		return nil, errors.Errorf("texture: load %s: decoder returned no image: %w", path, errors.ErrInvalidArgument)
	}
	return Upload(ctx, im.Width, im.Height, im.Channels, im.Pix)
}

// FromImage uploads an image that is already in memory, flipped vertically
// like [Load] does.
func FromImage(ctx gl.Context, src image.Image) (*Texture, error) {
	if src == nil {
		return nil, errors.Errorf("texture: nil image: %w", errors.ErrInvalidArgument)
	}
	im := NewImage(src, true)
	return Upload(ctx, im.Width, im.Height, im.Channels, im.Pix)
}

// Upload creates a texture from width*height texels of channels bytes,
// rows first and tightly packed. It uses REPEAT wrapping, trilinear
// minification and linear magnification, and generates the mipmaps.
//
// The unpack alignment is set to 1 for the upload and then restored.
// The TEXTURE_2D binding of the active unit is cleared on return.
func Upload(ctx gl.Context, width, height, channels int, pix []byte) (*Texture, error) {
	if ctx == nil {
		return nil, errors.Errorf("texture: no context: %w", errors.ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("texture: invalid size %dx%d: %w", width, height, errors.ErrInvalidArgument)
	}
	internal, format, ok := Formats(channels)
	if !ok {
		return nil, errors.Errorf("texture: unsupported channel count %d: %w", channels, errors.ErrInvalidArgument)
	}
	if len(pix) < width*height*channels {
		return nil, errors.Errorf("texture: %d bytes of pixels for %dx%dx%d: %w", len(pix), width, height, channels, errors.ErrInvalidArgument)
	}
	handle := ctx.GenTexture()
	if handle == 0 {
		return nil, errors.Errorf("texture: GenTextures returned 0: %w", errors.ErrAllocation)
	}
	if errs := gl.DrainErrors(ctx); len(errs) > 0 {
		slog.Warn("texture: discarding earlier GL errors", "errors", errs)
	}

	ctx.BindTexture(gl.TEXTURE_2D, handle)
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.REPEAT))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(gl.REPEAT))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.LINEAR_MIPMAP_LINEAR))
	ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(gl.LINEAR))

	prev := gl.UnpackAlignment(ctx)
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	ctx.TexImage2D(gl.TEXTURE_2D, 0, int32(internal), int32(width), int32(height), format, gl.UNSIGNED_BYTE, pix[:width*height*channels])
	errs := gl.DrainErrors(ctx)
	if len(errs) == 0 {
		ctx.GenerateMipmap(gl.TEXTURE_2D)
	}
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, prev)
	ctx.BindTexture(gl.TEXTURE_2D, 0)

	if len(errs) > 0 {
		ctx.DeleteTexture(handle)
		names := make([]string, len(errs))
		for i, e := range errs {
			names[i] = gl.ErrorString(e)
		}
		return nil, errors.Errorf("texture: upload of %dx%d failed %v: %w", width, height, names, errors.ErrAllocation)
	}
	return &Texture{ctx: ctx, handle: handle, width: width, height: height}, nil
}

// Valid reports whether the texture holds a texture object.
func (tx *Texture) Valid() bool {
	return tx != nil && tx.handle != 0
}

// Handle returns the GL texture object, or 0.
func (tx *Texture) Handle() uint32 {
	if tx == nil {
		return 0
	}
	return tx.handle
}

// Width returns the width of the uploaded image, or 0.
func (tx *Texture) Width() int {
	if tx == nil {
		return 0
	}
	return tx.width
}

// Height returns the height of the uploaded image, or 0.
func (tx *Texture) Height() int {
	if tx == nil {
		return 0
	}
	return tx.height
}

// Bind makes unit the active texture unit and binds the texture to it,
// for a sampler uniform set to unit. The active unit stays changed.
func (tx *Texture) Bind(unit int) {
	if !tx.Valid() || unit < 0 {
		return
	}
	tx.ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	tx.ctx.BindTexture(gl.TEXTURE_2D, tx.handle)
}

// Unbind clears the TEXTURE_2D binding of the active unit.
func (tx *Texture) Unbind() {
	if !tx.Valid() {
		return
	}
	tx.ctx.BindTexture(gl.TEXTURE_2D, 0)
}

// Destroy deletes the texture. It is safe to call more than once.
func (tx *Texture) Destroy() {
	if !tx.Valid() {
		return
	}
	tx.ctx.DeleteTexture(tx.handle)
	tx.handle = 0
	tx.width, tx.height = 0, 0
}

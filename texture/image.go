// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"io/fs"

	"cogentcore.org/glt/base/iox/imagex"
	"github.com/disintegration/imaging"
)

// Image is decoded pixel data: Height rows of Width texels, each of
// Channels bytes, with no padding between rows.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns an image file into pixels. When flipV is true the rows are
// returned bottom first, which is the order GL expects texture rows in.
type Decoder interface {
	Decode(path string, flipV bool) (*Image, error)
}

// FileDecoder decodes png, jpeg, gif, tiff, bmp and webp files, detecting
// the format from the content. Gray images decode to 1 channel, opaque
// images to 3, and all others to 4.
type FileDecoder struct {
	// FS, if set, is the filesystem paths are opened in,
	// instead of the operating system's.
	FS fs.FS
}

// Decode implements [Decoder].
func (d FileDecoder) Decode(path string, flipV bool) (*Image, error) {
	var im image.Image
	var err error
	if d.FS != nil {
		im, _, err = imagex.OpenFS(d.FS, path)
	} else {
		im, _, err = imagex.Open(path)
	}
	if err != nil {
		return nil, err
	}
	return NewImage(im, flipV), nil
}

// NewImage converts src into tightly packed 8 bit pixels, optionally
// flipping it vertically.
func NewImage(src image.Image, flipV bool) *Image {
	var nrgba *image.NRGBA
	if flipV {
		nrgba = imaging.FlipV(src)
	} else {
		nrgba = imaging.Clone(src)
	}
	ch := 4
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		ch = 1
	default:
		if nrgba.Opaque() {
			ch = 3
		}
	}
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	pix := make([]byte, 0, w*h*ch)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4:x*4+ch]...)
		}
	}
	return &Image{Pix: pix, Width: w, Height: h, Channels: ch}
}

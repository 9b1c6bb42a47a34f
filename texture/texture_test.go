// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/base/iox/imagex"
	"cogentcore.org/glt/gl"
	"cogentcore.org/glt/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRGB3x1(t *testing.T) {
	c := gltest.New()
	pix := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255}
	tx, err := Upload(c, 3, 1, 3, pix)
	require.NoError(t, err)
	assert.NotZero(t, tx.Handle())
	assert.Equal(t, 3, tx.Width())
	assert.Equal(t, 1, tx.Height())
	for x := 0; x < 3; x++ {
		assert.Equal(t, pix[x*3:x*3+3], c.Texel(tx.Handle(), x, 0), "texel %d", x)
	}
}

func TestUploadState(t *testing.T) {
	c := gltest.New()
	c.PixelStorei(gl.UNPACK_ALIGNMENT, 8)
	tx, err := Upload(c, 5, 3, 1, make([]byte, 15))
	require.NoError(t, err)

	assert.EqualValues(t, 8, gl.UnpackAlignment(c))
	assert.EqualValues(t, 0, gl.BoundTexture2D(c))
	st, ok := c.Texture(tx.Handle())
	require.True(t, ok)
	assert.EqualValues(t, gl.R8, st.InternalFormat)
	assert.Equal(t, gl.RED, st.Format)
	assert.Equal(t, 3, st.Levels)
	assert.Equal(t, map[gl.Enum]int32{
		gl.TEXTURE_WRAP_S:     int32(gl.REPEAT),
		gl.TEXTURE_WRAP_T:     int32(gl.REPEAT),
		gl.TEXTURE_MIN_FILTER: int32(gl.LINEAR_MIPMAP_LINEAR),
		gl.TEXTURE_MAG_FILTER: int32(gl.LINEAR),
	}, st.Params)
	assert.Empty(t, gl.DrainErrors(c))
}

func TestUploadInvalid(t *testing.T) {
	c := gltest.New()
	for _, tc := range []struct {
		w, h, ch int
		pix      []byte
	}{
		{0, 1, 3, make([]byte, 3)},
		{1, -1, 3, make([]byte, 3)},
		{1, 1, 5, make([]byte, 5)},
		{1, 1, 0, nil},
		{2, 2, 4, make([]byte, 15)},
	} {
		tx, err := Upload(c, tc.w, tc.h, tc.ch, tc.pix)
		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	}
	assert.Empty(t, c.Calls)
}

func TestUploadFailure(t *testing.T) {
	c := gltest.New()
	c.FailCreate[gltest.Textures] = true
	_, err := Upload(c, 1, 1, 4, make([]byte, 4))
	assert.ErrorIs(t, err, errors.ErrAllocation)

	c.FailCreate[gltest.Textures] = false
	c.FailTexImage = true
	tx, err := Upload(c, 1, 1, 4, make([]byte, 4))
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, errors.ErrAllocation)
	assert.Contains(t, err.Error(), "OUT_OF_MEMORY")
	assert.Equal(t, 0, c.Live(gltest.Textures))
	assert.EqualValues(t, 4, gl.UnpackAlignment(c))
	assert.EqualValues(t, 0, gl.BoundTexture2D(c))
}

func TestFormats(t *testing.T) {
	for ch, want := range map[int][2]gl.Enum{
		1: {gl.R8, gl.RED},
		2: {gl.RG8, gl.RG},
		3: {gl.RGB8, gl.RGB},
		4: {gl.RGBA8, gl.RGBA},
	} {
		in, f, ok := Formats(ch)
		assert.True(t, ok)
		assert.Equal(t, want, [2]gl.Enum{in, f})
	}
	_, _, ok := Formats(0)
	assert.False(t, ok)
}

// column returns a 1x2 image, red on top and blue below.
func column() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	im.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	im.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	return im
}

func TestLoadFlips(t *testing.T) {
	c := gltest.New()
	path := filepath.Join(t.TempDir(), "col.png")
	require.NoError(t, imagex.Save(column(), path))

	tx, err := Load(c, path)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.Width())
	assert.Equal(t, 2, tx.Height())
	assert.Equal(t, []byte{0, 0, 255}, c.Texel(tx.Handle(), 0, 0))
	assert.Equal(t, []byte{255, 0, 0}, c.Texel(tx.Handle(), 0, 1))
}

func TestLoadErrors(t *testing.T) {
	c := gltest.New()
	dir := t.TempDir()
	_, err := Load(c, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, errors.ErrIO)

	txt := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(txt, []byte("not an image at all"), 0o644))
	tx, err := Load(c, txt)
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, 0, c.Live(gltest.Textures))

	_, err = LoadWith(c, nil, txt)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

type fakeDecoder struct {
	flip bool
}

func (d *fakeDecoder) Decode(path string, flipV bool) (*Image, error) {
	d.flip = flipV
	return &Image{Pix: []byte{1, 2, 3, 4, 5, 6}, Width: 1, Height: 3, Channels: 2}, nil
}

func TestLoadWith(t *testing.T) {
	c := gltest.New()
	dec := &fakeDecoder{}
	tx, err := LoadWith(c, dec, "any")
	require.NoError(t, err)
	assert.True(t, dec.flip)
	assert.Equal(t, []byte{5, 6}, c.Texel(tx.Handle(), 0, 2))
	st, _ := c.Texture(tx.Handle())
	assert.Equal(t, gl.RG, st.Format)
}

type nilDecoder struct{}

func (nilDecoder) Decode(string, bool) (*Image, error) { return nil, nil }

func TestLoadWithNoImage(t *testing.T) {
	c := gltest.New()
	tx, err := LoadWith(c, nilDecoder{}, "any")
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, 0, c.Live(gltest.Textures))
}

func TestNewImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{200})
	im := NewImage(gray, false)
	assert.Equal(t, &Image{Pix: []byte{0, 200}, Width: 2, Height: 1, Channels: 1}, im)

	rgba := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 128})
	im = NewImage(rgba, true)
	assert.Equal(t, []byte{10, 20, 30, 128}, im.Pix)
	assert.Equal(t, 4, im.Channels)

	im = NewImage(column(), false)
	assert.Equal(t, 3, im.Channels)
	assert.Equal(t, []byte{255, 0, 0, 0, 0, 255}, im.Pix)
}

func TestFileDecoderFS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "col.bmp")
	require.NoError(t, imagex.Save(column(), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	dec := FileDecoder{FS: fstest.MapFS{"col.bmp": {Data: data}}}
	im, err := dec.Decode("col.bmp", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0}, im.Pix)
}

func TestFromImageAndBind(t *testing.T) {
	c := gltest.New()
	tx, err := FromImage(c, column())
	require.NoError(t, err)
	tx.Bind(2)
	assert.Equal(t, tx.Handle(), gl.BoundTexture2D(c))
	assert.EqualValues(t, gl.TEXTURE0+2, c.GetInteger(gl.ACTIVE_TEXTURE))
	tx.Unbind()
	assert.EqualValues(t, 0, gl.BoundTexture2D(c))

	tx.Destroy()
	tx.Destroy()
	assert.Zero(t, tx.Width())
	assert.Equal(t, 0, c.Live(gltest.Textures))

	_, err = FromImage(c, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	var nt *Texture
	assert.NotPanics(t, func() {
		nt.Destroy()
		nt.Bind(0)
		nt.Unbind()
	})
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/glt/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(im, im.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	im.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	im.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 255})
	return im
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = ExtToFormat("tif")
	require.NoError(t, err)
	assert.Equal(t, TIFF, f)
	_, err = ExtToFormat(".psd")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = ExtToFormat("")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.bmp", "a.tiff"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(testImage(), path))
		im, f, err := Open(path)
		require.NoError(t, err, name)
		want, _ := ExtToFormat(filepath.Ext(name))
		assert.Equal(t, want, f)
		r, g, b, a := im.At(1, 1).RGBA()
		assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a}, name)
	}
}

func TestSniff(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testImage(), &buf, PNG))
	f, err := Sniff(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	_, err = Sniff([]byte("plain text, not an image"))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = Sniff(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = Sniff([]byte("%PDF-1.4\n"))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, errors.ErrIO)

	var buf bytes.Buffer
	require.NoError(t, Write(testImage(), &buf, PNG))
	_, f, err := Decode(buf.Bytes()[:40])
	assert.Equal(t, PNG, f)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	assert.ErrorIs(t, Write(testImage(), &buf, WebP), errors.ErrInvalidArgument)
}

func TestOpenFS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testImage(), &buf, GIF))
	fsys := fstest.MapFS{"img/a.gif": {Data: buf.Bytes()}}
	im, f, err := OpenFS(fsys, "img/a.gif")
	require.NoError(t, err)
	assert.Equal(t, GIF, f)
	assert.Equal(t, 2, im.Bounds().Dx())

	im, f, err = Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, GIF, f)
	assert.NotNil(t, im)

	_, _, err = OpenFS(fsys, "img/b.gif")
	assert.ErrorIs(t, err, errors.ErrIO)
}

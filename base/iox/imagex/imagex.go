// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads and writes image files in the formats
// that textures can be loaded from.
package imagex

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glt/base/errors"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encoding / decoding formats
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

func (f Formats) String() string {
	switch f {
	case None:
		return "None"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.Errorf("imagex: extension is empty: %w", errors.ErrInvalidArgument)
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, errors.Errorf("imagex: extension %q not recognized: %w", ext, errors.ErrInvalidArgument)
}

// Sniff returns the format of encoded image data from its leading bytes.
// Data that is not a supported image is an [errors.ErrInvalidArgument].
func Sniff(data []byte) (Formats, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return None, errors.Errorf("imagex: unrecognized content: %w", errors.ErrInvalidArgument)
	}
	if kind.MIME.Type != "image" {
		return None, errors.Errorf("imagex: content is %s, not an image: %w", kind.MIME.Value, errors.ErrInvalidArgument)
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return None, errors.Errorf("imagex: unsupported image type %s: %w", kind.MIME.Value, errors.ErrInvalidArgument)
	}
	return f, nil
}

// Open opens an image from the given filename.
// The format is inferred from the content,
// and is returned using the Formats enum.
// png, jpeg, gif, tiff, bmp, and webp are supported.
// A file that cannot be read is an [errors.ErrIO].
func Open(filename string) (image.Image, Formats, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, None, errors.Errorf("imagex: %w: %w", errors.ErrIO, err)
	}
	return Decode(data)
}

// OpenFS opens an image from the given filename
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, None, errors.Errorf("imagex: %w: %w", errors.ErrIO, err)
	}
	return Decode(data)
}

// Read reads an image from the given reader.
func Read(r io.Reader) (image.Image, Formats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, None, errors.Errorf("imagex: %w: %w", errors.ErrIO, err)
	}
	return Decode(data)
}

// Decode decodes encoded image data, checking first that its content
// is a supported image. Corrupt data is an [errors.ErrInvalidArgument].
func Decode(data []byte) (image.Image, Formats, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, f, errors.Errorf("imagex: decoding %s: %w: %w", f, errors.ErrInvalidArgument, err)
	}
	return im, f, nil
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return errors.Errorf("imagex: %w: %w", errors.ErrIO, err)
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return errors.Errorf("imagex: cannot write format %v: %w", f, errors.ErrInvalidArgument)
	}
}

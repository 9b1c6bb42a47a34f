// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// CurrentProgram returns the program bound by the last UseProgram.
func CurrentProgram(ctx Context) uint32 {
	return uint32(ctx.GetInteger(CURRENT_PROGRAM))
}

// BoundArrayBuffer returns the buffer bound to ARRAY_BUFFER.
func BoundArrayBuffer(ctx Context) uint32 {
	return uint32(ctx.GetInteger(ARRAY_BUFFER_BINDING))
}

// BoundElementBuffer returns the buffer bound to ELEMENT_ARRAY_BUFFER
// in the current vertex array.
func BoundElementBuffer(ctx Context) uint32 {
	return uint32(ctx.GetInteger(ELEMENT_ARRAY_BUFFER_BINDING))
}

// BoundVertexArray returns the currently bound vertex array.
func BoundVertexArray(ctx Context) uint32 {
	return uint32(ctx.GetInteger(VERTEX_ARRAY_BINDING))
}

// BoundTexture2D returns the texture bound to TEXTURE_2D on the active unit.
func BoundTexture2D(ctx Context) uint32 {
	return uint32(ctx.GetInteger(TEXTURE_BINDING_2D))
}

// UnpackAlignment returns the current row alignment for pixel uploads.
func UnpackAlignment(ctx Context) int32 {
	return ctx.GetInteger(UNPACK_ALIGNMENT)
}

// Version returns the major and minor version of the context.
func Version(ctx Context) (major, minor int) {
	return int(ctx.GetInteger(MAJOR_VERSION)), int(ctx.GetInteger(MINOR_VERSION))
}

// AtLeast reports whether the context version is at least major.minor.
func AtLeast(ctx Context, major, minor int) bool {
	ma, mi := Version(ctx)
	return ma > major || (ma == major && mi >= minor)
}

// HasExtension reports whether the context advertises the named extension.
func HasExtension(ctx Context, name string) bool {
	if name == "" {
		return false
	}
	n := ctx.GetInteger(NUM_EXTENSIONS)
	for i := int32(0); i < n; i++ {
		if ctx.GetStringi(EXTENSIONS, uint32(i)) == name {
			return true
		}
	}
	return false
}

// DrainErrors clears the error queue of the context and returns
// the errors it held, oldest first.
func DrainErrors(ctx Context) []Enum {
	var errs []Enum
	// bounded: a lost context can report errors forever
	for range 32 {
		e := ctx.GetError()
		if e == NO_ERROR {
			break
		}
		errs = append(errs, e)
	}
	return errs
}

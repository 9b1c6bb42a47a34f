// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"io/fs"
	"log/slog"
	"strings"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
)

// Program is a linked shader program. It exclusively owns its GL program
// object, which is released by [Program.Destroy]. A nil *Program is valid
// and every method on it does nothing.
type Program struct {
	ctx    gl.Context
	handle uint32

	// locs caches uniform locations by name, including absent ones as -1.
	locs map[string]int32
}

// Link links the given vertex and fragment stages, and optionally one
// geometry stage, into a new Program. All handles must be non-zero.
//
// The stages are detached after linking but never deleted: they belong to
// the caller, who should delete them whether or not Link succeeds. On
// failure no program object is left behind, and a link failure logs the
// driver diagnostic and includes it in the returned error.
func Link(ctx gl.Context, vs, fs uint32, gs ...uint32) (*Program, error) {
	if ctx == nil {
		return nil, errors.Errorf("shader: link: no context: %w", errors.ErrInvalidArgument)
	}
	if len(gs) > 1 {
		return nil, errors.Errorf("shader: link: %d geometry stages given, at most 1 allowed: %w", len(gs), errors.ErrInvalidArgument)
	}
	stages := append([]uint32{vs, fs}, gs...)
	for i, s := range stages {
		if s == 0 {
			return nil, errors.Errorf("shader: link: %s handle is 0: %w", Types(i), errors.ErrInvalidArgument)
		}
	}
	handle := ctx.CreateProgram()
	if handle == 0 {
		return nil, errors.Errorf("shader: link: CreateProgram returned 0: %w", errors.ErrAllocation)
	}
	for _, s := range stages {
		ctx.AttachShader(handle, s)
	}
	ctx.LinkProgram(handle)
	for _, s := range stages {
		ctx.DetachShader(handle, s)
	}
	if gl.Enum(ctx.GetProgrami(handle, gl.LINK_STATUS)) == gl.FALSE {
		lg := strings.TrimSpace(ctx.GetProgramInfoLog(handle))
		ctx.DeleteProgram(handle)
		slog.Error("shader: link failed", "log", lg)
		return nil, errors.Errorf("shader: %w:\n%s", errors.ErrLink, lg)
	}
	return &Program{ctx: ctx, handle: handle, locs: map[string]int32{}}, nil
}

// stageTypes returns the stage types for a vertex and fragment program
// with the given number of geometry stages.
func stageTypes(geometry int) ([]Types, error) {
	switch geometry {
	case 0:
		return []Types{VertexShader, FragmentShader}, nil
	case 1:
		return []Types{VertexShader, FragmentShader, GeometryShader}, nil
	}
	return nil, errors.Errorf("shader: %d geometry stages given, at most 1 allowed: %w", geometry, errors.ErrInvalidArgument)
}

// build compiles one stage of each type with compile and links them.
// Every stage that compiled is deleted before build returns, whether or
// not a later stage or the link failed.
func build(ctx gl.Context, types []Types, compile func(i int, typ Types) (uint32, error)) (*Program, error) {
	var handles []uint32
	defer func() {
		for _, h := range handles {
			ctx.DeleteShader(h)
		}
	}()
	for i, typ := range types {
		h, err := compile(i, typ)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return Link(ctx, handles[0], handles[1], handles[2:]...)
}

// NewProgram compiles and links a program from vertex and fragment
// source, and optionally geometry source.
func NewProgram(ctx gl.Context, vsrc, fsrc string, gsrc ...string) (*Program, error) {
	types, err := stageTypes(len(gsrc))
	if err != nil {
		return nil, err
	}
	srcs := append([]string{vsrc, fsrc}, gsrc...)
	return build(ctx, types, func(i int, typ Types) (uint32, error) {
		return CompileStage(ctx, typ, srcs[i])
	})
}

// NewProgramFromFiles is [NewProgram] with the sources read from files.
func NewProgramFromFiles(ctx gl.Context, vpath, fpath string, gpath ...string) (*Program, error) {
	types, err := stageTypes(len(gpath))
	if err != nil {
		return nil, err
	}
	paths := append([]string{vpath, fpath}, gpath...)
	return build(ctx, types, func(i int, typ Types) (uint32, error) {
		return CompileStageFile(ctx, typ, paths[i])
	})
}

// NewProgramFS is [NewProgram] with the sources read from fsys,
// for example an [embed.FS].
func NewProgramFS(ctx gl.Context, fsys fs.FS, vpath, fpath string, gpath ...string) (*Program, error) {
	types, err := stageTypes(len(gpath))
	if err != nil {
		return nil, err
	}
	paths := append([]string{vpath, fpath}, gpath...)
	return build(ctx, types, func(i int, typ Types) (uint32, error) {
		return CompileStageFS(ctx, fsys, typ, paths[i])
	})
}

// Handle returns the GL program object, or 0.
func (pr *Program) Handle() uint32 {
	if pr == nil {
		return 0
	}
	return pr.handle
}

// Valid reports whether the program holds a linked program object.
func (pr *Program) Valid() bool {
	return pr != nil && pr.handle != 0
}

// Use makes this the current program.
func (pr *Program) Use() {
	if !pr.Valid() {
		return
	}
	pr.ctx.UseProgram(pr.handle)
}

// Destroy deletes the program object. It is safe to call more than once.
func (pr *Program) Destroy() {
	if !pr.Valid() {
		return
	}
	pr.ctx.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.locs = nil
}

// Location returns the location of the named uniform, or -1 if the
// program has no active uniform of that name. Locations are cached.
func (pr *Program) Location(name string) int32 {
	if !pr.Valid() {
		return -1
	}
	if loc, ok := pr.locs[name]; ok {
		return loc
	}
	loc := pr.ctx.GetUniformLocation(pr.handle, name)
	if loc < 0 {
		loc = -1
	}
	pr.locs[name] = loc
	return loc
}

// ResetLocations clears the uniform location cache.
func (pr *Program) ResetLocations() {
	if !pr.Valid() {
		return
	}
	clear(pr.locs)
}

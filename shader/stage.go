// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
)

// CompileStage compiles a single stage of the given type from source.
// On failure the diagnostic log is written to the default logger and
// included in the returned error, and no shader object is left behind.
// The caller owns the returned handle and must delete it once it has
// been linked.
func CompileStage(ctx gl.Context, typ Types, src string) (uint32, error) {
	if ctx == nil {
		return 0, errors.Errorf("shader: compile %s: no context: %w", typ, errors.ErrInvalidArgument)
	}
	kind, ok := typ.GLType()
	if !ok {
		return 0, errors.Errorf("shader: compile: unknown stage type %v: %w", typ, errors.ErrInvalidArgument)
	}
	if strings.TrimSpace(src) == "" {
		return 0, errors.Errorf("shader: compile %s: empty source: %w", typ, errors.ErrInvalidArgument)
	}
	handle := ctx.CreateShader(kind)
	if handle == 0 {
		return 0, errors.Errorf("shader: compile %s: CreateShader returned 0: %w", typ, errors.ErrAllocation)
	}
	ctx.ShaderSource(handle, src)
	ctx.CompileShader(handle)
	if gl.Enum(ctx.GetShaderi(handle, gl.COMPILE_STATUS)) == gl.FALSE {
		lg := strings.TrimSpace(ctx.GetShaderInfoLog(handle))
		ctx.DeleteShader(handle)
		slog.Error("shader: compile failed", "stage", typ, "log", lg)
		return 0, errors.Errorf("shader: compile %s: %w:\n%s", typ, errors.ErrCompile, lg)
	}
	return handle, nil
}

// CompileStageFile compiles a stage from the contents of the named file.
func CompileStageFile(ctx gl.Context, typ Types, path string) (uint32, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Errorf("shader: %w: %w", errors.ErrIO, err)
	}
	return CompileStage(ctx, typ, string(src))
}

// CompileStageFS compiles a stage from the contents of the named file in fsys.
func CompileStageFS(ctx gl.Context, fsys fs.FS, typ Types, path string) (uint32, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return 0, errors.Errorf("shader: %w: %w", errors.ErrIO, err)
	}
	return CompileStage(ctx, typ, string(src))
}

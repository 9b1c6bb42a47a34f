// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"log/slog"
	"sync"

	"cogentcore.org/glt/gl"
)

var (
	probeOnce sync.Once
	direct    bool
)

// DirectUniforms reports whether uniforms can be set on a program without
// binding it, which needs GL 4.1 or GL_ARB_separate_shader_objects.
//
// The answer is computed from ctx on the first call and returned by every
// later call, whatever context is passed. A context created afterwards with
// different capabilities is not probed again, and there is no way to reset
// the answer short of restarting the process. It must first be called
// before any concurrent use of the package.
//
// With the glcore backend the bound path is only taken when a context
// older than 4.1 was requested from a 4.1 or later driver: glcore loads
// the 4.1 core function table, so glcore.Init fails outright on a
// driver that cannot provide it.
func DirectUniforms(ctx gl.Context) bool {
	probeOnce.Do(func() {
		direct = gl.AtLeast(ctx, 4, 1) || gl.HasExtension(ctx, "GL_ARB_separate_shader_objects")
		slog.Debug("shader: uniform path selected", "direct", direct)
	})
	return direct
}

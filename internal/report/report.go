// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report implements the checks of the gltinfo command against
// a GL context.
package report

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
	"cogentcore.org/glt/shader"
	"github.com/muesli/termenv"
)

// Options are the checks to run.
type Options struct {

	// a semver constraint the GLSL version must satisfy, like ">= 4.10"
	RequireGLSL string

	// vertex and fragment shader files that must compile and link together
	Vert, Frag string
}

// Run writes the context description to w, styled for the terminal w is,
// then runs the checks in opts. It returns an error if any check fails.
func Run(ctx gl.Context, opts Options, w io.Writer) error {
	out := termenv.NewOutput(w)
	ok := func(s string) string { return out.String(s).Foreground(out.Color("2")).String() }
	bad := func(s string) string { return out.String(s).Foreground(out.Color("1")).Bold().String() }

	info := gl.QueryInfo(ctx)
	lines := strings.SplitAfter(info.String(), "\n")
	fmt.Fprint(w, out.String(lines[0]).Bold().String())
	fmt.Fprint(w, strings.Join(lines[1:], ""))

	if shader.DirectUniforms(ctx) {
		fmt.Fprintln(w, "Uniforms    :", ok("direct (ProgramUniform)"))
	} else {
		fmt.Fprintln(w, "Uniforms    : bound (UseProgram + Uniform)")
	}

	var errs []error
	if opts.RequireGLSL != "" {
		sat, err := info.SupportsGLSL(opts.RequireGLSL)
		switch {
		case err != nil:
			fmt.Fprintln(w, "GLSL check  :", bad("error"), err)
			errs = append(errs, err)
		case sat:
			fmt.Fprintln(w, "GLSL check  :", ok("ok"), opts.RequireGLSL)
		default:
			fmt.Fprintln(w, "GLSL check  :", bad("FAILED"), opts.RequireGLSL)
			errs = append(errs, errors.Errorf("GLSL %s does not satisfy %q", info.GLSL, opts.RequireGLSL))
		}
	}

	if opts.Vert != "" || opts.Frag != "" {
		if opts.Vert == "" || opts.Frag == "" {
			err := errors.Errorf("both a vertex and a fragment shader are needed: %w", errors.ErrInvalidArgument)
			fmt.Fprintln(w, "Shaders     :", bad("FAILED"), err)
			errs = append(errs, err)
		} else {
			prog, err := shader.NewProgramFromFiles(ctx, opts.Vert, opts.Frag)
			if err != nil {
				fmt.Fprintln(w, "Shaders     :", bad("FAILED"), err)
				errs = append(errs, err)
			} else {
				fmt.Fprintln(w, "Shaders     :", ok("ok"), opts.Vert, opts.Frag)
				prog.Destroy()
			}
		}
	}
	return errors.Join(errs...)
}

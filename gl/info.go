// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Info describes the driver behind a context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string

	Major int
	Minor int

	// Profile is "Core", "Compatibility" or "Unknown".
	Profile string

	Debug             bool
	ForwardCompatible bool
}

// QueryInfo reads the driver description from the context.
func QueryInfo(ctx Context) Info {
	in := Info{
		Vendor:   ctx.GetString(VENDOR),
		Renderer: ctx.GetString(RENDERER),
		Version:  ctx.GetString(VERSION),
		GLSL:     ctx.GetString(SHADING_LANGUAGE_VERSION),
	}
	in.Major, in.Minor = Version(ctx)
	mask := Enum(ctx.GetInteger(CONTEXT_PROFILE_MASK))
	switch {
	case mask&CONTEXT_CORE_PROFILE_BIT != 0:
		in.Profile = "Core"
	case mask&CONTEXT_COMPATIBILITY_PROFILE_BIT != 0:
		in.Profile = "Compatibility"
	default:
		in.Profile = "Unknown"
	}
	flags := Enum(ctx.GetInteger(CONTEXT_FLAGS))
	in.Debug = flags&CONTEXT_FLAG_DEBUG_BIT != 0
	in.ForwardCompatible = flags&CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT != 0
	return in
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// String returns a multi-line report of the info.
func (in Info) String() string {
	var b strings.Builder
	b.WriteString("==== OpenGL Info ====\n")
	fmt.Fprintf(&b, "Vendor      : %s\n", orNA(in.Vendor))
	fmt.Fprintf(&b, "Renderer    : %s\n", orNA(in.Renderer))
	fmt.Fprintf(&b, "Version     : %s (parsed %d.%d, %s profile", orNA(in.Version), in.Major, in.Minor, in.Profile)
	if in.Debug {
		b.WriteString(", debug")
	}
	if in.ForwardCompatible {
		b.WriteString(", forward-compatible")
	}
	b.WriteString(")\n")
	fmt.Fprintf(&b, "GLSL        : %s\n", orNA(in.GLSL))
	b.WriteString("=====================\n")
	return b.String()
}

// GLSLVersion parses the shading language version, which drivers report
// as a number followed by vendor text, as in "4.60 NVIDIA".
func (in Info) GLSLVersion() (*semver.Version, error) {
	for _, f := range strings.Fields(in.GLSL) {
		if f != "" && unicode.IsDigit(rune(f[0])) {
			return semver.NewVersion(f)
		}
	}
	return nil, fmt.Errorf("gl: no version number in GLSL string %q", in.GLSL)
}

// SupportsGLSL reports whether the shading language version satisfies
// the given constraint, written in the same dotted form the driver
// uses, for example ">= 4.10".
func (in Info) SupportsGLSL(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	v, err := in.GLSLVersion()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

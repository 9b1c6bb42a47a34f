// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel].
// Level labels are colored according to the color profile of w,
// so nothing but plain text is written when w is not a terminal.
// Timestamps are omitted.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(LevelString(out, lvl))
				}
			}
			return a
		},
	})
}

// LevelString returns the name of the level styled for out.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		return s.Foreground(out.Color("1")).Bold().String()
	case lvl >= slog.LevelWarn:
		return s.Foreground(out.Color("3")).String()
	case lvl >= slog.LevelInfo:
		return s.Foreground(out.Color("4")).String()
	default:
		return s.Faint().String()
	}
}

// SetDefaultLogger sets the default logger to one writing to
// stderr through [NewHandler]. It should be called again after
// changing [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

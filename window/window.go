// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a window with a current OpenGL core profile context
// using glfw, which every glt resource needs to exist first.
//
// glfw and GL calls must all happen on the main thread, which this package
// locks to the main goroutine when it is initialized.
package window

import (
	"image/color"
	"log/slog"
	"runtime"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/config"
	"cogentcore.org/glt/gl"
	"cogentcore.org/glt/gl/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// Window is a glfw window and its GL context. Resources created against
// [Window.Context] must be destroyed before the window is.
type Window struct {
	win   *glfw.Window
	ctx   *glcore.Context
	clear [4]float32
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// New initializes glfw and opens a window as configured, with its context
// current and the GL functions loaded. On failure everything done so far
// is undone. Only one Window may exist at a time.
func New(cfg config.Window) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Errorf("window: glfw init: %w: %w", errors.ErrAllocation, err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(cfg.Visible))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Errorf("window: create %dx%d %d.%d context: %w: %w", cfg.Width, cfg.Height, cfg.Major, cfg.Minor, errors.ErrAllocation, err)
	}
	win.MakeContextCurrent()
	if err := glcore.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Errorf("window: loading GL functions: %w: %w", errors.ErrAllocation, err)
	}

	w := &Window{win: win, ctx: glcore.New(), clear: cfg.ClearColor}
	w.SetVSync(cfg.VSync)
	fw, fh := win.GetFramebufferSize()
	w.ctx.Viewport(0, 0, int32(fw), int32(fh))
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.ctx.Viewport(0, 0, int32(width), int32(height))
	})
	slog.Info("window: opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"version", gl.QueryInfo(w.ctx).Version)
	return w, nil
}

// Context returns the GL context of the window, or nil once it is destroyed.
func (w *Window) Context() gl.Context {
	if w == nil || w.win == nil {
		return nil
	}
	return w.ctx
}

// ShouldClose reports whether the user asked to close the window.
// A destroyed window always should.
func (w *Window) ShouldClose() bool {
	if w == nil || w.win == nil {
		return true
	}
	return w.win.ShouldClose()
}

// ProcessInput closes the window when Escape is pressed.
func (w *Window) ProcessInput() {
	if w == nil || w.win == nil {
		return
	}
	if w.win.GetKey(glfw.KeyEscape) == glfw.Press {
		w.win.SetShouldClose(true)
	}
}

// SwapBuffers shows the frame that was drawn.
func (w *Window) SwapBuffers() {
	if w == nil || w.win == nil {
		return
	}
	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	if w == nil || w.win == nil {
		return
	}
	glfw.PollEvents()
}

// SetVSync sets whether buffer swaps wait for the vertical retrace.
func (w *Window) SetVSync(on bool) {
	if w == nil || w.win == nil {
		return
	}
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// SetClearColor sets the color [Window.Clear] clears to.
func (w *Window) SetClearColor(c color.Color) {
	if w == nil || c == nil {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	w.clear = [4]float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// Clear clears the color and depth buffers.
func (w *Window) Clear() {
	if w == nil || w.win == nil {
		return
	}
	w.ctx.ClearColor(w.clear[0], w.clear[1], w.clear[2], w.clear[3])
	w.ctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Size returns the size of the window in screen coordinates.
func (w *Window) Size() (width, height int) {
	if w == nil || w.win == nil {
		return 0, 0
	}
	return w.win.GetSize()
}

// Destroy closes the window and terminates glfw.
// It is safe to call more than once.
func (w *Window) Destroy() {
	if w == nil || w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

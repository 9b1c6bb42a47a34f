// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/gl"
	"github.com/fsnotify/fsnotify"
)

// Watcher owns a Program built from a vertex and a fragment shader file
// and rebuilds it when either file changes. File events are received on a
// separate goroutine, which only records that a change happened; the
// rebuild itself runs in [Watcher.Reload], on the thread of the context.
type Watcher struct {
	ctx          gl.Context
	vpath, fpath string
	prog         *Program

	watch *fsnotify.Watcher
	done  chan struct{}
	dirty atomic.Bool
}

// NewWatcher builds the program from the two files and starts watching them.
// Editors often replace a file rather than write it, so the directories
// holding the files are watched and events are filtered by name.
func NewWatcher(ctx gl.Context, vpath, fpath string) (*Watcher, error) {
	vpath, fpath = filepath.Clean(vpath), filepath.Clean(fpath)
	prog, err := NewProgramFromFiles(ctx, vpath, fpath)
	if err != nil {
		return nil, err
	}
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		prog.Destroy()
		return nil, errors.Errorf("shader: watcher: %w: %w", errors.ErrIO, err)
	}
	w := &Watcher{ctx: ctx, vpath: vpath, fpath: fpath, prog: prog, watch: watch, done: make(chan struct{})}
	for _, dir := range []string{filepath.Dir(vpath), filepath.Dir(fpath)} {
		if err := watch.Add(dir); err != nil {
			w.Close()
			return nil, errors.Errorf("shader: watcher: %w: %w", errors.ErrIO, err)
		}
	}
	go w.run(watch, w.done)
	return w, nil
}

func (w *Watcher) run(watch *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watch.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if name == w.vpath || name == w.fpath {
				slog.Debug("shader: source changed", "path", name)
				w.dirty.Store(true)
			}
		case err, ok := <-watch.Errors:
			if !ok {
				return
			}
			errors.Log(errors.Errorf("shader: watching %s: %w", w.vpath, err))
		}
	}
}

// Program returns the current program. It changes after a successful
// [Watcher.Reload], so callers should not keep it across frames.
func (w *Watcher) Program() *Program {
	if w == nil {
		return nil
	}
	return w.prog
}

// Changed reports whether a source file has changed since the last reload.
func (w *Watcher) Changed() bool {
	return w != nil && w.dirty.Load()
}

// Touch marks the sources as changed, so that the next
// [Watcher.Reload] rebuilds the program.
func (w *Watcher) Touch() {
	if w != nil {
		w.dirty.Store(true)
	}
}

// Reload rebuilds the program if a source file has changed, and reports
// whether it did. On success the old program is destroyed. On failure the
// old program stays in use, and the error is returned; it is not retried
// until the files change again.
func (w *Watcher) Reload() (bool, error) {
	if w == nil || !w.dirty.Swap(false) {
		return false, nil
	}
	prog, err := NewProgramFromFiles(w.ctx, w.vpath, w.fpath)
	if err != nil {
		return false, err
	}
	w.prog.Destroy()
	w.prog = prog
	slog.Info("shader: reloaded", "vertex", w.vpath, "fragment", w.fpath)
	return true, nil
}

// Close stops watching and destroys the program.
func (w *Watcher) Close() error {
	if w == nil || w.watch == nil {
		return nil
	}
	close(w.done)
	err := w.watch.Close()
	w.watch = nil
	w.prog.Destroy()
	w.prog = nil
	return err
}

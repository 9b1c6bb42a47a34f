// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the window and GL context
// that glt programs open, and reads and writes it as TOML or YAML.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/glt/base/errors"
	"cogentcore.org/glt/base/iox/tomlx"
	"cogentcore.org/glt/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// Window is the configuration of a window and its GL context.
type Window struct {

	// the title of the window
	Title string `toml:"title" yaml:"title"`

	// the width of the window in screen coordinates
	Width int `toml:"width" yaml:"width"`

	// the height of the window in screen coordinates
	Height int `toml:"height" yaml:"height"`

	// the major version of the requested core profile context
	Major int `toml:"major" yaml:"major"`

	// the minor version of the requested core profile context
	Minor int `toml:"minor" yaml:"minor"`

	// whether buffer swaps wait for the vertical retrace
	VSync bool `toml:"vsync" yaml:"vsync"`

	// whether the user can resize the window
	Resizable bool `toml:"resizable" yaml:"resizable"`

	// whether the window is shown; hidden windows still have a usable context
	Visible bool `toml:"visible" yaml:"visible"`

	// the RGBA color the framebuffer is cleared to
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
}

// Defaults returns the default configuration:
// an 800x600 window with a 4.1 context and vsync.
func Defaults() Window {
	return Window{
		Title:      "glt",
		Width:      800,
		Height:     600,
		Major:      4,
		Minor:      1,
		VSync:      true,
		Resizable:  true,
		Visible:    true,
		ClearColor: [4]float32{0.1, 0.1, 0.1, 1},
	}
}

// Validate checks that the sizes and version are usable.
func (w *Window) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return errors.Errorf("config: window size %dx%d is not positive: %w", w.Width, w.Height, errors.ErrInvalidArgument)
	}
	if w.Major < 3 || (w.Major == 3 && w.Minor < 2) {
		return errors.Errorf("config: core profile needs version 3.2 or later, not %d.%d: %w", w.Major, w.Minor, errors.ErrInvalidArgument)
	}
	return nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, errors.Errorf("config: %s: unknown extension, want .toml, .yaml or .yml: %w", path, errors.ErrInvalidArgument)
}

// Open reads the configuration in the named file, which may start with ~.
// The format follows the extension. Settings missing from the file keep
// their [Defaults].
func Open(path string) (Window, error) {
	cfg := Defaults()
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Errorf("config: %w: %w", errors.ErrInvalidArgument, err)
	}
	f, err := formatOf(path)
	if err != nil {
		return cfg, err
	}
	switch f {
	case formatTOML:
		err = tomlx.Open(&cfg, path)
	case formatYAML:
		err = yamlx.Open(&cfg, path)
	}
	if err != nil {
		return Defaults(), wrap(path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the named file, which may start with ~.
// The format follows the extension.
func Save(path string, cfg Window) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return errors.Errorf("config: %w: %w", errors.ErrInvalidArgument, err)
	}
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	switch f {
	case formatTOML:
		err = tomlx.Save(&cfg, path)
	case formatYAML:
		err = yamlx.Save(&cfg, path)
	}
	if err != nil {
		return wrap(path, err)
	}
	return nil
}

// wrap gives err the kind ErrIO for file system failures
// and ErrInvalidArgument for malformed content.
func wrap(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return errors.Errorf("config: %w: %w", errors.ErrIO, err)
	}
	return errors.Errorf("config: %s: %w: %w", path, errors.ErrInvalidArgument, err)
}

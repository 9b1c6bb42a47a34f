// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Title string
	Width int
	VSync bool
}

func TestReadKeepsMissing(t *testing.T) {
	s := settings{Title: "keep", Width: 640}
	require.NoError(t, Read(&s, strings.NewReader("Width = 800\nVSync = true\n")))
	assert.Equal(t, settings{Title: "keep", Width: 800, VSync: true}, s)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "s.toml")
	in := settings{Title: "tri", Width: 320, VSync: true}
	require.NoError(t, Save(&in, fn))
	var out settings
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes values as TOML.
package tomlx

import (
	"bufio"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Read reads the given value from the given reader.
// Fields not present in the input are left unchanged.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// Open reads the given value from the given filename.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Write writes the given value to the given writer.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}

// Save writes the given value to the given filename.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the error kinds shared by the glt resource
// packages, along with helpers for logging and checking errors.
// It also re-exports the standard library errors functions so that
// it can be used as a drop-in replacement.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// The kinds of failure a resource factory can report. Every error
// returned from a factory wraps exactly one of these; use [Is] to test.
var (
	// ErrInvalidArgument is returned for a bad size, an unsupported
	// format, an empty source, or a missing required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCompile is returned when a shader stage is rejected by the driver.
	ErrCompile = errors.New("shader compile failed")

	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("program link failed")

	// ErrAllocation is returned when the driver refuses to create an
	// object or reports less storage than was requested.
	ErrAllocation = errors.New("allocation failed")

	// ErrIO is returned when a file cannot be read.
	ErrIO = errors.New("i/o failure")
)

// Kind returns the kind sentinel that err wraps, or nil.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidArgument, ErrCompile, ErrLink, ErrAllocation, ErrIO} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Error(args ...any)
}

// Test takes the given error and errors the test it if it is non-nil.
func Test(t TestingT, err error) error {
	if err != nil {
		t.Error(err)
	}
	return err
}

// Test1 takes the given value and error, errors the test if the
// error is non-nil, and returns the value either way.
func Test1[T any](t TestingT, v T, err error) T {
	if err != nil {
		t.Error(err)
	}
	return v
}

// New is a re-export of [errors.New].
func New(text string) error { return errors.New(text) }

// Errorf is a re-export of [fmt.Errorf].
func Errorf(format string, a ...any) error { return fmt.Errorf(format, a...) }

// Is is a re-export of [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is a re-export of [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is a re-export of [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Unwrap is a re-export of [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec engines, the seekable reader and the file wrapper.
var (
	// ErrFinished is returned by Fill/Finish once Finish has already run on a codec.
	ErrFinished = errors.New("heatshrink: codec already finished")
	// ErrClosed is returned by any EncodedFile operation after Close.
	ErrClosed = errors.New("heatshrink: operation on closed file")
	// ErrUnsupported is returned for operations the current mode or stream does not
	// support, e.g. Write on a file opened for reading, or Seek on a non-seekable
	// underlying stream.
	ErrUnsupported = errors.New("heatshrink: unsupported operation")
	// ErrInvalidMode is returned when Open is called with a mode other than
	// "r", "rb", "w", "wb".
	ErrInvalidMode = errors.New("heatshrink: invalid mode")
	// ErrNilSource is returned when Open is given neither a path nor a stream.
	ErrNilSource = errors.New("heatshrink: source must be a path string or an open stream")
)

// RangeError reports a configuration value (WindowBits or LookaheadBits) outside
// the range the wire format allows.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("heatshrink: %s=%d out of range", e.Field, e.Value)
}

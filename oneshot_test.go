// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode_KnownVector(t *testing.T) {
	got, err := Encode([]byte("abcde"), &Options{WindowBits: 11, LookaheadBits: 4})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0xB0, 0xD8, 0xAC, 0x76, 0x4B, 0x28}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte("abcde"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 50),
		bytes.Repeat([]byte{0x00, 0xFF}, 1000),
	}
	optsGrid := []*Options{
		nil,
		{WindowBits: 4, LookaheadBits: 3},
		{WindowBits: 8, LookaheadBits: 4},
		{WindowBits: 11, LookaheadBits: 4},
		{WindowBits: 15, LookaheadBits: 10},
	}

	for _, opts := range optsGrid {
		for _, data := range cases {
			out, err := Encode(data, opts)
			if err != nil {
				t.Fatalf("Encode(opts=%+v): %v", opts, err)
			}
			back, err := Decode(out, opts)
			if err != nil {
				t.Fatalf("Decode(opts=%+v): %v", opts, err)
			}
			if !bytes.Equal(back, data) && !(len(back) == 0 && len(data) == 0) {
				t.Fatalf("round trip mismatch opts=%+v: got %q, want %q", opts, back, data)
			}
		}
	}
}

func TestOptions_ValidateRanges(t *testing.T) {
	cases := []*Options{
		{WindowBits: 3, LookaheadBits: 3},
		{WindowBits: 16, LookaheadBits: 4},
		{WindowBits: 8, LookaheadBits: 2},
		{WindowBits: 8, LookaheadBits: 8},
		{WindowBits: 8, LookaheadBits: 11},
	}
	for _, opts := range cases {
		if err := opts.validate(); err == nil {
			t.Fatalf("opts=%+v: expected validation error", opts)
		} else {
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("opts=%+v: expected *RangeError, got %T", opts, err)
			}
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.WindowBits != 11 || opts.LookaheadBits != 4 {
		t.Fatalf("got %+v, want {11 4}", opts)
	}
	if err := opts.validate(); err != nil {
		t.Fatalf("DefaultOptions() failed validation: %v", err)
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bytes"
	"errors"
	"testing"
)

func encodeInChunks(t *testing.T, data []byte, chunk int, opts *Options) []byte {
	t.Helper()
	enc, err := NewEncoder(opts)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	var out []byte
	for i := 0; i < len(data); i += chunk {
		end := i + chunk
		if end > len(data) {
			end = len(data)
		}
		b, err := enc.Fill(data[i:end])
		if err != nil {
			t.Fatalf("Fill: %v", err)
		}
		out = append(out, b...)
	}
	b, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return append(out, b...)
}

func TestEncoder_StreamingEquivalence(t *testing.T) {
	data := bytes.Repeat([]byte("abcabcabcabcXYZabcabcabc "), 40)
	opts := &Options{WindowBits: 8, LookaheadBits: 4}

	oneShot, err := Encode(data, opts)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, chunk := range []int{1, 2, 3, 7, 64, 1000} {
		got := encodeInChunks(t, data, chunk, opts)
		if !bytes.Equal(got, oneShot) {
			t.Fatalf("chunk size %d: output diverged from one-shot encode", chunk)
		}
	}
}

func TestEncoder_FillBelowWindowProducesNoOutputUntilFinish(t *testing.T) {
	opts := &Options{WindowBits: 11, LookaheadBits: 4}
	enc, err := NewEncoder(opts)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	b, err := enc.Fill([]byte("ab"))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected no output before the window fills or Finish runs, got % X", b)
	}
	tail, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(tail) == 0 {
		t.Fatal("expected Finish to flush the buffered bytes")
	}
}

func TestEncoder_FillAfterFinishErrors(t *testing.T) {
	enc, _ := NewEncoder(nil)
	if _, err := enc.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := enc.Fill([]byte("x")); !errors.Is(err, ErrFinished) {
		t.Fatalf("got %v, want ErrFinished", err)
	}
	if _, err := enc.Finish(); !errors.Is(err, ErrFinished) {
		t.Fatalf("got %v, want ErrFinished", err)
	}
	if !enc.Finished() {
		t.Fatal("Finished() should report true")
	}
}

func TestNewEncoder_RejectsInvalidOptions(t *testing.T) {
	_, err := NewEncoder(&Options{WindowBits: 100, LookaheadBits: 4})
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %v, want *RangeError", err)
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bytes"
	"testing"
)

func TestBitWriter_PacksMSBFirst(t *testing.T) {
	var w bitWriter
	w.writeBits(1, 1)
	w.writeBits(0x61, 8)
	w.flush()
	got := w.take()
	want := []byte{0xB0, 0x80}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestBitWriter_FlushPadsWithZero(t *testing.T) {
	var w bitWriter
	w.writeBits(0b101, 3)
	w.flush()
	got := w.take()
	want := []byte{0b10100000}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X, want % X", got, want)
	}
}

func TestBitReader_RoundTripsWriter(t *testing.T) {
	var w bitWriter
	w.writeBits(1, 1)
	w.writeBits(5, 3)
	w.writeBits(200, 8)
	w.flush()
	data := w.take()

	var r bitReader
	r.sink(data)

	if v, ok := r.readBits(1); !ok || v != 1 {
		t.Fatalf("tag bit: got %v, %v", v, ok)
	}
	if v, ok := r.readBits(3); !ok || v != 5 {
		t.Fatalf("3-bit field: got %v, %v", v, ok)
	}
	if v, ok := r.readBits(8); !ok || v != 200 {
		t.Fatalf("8-bit field: got %v, %v", v, ok)
	}
}

func TestBitReader_UnderflowDoesNotConsume(t *testing.T) {
	var r bitReader
	r.sink([]byte{0xFF})

	if _, ok := r.readBits(9); ok {
		t.Fatal("expected underflow for 9 bits out of 8 buffered")
	}
	// The failed read must not have consumed anything: a retry at a
	// satisfiable width should still see the original bits.
	if v, ok := r.readBits(8); !ok || v != 0xFF {
		t.Fatalf("got %v, %v after a failed wider read", v, ok)
	}
}

func TestBitReader_ResumesAcrossSinks(t *testing.T) {
	var r bitReader
	r.sink([]byte{0xFF})
	if _, ok := r.readBits(16); ok {
		t.Fatal("expected underflow before second sink")
	}
	r.sink([]byte{0x00})
	v, ok := r.readBits(16)
	if !ok || v != 0xFF00 {
		t.Fatalf("got %v, %v", v, ok)
	}
}

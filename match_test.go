// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "testing"

func TestFindMatch_PrefersClosestOnTie(t *testing.T) {
	// buf: "ababab?" - searching at pos=6 ('?' position holds a copy of
	// "ab" prefix for the match to find), floor=0.
	buf := []byte("ababab" + "ab")
	pos := 6
	dist, length := findMatch(buf, pos, 0, 2, 2, 1)
	if length != 2 {
		t.Fatalf("length = %d, want 2", length)
	}
	if dist != 2 {
		t.Fatalf("distance = %d, want 2 (closest candidate)", dist)
	}
}

func TestFindMatch_LongerMatchWinsOverCloser(t *testing.T) {
	buf := []byte("xaabcxaabc" + "aabc")
	pos := 10
	dist, length := findMatch(buf, pos, 0, 4, 4, 1)
	if length != 4 {
		t.Fatalf("length = %d, want 4", length)
	}
	if dist != 4 {
		t.Fatalf("distance = %d, want 4", dist)
	}
}

func TestFindMatch_NoneBelowMinMatch(t *testing.T) {
	buf := []byte("xyz" + "a")
	dist, length := findMatch(buf, 3, 0, 1, 4, 2)
	if length != 0 || dist != 0 {
		t.Fatalf("got dist=%d length=%d, want 0,0", dist, length)
	}
}

func TestFindMatch_RespectsFloor(t *testing.T) {
	// Candidate at distance 4 matches both bytes but is out of range when
	// floor excludes it; only the nearer, shorter candidate at distance 1
	// remains.
	buf := []byte("abXa" + "ab")
	pos := 4
	dist, length := findMatch(buf, pos, 1, 2, 2, 1)
	if length != 1 || dist != 1 {
		t.Fatalf("got dist=%d length=%d, want 1,1 from the in-range candidate", dist, length)
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Wire format bounds: window bits select a 1<<W byte sliding window, lookahead
// bits select a (1<<L)-1 byte maximum match length. Both are packed as
// fixed-width fields in every back-reference token, so they bound the token
// layout as well as the window/ring buffer sizes.
const (
	minWindowBits    = 4
	maxWindowBits    = 15
	minLookaheadBits = 3
	maxLookaheadBits = 10

	defaultWindowBits    = 11
	defaultLookaheadBits = 4
)

// minMatchFor returns the shortest back-reference length the wire format
// encodes for the given window size: 1 byte for up to 8 window bits, 2
// bytes for 9 or more. The count field stores length minus this value, so
// encoder and decoder must agree on it.
func minMatchFor(windowBits int) int {
	if windowBits > 8 {
		return 2
	}
	return 1
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// findMatch scans the window buffer for the best back-reference starting
// at pos, nearest-candidate first. Candidates are tried from pos-1 down to
// floor (the oldest position a WindowBits-wide distance field can still
// address), so a strictly-longer match always overrides the current best
// but an equal-length match never does: the closest (smallest-distance,
// cheapest-to-encode) candidate wins ties.
//
// avail bounds how many bytes starting at pos are actually available to
// match against (the lookahead still sitting in the search buffer);
// maxLen additionally bounds it by (1<<LookaheadBits)-1, the longest
// length the count field can represent.
//
// Returns length 0 if no candidate reaches minMatch.
func findMatch(buf []byte, pos, floor, avail, maxLen, minMatch int) (distance, length int) {
	if avail > maxLen {
		avail = maxLen
	}
	if avail == 0 {
		return 0, 0
	}

	bestLen := 0
	bestDist := 0
	for c := pos - 1; c >= floor; c-- {
		l := 0
		for l < avail && buf[c+l] == buf[pos+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestDist = pos - c
			if bestLen == avail {
				break
			}
		}
	}

	if bestLen < minMatch {
		return 0, 0
	}
	return bestDist, bestLen
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// encoderEngine implements spec.md's encoder state machine: Sink fills the
// sliding window, parseAvailable drives NotFull -> Filled -> Search -> (YieldTagBit ->
// YieldLiteral | YieldTagBit -> YieldBR_Index -> YieldBR_Length) ->
// SaveBacklog, looping until input runs out, and Finish flushes whatever
// is left once no more input is coming (the FlushBits -> Done tail).
//
// The critical invariant is that parseAvailable only ever searches for matches once
// the search buffer is either completely full or the caller has called
// Finish. Searching early would make the encoded output depend on how the
// caller chose to chunk its input, breaking streaming equivalence with the
// one-shot encoder.
type encoderEngine struct {
	opts    *Options
	win     *encodeWindow
	bw      bitWriter
	minLen  int
	maxLen  int
	finishing bool
	finished  bool
}

func newEncoderEngine(opts *Options) *encoderEngine {
	return &encoderEngine{
		opts:   opts,
		win:    acquireEncodeWindow(opts.windowSize()),
		minLen: opts.minMatch(),
		maxLen: opts.maxMatchLen(),
	}
}

func (e *encoderEngine) release() {
	releaseEncodeWindow(e.win)
	e.win = nil
}

// sink feeds data into the window, draining complete search-buffer passes
// (scan + saveBacklog) as it goes, and returns whatever bytes that
// produced.
func (e *encoderEngine) sink(data []byte) []byte {
	for len(data) > 0 {
		n := e.win.sink(data)
		data = data[n:]
		e.parseAvailable()
		if e.win.drained() {
			e.win.saveBacklog()
		} else if n == 0 {
			// Search buffer is full but not fully scanned yet (shouldn't
			// happen given parseAvailable always drains a full buffer),
			// bail out rather than spin.
			break
		}
	}
	return e.bw.take()
}

// finish flags that no more input is coming, drains the remainder of the
// search buffer regardless of fill level, and flushes the trailing
// partial byte.
func (e *encoderEngine) finish() []byte {
	e.finishing = true
	e.parseAvailable()
	e.bw.flush()
	e.finished = true
	return e.bw.take()
}

// parseAvailable runs Search over every byte sunk so far, emitting a
// literal or back-reference token for each, until it either catches up to
// head (nothing left to scan) or - when the window is not yet full and
// finish hasn't been called - decides to wait for more input instead.
func (e *encoderEngine) parseAvailable() {
	for {
		avail := e.win.head - e.win.searchPos
		if avail <= 0 {
			return
		}
		if !e.win.full() && !e.finishing {
			return
		}

		curMax := e.maxLen
		if avail < curMax {
			curMax = avail
		}
		if curMax < e.minLen {
			e.emitLiteral(e.win.searchPos)
			e.win.searchPos++
			continue
		}

		pos := e.win.size + e.win.searchPos
		floor := e.win.searchPos
		dist, length := findMatch(e.win.buf, pos, floor, curMax, curMax, e.minLen)
		if length >= e.minLen {
			e.emitBackref(dist, length)
			e.win.searchPos += length
		} else {
			e.emitLiteral(e.win.searchPos)
			e.win.searchPos++
		}
	}
}

func (e *encoderEngine) emitLiteral(searchPos int) {
	e.bw.writeBits(1, 1)
	e.bw.writeBits(uint32(e.win.byteAt(searchPos)), 8)
}

func (e *encoderEngine) emitBackref(dist, length int) {
	e.bw.writeBits(0, 1)
	e.bw.writeBits(uint32(dist-1), uint(e.opts.WindowBits))
	e.bw.writeBits(uint32(length-e.minLen), uint(e.opts.LookaheadBits))
}

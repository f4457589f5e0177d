// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// decodeRing is the decoder's output window: a fixed-size ring buffer of
// 1<<WindowBits bytes that back-references index into. Every decoded byte,
// literal or copied, is written through emit so later back-references can
// reach it.
type decodeRing struct {
	buf []byte
	pos int // next write offset, wraps modulo len(buf)
}

func (r *decodeRing) emit(b byte) {
	r.buf[r.pos] = b
	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
	}
}

// decodePhase tracks where poll is mid-token, so a field split across two
// Fill calls resumes correctly instead of re-reading the tag bit.
type decodePhase int

const (
	phaseTag decodePhase = iota
	phaseLiteral
	phaseBackrefIndex
	phaseBackrefCount
)

// decoderEngine implements spec.md's decoder state machine: TagBit ->
// YieldLiteral | TagBit -> BackrefIndex -> BackrefCount -> YieldBackref ->
// TagBit. A bit-reader underflow at any point - including mid-token - is
// always a clean end of stream, never an error: the wire format carries no
// terminator, so poll simply stops and waits for either more input (Fill)
// or EOF (Finish).
type decoderEngine struct {
	opts          *Options
	ring          *decodeRing
	br            bitReader
	windowBits    uint
	lookaheadBits uint
	minLen        int
	out           []byte
	phase         decodePhase
	pendingIndex  int
	finished      bool
}

func newDecoderEngine(opts *Options) *decoderEngine {
	return &decoderEngine{
		opts:          opts,
		ring:          acquireDecodeRing(opts.windowSize()),
		windowBits:    uint(opts.WindowBits),
		lookaheadBits: uint(opts.LookaheadBits),
		minLen:        opts.minMatch(),
	}
}

func (d *decoderEngine) release() {
	releaseDecodeRing(d.ring)
	d.ring = nil
}

func (d *decoderEngine) sink(data []byte) []byte {
	d.br.sink(data)
	d.poll()
	return d.take()
}

func (d *decoderEngine) finish() []byte {
	d.poll()
	d.finished = true
	return d.take()
}

func (d *decoderEngine) take() []byte {
	if len(d.out) == 0 {
		return nil
	}
	b := d.out
	d.out = nil
	return b
}

// poll advances the state machine as far as the currently buffered bits
// allow, leaving phase/pendingIndex set so the next call resumes exactly
// where this one ran out of input.
func (d *decoderEngine) poll() {
	for {
		switch d.phase {
		case phaseTag:
			v, ok := d.br.readBits(1)
			if !ok {
				return
			}
			if v == 1 {
				d.phase = phaseLiteral
			} else {
				d.phase = phaseBackrefIndex
			}

		case phaseLiteral:
			v, ok := d.br.readBits(8)
			if !ok {
				return
			}
			d.ring.emit(byte(v))
			d.out = append(d.out, byte(v))
			d.phase = phaseTag

		case phaseBackrefIndex:
			v, ok := d.br.readBits(d.windowBits)
			if !ok {
				return
			}
			d.pendingIndex = int(v)
			d.phase = phaseBackrefCount

		case phaseBackrefCount:
			v, ok := d.br.readBits(d.lookaheadBits)
			if !ok {
				return
			}
			length := int(v) + d.minLen
			dist := d.pendingIndex + 1
			d.ring.copyBack(dist, length)
			d.out = append(d.out, d.ringTail(length)...)
			d.phase = phaseTag
		}
	}
}

// ringTail reads back the `length` bytes copyBack just wrote, in order,
// for appending to the decoder's output slice. copyBack already advanced
// ring.pos past them, so they sit at [pos-length, pos) modulo the ring
// size.
func (d *decoderEngine) ringTail(length int) []byte {
	size := len(d.ring.buf)
	start := d.ring.pos - length
	if start < 0 {
		start += size
	}
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = d.ring.buf[(start+i)%size]
	}
	return out
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "sync"

// encodeWindowPool recycles encodeWindow buffers across codec lifetimes.
// Buffers are sized on demand: a pooled window whose backing array is too
// small for the requested size is grown and kept at the new size, so the
// pool self-tunes toward whatever WindowBits values are actually in use.
var encodeWindowPool = sync.Pool{
	New: func() any {
		return &encodeWindow{}
	},
}

func acquireEncodeWindow(size int) *encodeWindow {
	w := encodeWindowPool.Get().(*encodeWindow)
	if cap(w.buf) < 2*size {
		w.buf = make([]byte, 2*size)
	} else {
		w.buf = w.buf[:2*size]
	}
	w.size = size
	w.reset()
	return w
}

func releaseEncodeWindow(w *encodeWindow) {
	if w == nil {
		return
	}
	w.size = 0
	w.head = 0
	w.searchPos = 0
	encodeWindowPool.Put(w)
}

// decodeRingPool recycles decoder ring buffers the same way.
var decodeRingPool = sync.Pool{
	New: func() any {
		return &decodeRing{}
	},
}

func acquireDecodeRing(size int) *decodeRing {
	r := decodeRingPool.Get().(*decodeRing)
	if cap(r.buf) < size {
		r.buf = make([]byte, size)
	} else {
		r.buf = r.buf[:size]
		for i := range r.buf {
			r.buf[i] = 0
		}
	}
	r.pos = 0
	return r
}

func releaseDecodeRing(r *decodeRing) {
	if r == nil {
		return
	}
	r.pos = 0
	decodeRingPool.Put(r)
}

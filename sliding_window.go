// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// encodeWindow is the encoder's two-half sliding buffer: buf has length
// 2*size, where size = 1<<WindowBits. The first half holds the previous
// window's worth of already-emitted history; the second half is the
// current search buffer being filled by sink and scanned by the match
// finder. Once the search buffer fills up and is fully scanned,
// saveBacklog slides it into the first half and reopens the second half
// for more input.
type encodeWindow struct {
	size      int
	buf       []byte
	head      int // next write offset within the second half, [0, size]
	searchPos int // next unscanned offset within the second half, [0, head]
}

func (w *encodeWindow) reset() {
	for i := range w.buf {
		w.buf[i] = 0
	}
	w.head = 0
	w.searchPos = 0
}

// remaining reports how many more bytes sink can accept before the
// search buffer is full.
func (w *encodeWindow) remaining() int {
	return w.size - w.head
}

func (w *encodeWindow) full() bool {
	return w.head == w.size
}

// sink copies as much of data as fits in the remaining search buffer
// space and reports how many bytes it consumed.
func (w *encodeWindow) sink(data []byte) int {
	n := w.remaining()
	if n > len(data) {
		n = len(data)
	}
	copy(w.buf[w.size+w.head:w.size+w.head+n], data[:n])
	w.head += n
	return n
}

// drained reports whether every sunk byte in the search buffer has been
// scanned, i.e. saveBacklog can run.
func (w *encodeWindow) drained() bool {
	return w.head == w.size && w.searchPos == w.head
}

// saveBacklog slides the filled search buffer into the history half and
// reopens the second half for more input.
func (w *encodeWindow) saveBacklog() {
	copy(w.buf[0:w.size], w.buf[w.size:2*w.size])
	w.head = 0
	w.searchPos = 0
}

// byteAt returns the byte at offset searchPos within the current search
// buffer (i.e. buf[size+searchPos]).
func (w *encodeWindow) byteAt(searchPos int) byte {
	return w.buf[w.size+searchPos]
}

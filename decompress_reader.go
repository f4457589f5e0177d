// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import "io"

// rawSeeker is the minimal contract DecompressReader needs from its
// underlying compressed-byte source to support Seek: readable, and
// rewindable to byte 0.
type rawSeeker interface {
	io.Reader
	io.Seeker
}

// DecompressReader presents a forward-only Decoder as a random-access
// byte stream. The decoder itself can only ever move forward, so Seek to
// an offset before the current position rewinds the raw source to byte 0,
// creates a fresh Decoder, and replays forward to the target - exactly
// the rewind-and-replay strategy pyheatshrink's streams.py uses, since
// there is no way to "un-decode" a LZSS stream.
type DecompressReader struct {
	opts *Options
	src  rawSeeker
	dec  *Decoder

	pending []byte // decoded bytes produced but not yet handed to Read
	offset  int64  // logical decompressed position, i.e. bytes already returned
	eof     bool
}

// NewDecompressReader wraps src, a seekable stream of compressed bytes.
func NewDecompressReader(src rawSeeker, opts *Options) (*DecompressReader, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}
	return &DecompressReader{opts: withDefaults(opts), src: src, dec: dec}, nil
}

const decompressReaderChunk = 4096

// fill reads and decodes one more chunk of raw input, appending whatever
// decompressed bytes it yields to pending. Returns false once the raw
// source and the decoder are both fully drained.
func (r *DecompressReader) fill() (bool, error) {
	if r.eof {
		return false, nil
	}

	chunk := make([]byte, decompressReaderChunk)
	n, rerr := r.src.Read(chunk)
	if n > 0 {
		out, ferr := r.dec.Fill(chunk[:n])
		if ferr != nil {
			return false, ferr
		}
		if len(out) > 0 {
			r.pending = append(r.pending, out...)
		}
	}
	if rerr == io.EOF {
		out, ferr := r.dec.Finish()
		if ferr != nil {
			return false, ferr
		}
		if len(out) > 0 {
			r.pending = append(r.pending, out...)
		}
		r.eof = true
		return len(r.pending) > 0, nil
	}
	if rerr != nil {
		return false, rerr
	}
	return true, nil
}

// Read implements io.Reader over the decompressed byte stream.
func (r *DecompressReader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if len(r.pending) == 0 {
			more, err := r.fill()
			if err != nil {
				return total, err
			}
			if !more && len(r.pending) == 0 {
				break
			}
		}
		n := copy(p[total:], r.pending)
		r.pending = r.pending[n:]
		total += n
		r.offset += int64(n)
	}
	if total == 0 && r.eof && len(r.pending) == 0 {
		return 0, io.EOF
	}
	return total, nil
}

// rewind discards all decoder state and restarts decompression from byte
// zero of the raw source. The abandoned decoder's pooled ring buffer is
// released immediately rather than waiting for a Finish that will never
// come, since a rewound decoder is never drained to completion.
func (r *DecompressReader) rewind() error {
	if _, err := r.src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dec, err := NewDecoder(r.opts)
	if err != nil {
		return err
	}
	if r.dec != nil {
		r.dec.Close()
	}
	r.dec = dec
	r.pending = nil
	r.offset = 0
	r.eof = false
	return nil
}

// Close releases the reader's decoder resources (its pooled ring buffer)
// without reading any further. It does not close the underlying
// compressed-byte source; callers that opened src themselves remain
// responsible for closing it. Safe to call more than once.
func (r *DecompressReader) Close() error {
	if r.dec == nil {
		return nil
	}
	r.dec.Close()
	r.dec = nil
	r.pending = nil
	r.eof = true
	return nil
}

// Seek implements io.Seeker in terms of decompressed-stream position.
// Forward seeks just discard decoded bytes until the target is reached;
// backward seeks (and io.SeekEnd, whose target is unknown ahead of time)
// rewind and replay from the start.
func (r *DecompressReader) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = r.offset + offset
	case io.SeekEnd:
		if err := r.rewind(); err != nil {
			return 0, err
		}
		if err := r.drainToEnd(); err != nil {
			return 0, err
		}
		target = r.offset + offset
	default:
		return 0, ErrUnsupported
	}

	if target < r.offset {
		if err := r.rewind(); err != nil {
			return 0, err
		}
	}
	if err := r.discardUntil(target); err != nil {
		return 0, err
	}
	return r.offset, nil
}

// discardUntil advances offset to exactly target (or as close as the
// stream allows) by dropping decoded bytes without copying them to a
// caller buffer. Unlike a bulk "drop the whole next chunk" approach,
// this only discards up to what's needed from each decoded chunk so it
// can't overshoot target when a single Fill call yields more bytes than
// the remaining distance to target.
func (r *DecompressReader) discardUntil(target int64) error {
	for r.offset < target {
		if len(r.pending) == 0 {
			more, err := r.fill()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		need := target - r.offset
		n := int64(len(r.pending))
		if n > need {
			n = need
		}
		r.pending = r.pending[n:]
		r.offset += n
	}
	return nil
}

// drainToEnd discards every remaining decoded byte, used to discover the
// total decompressed length for an io.SeekEnd seek.
func (r *DecompressReader) drainToEnd() error {
	for {
		if len(r.pending) == 0 {
			more, err := r.fill()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		r.offset += int64(len(r.pending))
		r.pending = nil
	}
}

// Tell returns the current logical position in the decompressed stream.
func (r *DecompressReader) Tell() int64 {
	return r.offset
}

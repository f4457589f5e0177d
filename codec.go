// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Encoder is a streaming compressor: Fill accepts input incrementally and
// returns whatever compressed bytes that input allowed the encoder to
// produce so far, Finish flushes the tail once no more input is coming.
type Encoder struct {
	opts *Options
	eng  *encoderEngine
}

// NewEncoder creates a streaming Encoder. A nil opts uses DefaultOptions().
func NewEncoder(opts *Options) (*Encoder, error) {
	opts = withDefaults(opts)
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Encoder{opts: opts, eng: newEncoderEngine(opts)}, nil
}

// Fill sinks data into the encoder and returns any compressed bytes it
// was able to produce. Call sites may pass input in any chunking: the
// compressed output is identical regardless of how the input was split
// across Fill calls.
func (e *Encoder) Fill(data []byte) ([]byte, error) {
	if e.eng.finished {
		return nil, ErrFinished
	}
	return e.eng.sink(data), nil
}

// Finish signals end of input and returns the final compressed bytes,
// including the zero-padded trailing byte. Calling Finish more than once
// returns ErrFinished.
func (e *Encoder) Finish() ([]byte, error) {
	if e.eng.finished {
		return nil, ErrFinished
	}
	out := e.eng.finish()
	e.eng.release()
	return out, nil
}

// Finished reports whether Finish has already run.
func (e *Encoder) Finished() bool {
	return e.eng.finished
}

// Decoder is a streaming decompressor, the mirror of Encoder.
type Decoder struct {
	opts *Options
	eng  *decoderEngine
}

// NewDecoder creates a streaming Decoder. A nil opts uses DefaultOptions();
// it must match the Options the stream was encoded with, since the wire
// format carries no self-describing header.
func NewDecoder(opts *Options) (*Decoder, error) {
	opts = withDefaults(opts)
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Decoder{opts: opts, eng: newDecoderEngine(opts)}, nil
}

// Fill sinks compressed bytes and returns any decompressed bytes that
// became available.
func (d *Decoder) Fill(data []byte) ([]byte, error) {
	if d.eng.finished {
		return nil, ErrFinished
	}
	return d.eng.sink(data), nil
}

// Finish signals end of input and drains whatever the decoder can still
// produce. Because the wire format has no end-of-stream marker, any bits
// left over after the last complete token are silently discarded rather
// than reported as an error.
func (d *Decoder) Finish() ([]byte, error) {
	if d.eng.finished {
		return nil, ErrFinished
	}
	out := d.eng.finish()
	d.eng.release()
	return out, nil
}

// Close releases the decoder's pooled ring buffer without draining or
// flagging Finished, for callers (DecompressReader, EncodedFile) that
// abandon a decoder before it ever reaches clean end-of-stream, e.g. a
// seek that discards the in-flight decoder for a fresh one. Safe to call
// after Finish has already released the same resources.
func (d *Decoder) Close() {
	d.eng.release()
}

// Finished reports whether Finish has already run.
func (d *Decoder) Finished() bool {
	return d.eng.finished
}

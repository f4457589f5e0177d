// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

/*
Package heatshrink implements a streaming LZSS-style compression codec
compatible with the embedded-oriented Heatshrink byte layout, plus a
seekable file-like wrapper over it.

The codec is configured by a window/lookahead bit-width pair (W, L) and
operates incrementally: an encoder or decoder engine is fed bytes with
Fill and drained with Finish, never requiring the whole input or output
to be held in memory at once.

# One-shot

	out, err := heatshrink.Encode(data, nil)                 // defaults: W=11, L=4
	out, err := heatshrink.Encode(data, &heatshrink.Options{WindowBits: 8, LookaheadBits: 4})
	back, err := heatshrink.Decode(out, nil)

# Streaming

	enc, err := heatshrink.NewEncoder(nil)
	var out []byte
	for _, chunk := range chunks {
		b, err := enc.Fill(chunk)
		out = append(out, b...)
	}
	b, err := enc.Finish()
	out = append(out, b...)

# Files

	f, err := heatshrink.Open("data.hs", "wb", nil)
	_, err = f.Write(data)
	err = f.Close()

	f, err := heatshrink.Open("data.hs", "rb", nil)
	buf := make([]byte, 100)
	n, err := f.Read(buf)
	_, err = f.Seek(-100, io.SeekEnd)
*/
package heatshrink

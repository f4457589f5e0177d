// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Encode compresses data in one call. A nil opts uses DefaultOptions().
func Encode(data []byte, opts *Options) ([]byte, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}
	head, err := enc.Fill(data)
	if err != nil {
		return nil, err
	}
	tail, err := enc.Finish()
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}

// Decode decompresses data in one call. opts must match whatever Options
// the data was encoded with.
func Decode(data []byte, opts *Options) ([]byte, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}
	head, err := dec.Fill(data)
	if err != nil {
		return nil, err
	}
	tail, err := dec.Finish()
	if err != nil {
		return nil, err
	}
	return append(head, tail...), nil
}

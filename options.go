// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

// Options configures the window and lookahead bit widths shared by the
// encoder, decoder and one-shot helpers. A nil *Options is equivalent to
// DefaultOptions(): W=11, L=4.
type Options struct {
	WindowBits    int
	LookaheadBits int
}

// DefaultOptions returns the 11/4 window/lookahead pair used when callers
// pass a nil *Options.
func DefaultOptions() *Options {
	return &Options{WindowBits: defaultWindowBits, LookaheadBits: defaultLookaheadBits}
}

func withDefaults(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}

func (o *Options) validate() error {
	if o.WindowBits < minWindowBits || o.WindowBits > maxWindowBits {
		return &RangeError{Field: "WindowBits", Value: o.WindowBits}
	}
	if o.LookaheadBits < minLookaheadBits || o.LookaheadBits >= o.WindowBits {
		return &RangeError{Field: "LookaheadBits", Value: o.LookaheadBits}
	}
	if o.LookaheadBits > maxLookaheadBits {
		return &RangeError{Field: "LookaheadBits", Value: o.LookaheadBits}
	}
	return nil
}

func (o *Options) minMatch() int {
	return minMatchFor(o.WindowBits)
}

func (o *Options) maxMatchLen() int {
	return (1 << uint(o.LookaheadBits)) - 1
}

func (o *Options) windowSize() int {
	return 1 << uint(o.WindowBits)
}

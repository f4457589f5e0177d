// SPDX-License-Identifier: MIT
// Copyright (c) 2026 go-heatshrink contributors
// Source: github.com/go-heatshrink/heatshrink

package heatshrink

import (
	"bufio"
	"io"
	"os"
	"sync"
)

type fileMode int

const (
	modeClosed fileMode = iota
	modeRead
	modeWrite
)

// EncodedFile is a buffered, file-like wrapper over a compressed stream:
// reads are transparently decompressed through a DecompressReader, writes
// are transparently compressed through an Encoder. It tracks whether it
// opened its underlying stream itself (by path) so Close only closes
// streams this package owns, mirroring pyheatshrink's EncodedFile/
// streams.py ownership rule.
type EncodedFile struct {
	mu   sync.Mutex
	mode fileMode
	opts *Options
	name string
	owns bool
	raw  io.Closer

	dr *DecompressReader
	br *bufio.Reader

	enc *Encoder
	w   io.Writer
}

// Open opens source, which may be a file path (string) or an already-open
// stream (io.Reader for read modes, io.Writer for write modes). An
// injected stream is never closed by Close, even if it implements
// io.Closer; only a file opened here by path is. mode is one of "r", "rb" (read) or "w", "wb"
// (write); the b is accepted for readability and has no separate binary
// mode in Go, every stream here is already raw bytes.
func Open(source any, mode string, opts *Options) (*EncodedFile, error) {
	opts = withDefaults(opts)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var reading bool
	switch mode {
	case "r", "rb":
		reading = true
	case "w", "wb":
		reading = false
	default:
		return nil, ErrInvalidMode
	}

	f := &EncodedFile{opts: opts}

	switch src := source.(type) {
	case string:
		if src == "" {
			return nil, ErrNilSource
		}
		f.name = src
		f.owns = true
		if reading {
			fh, err := os.Open(src)
			if err != nil {
				return nil, err
			}
			f.raw = fh
			if err := f.initRead(fh); err != nil {
				fh.Close()
				return nil, err
			}
		} else {
			fh, err := os.Create(src)
			if err != nil {
				return nil, err
			}
			f.raw = fh
			f.initWrite(fh)
		}

	case nil:
		return nil, ErrNilSource

	default:
		if reading {
			rs, ok := source.(rawSeeker)
			if !ok {
				r, ok := source.(io.Reader)
				if !ok {
					return nil, ErrNilSource
				}
				rs = nonSeekable{r}
			}
			if named, ok := source.(interface{ Name() string }); ok {
				f.name = named.Name()
			}
			if c, ok := source.(io.Closer); ok {
				f.raw = c
			}
			if err := f.initRead(rs); err != nil {
				return nil, err
			}
		} else {
			w, ok := source.(io.Writer)
			if !ok {
				return nil, ErrNilSource
			}
			if named, ok := source.(interface{ Name() string }); ok {
				f.name = named.Name()
			}
			if c, ok := source.(io.Closer); ok {
				f.raw = c
			}
			f.initWrite(w)
		}
	}

	return f, nil
}

func (f *EncodedFile) initRead(src rawSeeker) error {
	dr, err := NewDecompressReader(src, f.opts)
	if err != nil {
		return err
	}
	f.dr = dr
	f.br = bufio.NewReader(dr)
	f.mode = modeRead
	return nil
}

func (f *EncodedFile) initWrite(w io.Writer) {
	enc, _ := NewEncoder(f.opts) // opts already validated by Open
	f.enc = enc
	f.w = w
	f.mode = modeWrite
}

// nonSeekable adapts a plain io.Reader so it satisfies rawSeeker, with
// Seek always failing. Read on a stream opened this way works as normal;
// Seeking the resulting EncodedFile reports ErrUnsupported.
type nonSeekable struct {
	io.Reader
}

func (nonSeekable) Seek(int64, int) (int64, error) { return 0, ErrUnsupported }

// Read implements io.Reader, decompressing as it goes.
func (f *EncodedFile) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return 0, ErrClosed
	}
	if f.mode != modeRead {
		return 0, ErrUnsupported
	}
	return f.br.Read(p)
}

// ReadByte reads a single decompressed byte.
func (f *EncodedFile) ReadByte() (byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return 0, ErrClosed
	}
	if f.mode != modeRead {
		return 0, ErrUnsupported
	}
	return f.br.ReadByte()
}

// ReadLine reads up to and including the next '\n', or to EOF. size caps
// how many bytes it will read before returning early even without having
// seen a '\n'; size < 0 means unbounded, matching streams.py's
// readline(size=-1).
func (f *EncodedFile) ReadLine(size int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return nil, ErrClosed
	}
	if f.mode != modeRead {
		return nil, ErrUnsupported
	}
	return f.readLineLocked(size)
}

// readLineLocked is ReadLine's body, callable from ReadLines without
// re-locking f.mu.
func (f *EncodedFile) readLineLocked(size int) ([]byte, error) {
	var line []byte
	for size < 0 || len(line) < size {
		b, err := f.br.ReadByte()
		if err != nil {
			if len(line) == 0 {
				return nil, err
			}
			if err == io.EOF {
				return line, nil
			}
			return line, err
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return line, nil
}

// ReadLines reads whole lines until the total bytes read reaches size, or
// to EOF if size < 0, matching streams.py's readlines(size=-1): size is a
// total-length hint, not a per-line cap, so a line that pushes the running
// total past size is still returned in full.
func (f *EncodedFile) ReadLines(size int) ([][]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return nil, ErrClosed
	}
	if f.mode != modeRead {
		return nil, ErrUnsupported
	}

	var lines [][]byte
	total := 0
	for {
		line, err := f.readLineLocked(-1)
		if len(line) > 0 {
			lines = append(lines, line)
			total += len(line)
		}
		if err != nil {
			if err == io.EOF {
				return lines, nil
			}
			return lines, err
		}
		if size >= 0 && total >= size {
			return lines, nil
		}
	}
}

// Read1 reads at most n bytes using at most one Read against the
// underlying DecompressReader when its buffer is empty (that one Read may
// itself pull several chunks of compressed input), mirroring
// streams.py's/io.BufferedReader's read1: prefer already-buffered bytes,
// only fall through to the raw stream once, and return empty only at
// EOF. n <= 0 uses the buffer's own size as a reasonable default.
func (f *EncodedFile) Read1(n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return nil, ErrClosed
	}
	if f.mode != modeRead {
		return nil, ErrUnsupported
	}
	if n <= 0 {
		n = f.br.Size()
	}
	buf := make([]byte, n)
	m, err := f.br.Read(buf)
	return buf[:m], err
}

// Peek returns the next n bytes without consuming them, per bufio.Reader.Peek.
func (f *EncodedFile) Peek(n int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return nil, ErrClosed
	}
	if f.mode != modeRead {
		return nil, ErrUnsupported
	}
	return f.br.Peek(n)
}

// Write implements io.Writer, compressing as it goes.
func (f *EncodedFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return 0, ErrClosed
	}
	if f.mode != modeWrite {
		return 0, ErrUnsupported
	}
	out, err := f.enc.Fill(p)
	if err != nil {
		return 0, err
	}
	if len(out) > 0 {
		if _, werr := f.w.Write(out); werr != nil {
			return 0, werr
		}
	}
	return len(p), nil
}

// WriteLines writes each element of lines in turn, exactly as given with
// no separator inserted between them - matching streams.py's writelines,
// which leaves it to the caller to include any trailing newlines.
func (f *EncodedFile) WriteLines(lines [][]byte) error {
	for _, line := range lines {
		if _, err := f.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Seek repositions a readable EncodedFile by decompressed offset. Only
// valid in read mode over a seekable underlying stream.
func (f *EncodedFile) Seek(offset int64, whence int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return 0, ErrClosed
	}
	if f.mode != modeRead {
		return 0, ErrUnsupported
	}
	if _, ok := f.dr.src.(nonSeekable); ok {
		return 0, ErrUnsupported
	}
	pos, err := f.dr.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	f.br.Reset(f.dr)
	return pos, nil
}

// Tell returns the current decompressed-stream position in read mode.
func (f *EncodedFile) Tell() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return 0, ErrClosed
	}
	if f.mode != modeRead {
		return 0, ErrUnsupported
	}
	return f.dr.Tell() - int64(f.br.Buffered()), nil
}

// Name returns the path EncodedFile was opened with, or whatever the
// wrapped stream's own Name() reported; empty if neither is available.
func (f *EncodedFile) Name() string {
	return f.name
}

// Seekable reports whether Seek can succeed: false for write mode and for
// read streams that were not given a genuine io.Seeker.
func (f *EncodedFile) Seekable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode != modeRead {
		return false
	}
	_, err := f.dr.src.Seek(0, io.SeekCurrent)
	return err == nil
}

// Close flushes any pending compressed output and closes the underlying
// stream if EncodedFile opened it itself. A second call is a no-op: only
// I/O methods other than Close itself report ErrClosed once closed.
func (f *EncodedFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == modeClosed {
		return nil
	}

	var err error
	if f.mode == modeWrite {
		tail, ferr := f.enc.Finish()
		if ferr != nil {
			err = ferr
		} else if len(tail) > 0 {
			if _, werr := f.w.Write(tail); werr != nil {
				err = werr
			}
		}
	} else if f.mode == modeRead {
		if derr := f.dr.Close(); derr != nil && err == nil {
			err = derr
		}
	}

	f.mode = modeClosed
	if f.owns && f.raw != nil {
		if cerr := f.raw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

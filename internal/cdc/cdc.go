// Package cdc implements FastCDC-style content-defined chunking: a gear-hash
// rolling hash that splits a byte stream on data-dependent boundaries so
// that inserting or removing bytes in one region of the stream does not
// reshuffle chunk boundaries elsewhere (spec.md §4.5).
package cdc

import (
	"fmt"
	"io"

	"github.com/iscc-community/iscc-core-go/internal/isccerr"
)

// Options configures the chunker's size bounds and boundary masks.
type Options struct {
	MinSize int
	AvgSize int
	MaxSize int
	MaskS   uint64
	MaskL   uint64
	// ReadSize is the size of each underlying Read call; it bounds how much
	// data crosses the io.Reader boundary at a time, not the chunk size.
	ReadSize int
}

// Chunker splits a byte stream into content-defined chunks. It holds fewer
// than MaxSize+ReadSize bytes in memory at any time, regardless of total
// stream length.
type Chunker struct {
	opts Options
	src  io.Reader
	buf  []byte // unconsumed bytes; fill stops topping up once len(buf) >= opts.MaxSize
	eof  bool
}

// NewChunker returns a Chunker reading from src with the given options.
func NewChunker(src io.Reader, opts Options) *Chunker {
	return &Chunker{opts: opts, src: src}
}

// Next returns the next chunk, or io.EOF once the stream is exhausted.
func (c *Chunker) Next() ([]byte, error) {
	if err := c.fill(); err != nil {
		return nil, err
	}
	if len(c.buf) == 0 {
		return nil, io.EOF
	}

	n := Boundary(c.buf, c.eof, c.opts)
	chunk := make([]byte, n)
	copy(chunk, c.buf[:n])
	c.buf = c.buf[n:]
	return chunk, nil
}

// fill tops the buffer up to MaxSize bytes, reading in ReadSize increments.
func (c *Chunker) fill() error {
	readSize := c.opts.ReadSize
	if readSize <= 0 {
		readSize = 64 * 1024
	}
	for !c.eof && len(c.buf) < c.opts.MaxSize {
		chunk := make([]byte, readSize)
		n, err := c.src.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
		}
		if err == io.EOF {
			c.eof = true
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", isccerr.ErrIO, err)
		}
		if n == 0 {
			c.eof = true
			break
		}
	}
	return nil
}

// Boundary finds the length of the first chunk in buf under opts. If eof is
// true, buf holds everything remaining in the stream, so no boundary found
// before len(buf) means "the rest of the stream is the last chunk" rather
// than forcing a cut at MaxSize.
func Boundary(buf []byte, eof bool, opts Options) int {
	n := len(buf)
	limit := opts.MaxSize
	if eof && n < limit {
		limit = n
	}
	if n <= opts.MinSize {
		return min(n, limit)
	}

	var h uint64
	for i := opts.MinSize; i < limit; i++ {
		h = (h << 1) + gearTable[buf[i]]
		if i < opts.AvgSize {
			if h&opts.MaskS == 0 {
				return i + 1
			}
		} else {
			if h&opts.MaskL == 0 {
				return i + 1
			}
		}
	}
	return limit
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package stream

import (
	"fmt"
	"io"

	"paritygen/internal/encoding"
	"paritygen/internal/errors"
	"paritygen/internal/parity"
)

// Encoder packs everything written to it and writes the encoded blocks to
// the underlying writer. Close must be called to flush and to detect a
// trailing partial block.
type Encoder struct {
	w     io.Writer
	mode  parity.Mode
	codec encoding.Codec

	raw    []byte // pending raw bytes; len is the pending count
	out    []byte
	total  int64
	err    error
	closed bool
}

// NewEncoder returns an Encoder writing to w with parity mode m.
func NewEncoder(w io.Writer, m parity.Mode, c encoding.Codec) *Encoder {
	return &Encoder{
		w:     w,
		mode:  m,
		codec: c,
		raw:   rawPool.Get()[:0],
		out:   encodedPool.Get(),
	}
}

// Write buffers p and encodes every complete chunk.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, fmt.Errorf("stream: write after close")
	}
	if e.err != nil {
		return 0, e.err
	}

	written := 0
	for len(p) > 0 {
		n := copy(e.raw[len(e.raw):cap(e.raw)], p)
		e.raw = e.raw[:len(e.raw)+n]
		p = p[n:]
		written += n
		e.total += int64(n)

		if len(e.raw) == cap(e.raw) {
			if err := e.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// flush encodes all whole blocks currently buffered and keeps any
// remainder at the front of the buffer.
func (e *Encoder) flush() error {
	whole := len(e.raw) - len(e.raw)%encoding.RawBlockSize
	if whole == 0 {
		return nil
	}

	n, err := e.codec.PackTo(e.out, e.raw[:whole], e.mode)
	if err != nil {
		e.err = err
		return err
	}
	if _, err := e.w.Write(e.out[:n]); err != nil {
		e.err = fmt.Errorf("stream: write encoded: %w", err)
		return e.err
	}

	rest := copy(e.raw, e.raw[whole:])
	e.raw = e.raw[:rest]
	return nil
}

// Close flushes buffered blocks and releases the encoder's buffers. If the
// total written is not a multiple of 8 bytes it returns a LengthError; the
// complete blocks before the remainder have already been written.
func (e *Encoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	defer e.release()

	if e.err != nil {
		return e.err
	}
	if err := e.flush(); err != nil {
		return err
	}
	if len(e.raw) != 0 {
		e.err = errors.NewLengthError("pack", int(e.total), encoding.RawBlockSize)
	}
	return e.err
}

// abort releases the encoder's buffers without writing what is still
// buffered. Later writes and Close fail.
func (e *Encoder) abort(err error) {
	if e.closed {
		return
	}
	e.closed = true
	e.err = err
	e.release()
}

func (e *Encoder) release() {
	rawPool.Put(e.raw)
	encodedPool.Put(e.out)
	e.raw, e.out = nil, nil
}

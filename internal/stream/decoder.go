package stream

import (
	"fmt"
	"io"

	"paritygen/internal/encoding"
	"paritygen/internal/errors"
)

// Decoder reads encoded blocks from an underlying reader and returns the
// raw bytes with parity stripped. Parity is not verified.
type Decoder struct {
	r     io.Reader
	codec encoding.Codec

	in      []byte
	out     []byte
	pending []byte // decoded bytes not yet returned by Read
	total   int64
	err     error // sticky; returned once pending is drained
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, c encoding.Codec) *Decoder {
	return &Decoder{
		r:     r,
		codec: c,
		in:    encodedPool.Get(),
		out:   rawPool.Get(),
	}
}

// Read fills p with decoded bytes. A stream ending inside a block returns a
// LengthError after all whole blocks have been delivered.
func (d *Decoder) Read(p []byte) (int, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

// fill reads one chunk and decodes its whole blocks into pending.
func (d *Decoder) fill() {
	if d.in == nil {
		d.err = fmt.Errorf("stream: read after close")
		return
	}

	n, err := io.ReadFull(d.r, d.in)
	d.total += int64(n)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		d.err = io.EOF
	default:
		d.err = fmt.Errorf("stream: read encoded: %w", err)
	}

	whole := n - n%encoding.EncodedBlockSize
	if n != whole && d.err == io.EOF {
		d.err = errors.NewLengthError("unpack", int(d.total), encoding.EncodedBlockSize)
	}
	if whole == 0 {
		return
	}

	m, uerr := d.codec.UnpackTo(d.out, d.in[:whole])
	if uerr != nil {
		d.err = uerr
		return
	}
	d.pending = d.out[:m]
}

// Close releases the decoder's buffers. It does not close the underlying reader.
func (d *Decoder) Close() error {
	if d.in != nil {
		encodedPool.Put(d.in)
		rawPool.Put(d.out)
		d.in, d.out, d.pending = nil, nil, nil
	}
	return nil
}

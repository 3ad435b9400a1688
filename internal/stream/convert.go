package stream

import (
	"context"
	"fmt"
	"io"
	"time"

	"paritygen/internal/encoding"
	"paritygen/internal/errors"
	"paritygen/internal/log"
	"paritygen/internal/parity"
	"paritygen/internal/util"
)

// Direction selects whether Convert packs or unpacks.
type Direction int

const (
	DirPack Direction = iota
	DirUnpack
)

func (d Direction) String() string {
	if d == DirUnpack {
		return "unpack"
	}
	return "pack"
}

// ProgressReporter receives progress updates during Convert.
type ProgressReporter interface {
	SetStatus(text string)                     // e.g. "Packing at 120.00 MiB/s (ETA: 00:00:03)"
	SetProgress(fraction float32, info string) // fraction in 0.0-1.0
	Update()                                   // redraw
}

// Options configures Convert.
type Options struct {
	Direction Direction
	Mode      parity.Mode // ignored when unpacking
	Codec     encoding.Codec
	Total     int64            // input size for progress; 0 if unknown
	Reporter  ProgressReporter // optional
}

// Result counts the bytes consumed and produced by Convert.
type Result struct {
	In  int64
	Out int64
}

// Convert streams src through the codec into dst until src is exhausted or
// ctx is cancelled. Cancellation is checked between chunks and reported as
// errors.ErrCancelled.
func Convert(ctx context.Context, dst io.Writer, src io.Reader, opts Options) (Result, error) {
	in := &countingReader{r: src}
	out := &countingWriter{w: dst}
	start := time.Now()

	var err error
	if opts.Direction == DirUnpack {
		err = unpackStream(ctx, out, in, opts, start)
	} else {
		err = packStream(ctx, out, in, opts, start)
	}

	res := Result{In: in.n, Out: out.n}
	if err != nil {
		log.Warn("stream conversion failed",
			log.String("direction", opts.Direction.String()),
			log.Int("in", int(res.In)),
			log.Err(err))
		return res, err
	}

	log.Info("stream converted",
		log.String("direction", opts.Direction.String()),
		log.Int("in", int(res.In)),
		log.Int("out", int(res.Out)),
		log.Duration("elapsed", time.Since(start)))
	return res, nil
}

func packStream(ctx context.Context, dst io.Writer, src *countingReader, opts Options, start time.Time) error {
	enc := NewEncoder(dst, opts.Mode, opts.Codec)
	buf := rawPool.Get()
	defer rawPool.Put(buf)

	for {
		if err := ctx.Err(); err != nil {
			cerr := fmt.Errorf("%w: %w", errors.ErrCancelled, err)
			enc.abort(cerr)
			return cerr
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			if _, err := enc.Write(buf[:n]); err != nil {
				_ = enc.Close()
				return err
			}
			report(opts, "Packing", src.n, start)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			rerr = fmt.Errorf("stream: read raw: %w", rerr)
			enc.abort(rerr)
			return rerr
		}
	}
	return enc.Close()
}

func unpackStream(ctx context.Context, dst io.Writer, src *countingReader, opts Options, start time.Time) error {
	dec := NewDecoder(src, opts.Codec)
	defer dec.Close()
	buf := rawPool.Get()
	defer rawPool.Put(buf)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrCancelled, err)
		}

		n, rerr := dec.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return fmt.Errorf("stream: write raw: %w", err)
			}
			report(opts, "Unpacking", src.n, start)
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return rerr
		}
	}
}

func report(opts Options, verb string, done int64, start time.Time) {
	if opts.Reporter == nil || opts.Total <= 0 {
		return
	}
	progress, speed, eta := util.Statify(done, opts.Total, start)
	opts.Reporter.SetProgress(progress, fmt.Sprintf("%.2f%%", progress*100))
	opts.Reporter.SetStatus(fmt.Sprintf("%s at %.2f MiB/s (ETA: %s)", verb, speed, eta))
	opts.Reporter.Update()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

package encoding

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"paritygen/internal/log"
	"paritygen/internal/parity"
)

// DefaultMinBlocks is the smallest number of blocks handed to one worker.
// Below this a goroutine costs more than the work it does.
const DefaultMinBlocks = 4096

// Codec packs and unpacks whole buffers, optionally spreading blocks across
// goroutines. Each worker writes only its own contiguous range of output
// blocks, so results are byte-identical to the serial path.
//
// The zero value is a serial codec.
type Codec struct {
	Workers   int // <= 1 means serial; use runtime.NumCPU() for all cores
	MinBlocks int // minimum blocks per worker; 0 means DefaultMinBlocks
}

var serial = Codec{Workers: 1}

// NewCodec returns a Codec using n workers. n <= 0 selects runtime.NumCPU().
func NewCodec(n int) Codec {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Codec{Workers: n}
}

// Pack is the Codec form of the package-level Pack.
func (c Codec) Pack(raw []byte, m parity.Mode) ([]byte, error) {
	if err := checkPack(raw, m); err != nil {
		return nil, err
	}
	out := make([]byte, PackedLen(len(raw)))
	_, err := c.PackTo(out, raw, m)
	return out, err
}

// PackTo encodes raw into dst and returns the number of bytes written.
// dst must hold at least PackedLen(len(raw)) bytes.
func (c Codec) PackTo(dst, raw []byte, m parity.Mode) (int, error) {
	if err := checkPack(raw, m); err != nil {
		return 0, err
	}
	n := PackedLen(len(raw))
	if len(dst) < n {
		return 0, fmt.Errorf("pack: need %d bytes of output, have %d: %w", n, len(dst), io.ErrShortBuffer)
	}

	start := time.Now()
	blocks := len(raw) / RawBlockSize
	workers := c.run(blocks, func(lo, hi int) {
		packRange(dst, raw, lo, hi, m)
	})

	log.Debug("pack",
		log.String("mode", m.String()),
		log.Int("in", len(raw)),
		log.Int("out", n),
		log.Int("blocks", blocks),
		log.Int("workers", workers),
		log.Duration("elapsed", time.Since(start)))
	return n, nil
}

// Unpack is the Codec form of the package-level Unpack.
func (c Codec) Unpack(encoded []byte) ([]byte, error) {
	if err := checkUnpack(encoded); err != nil {
		return nil, err
	}
	out := make([]byte, UnpackedLen(len(encoded)))
	_, err := c.UnpackTo(out, encoded)
	return out, err
}

// UnpackTo decodes encoded into dst and returns the number of bytes written.
// dst must hold at least UnpackedLen(len(encoded)) bytes.
func (c Codec) UnpackTo(dst, encoded []byte) (int, error) {
	if err := checkUnpack(encoded); err != nil {
		return 0, err
	}
	n := UnpackedLen(len(encoded))
	if len(dst) < n {
		return 0, fmt.Errorf("unpack: need %d bytes of output, have %d: %w", n, len(dst), io.ErrShortBuffer)
	}

	start := time.Now()
	blocks := len(encoded) / EncodedBlockSize
	workers := c.run(blocks, func(lo, hi int) {
		unpackRange(dst, encoded, lo, hi)
	})

	log.Debug("unpack",
		log.Int("in", len(encoded)),
		log.Int("out", n),
		log.Int("blocks", blocks),
		log.Int("workers", workers),
		log.Duration("elapsed", time.Since(start)))
	return n, nil
}

// run calls fn over [0, blocks) split into contiguous ranges and returns the
// number of ranges used.
func (c Codec) run(blocks int, fn func(lo, hi int)) int {
	workers := c.workersFor(blocks)
	if workers <= 1 {
		fn(0, blocks)
		return 1
	}

	per := (blocks + workers - 1) / workers
	var wg sync.WaitGroup
	n := 0
	for lo := 0; lo < blocks; lo += per {
		hi := min(lo+per, blocks)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
		n++
	}
	wg.Wait()
	return n
}

func (c Codec) workersFor(blocks int) int {
	minBlocks := c.MinBlocks
	if minBlocks <= 0 {
		minBlocks = DefaultMinBlocks
	}
	return max(1, min(c.Workers, blocks/minBlocks))
}

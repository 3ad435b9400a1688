// Package stream applies the parity codec to arbitrary io.Reader/io.Writer
// streams by buffering whole blocks.
//
// An Encoder accepts raw bytes in writes of any size and emits encoded
// blocks; a Decoder reads encoded blocks and yields raw bytes. Neither pads:
// a stream that does not end on a block boundary is reported as an
// errors.ErrInvalidLength failure when it ends.
package stream

import (
	"paritygen/internal/encoding"
	"paritygen/internal/util"
)

// ChunkBlocks is the number of blocks processed per chunk.
const ChunkBlocks = 8 * util.KiB

// Chunk sizes in bytes on the raw and encoded side.
const (
	RawChunkSize     = ChunkBlocks * encoding.RawBlockSize
	EncodedChunkSize = ChunkBlocks * encoding.EncodedBlockSize
)

var (
	rawPool     = util.NewBufferPool(RawChunkSize)
	encodedPool = util.NewBufferPool(EncodedChunkSize)
)

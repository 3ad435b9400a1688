package encoding

import (
	"paritygen/internal/errors"
	"paritygen/internal/log"
	"paritygen/internal/parity"
)

// Pack expands raw into len(raw)+len(raw)/8 bytes, inserting one parity bit
// per raw byte. len(raw) must be a multiple of RawBlockSize; otherwise a
// *errors.LengthError (matching errors.ErrInvalidLength) is returned and
// nothing is allocated. raw is never modified.
func Pack(raw []byte, m parity.Mode) ([]byte, error) {
	return serial.Pack(raw, m)
}

// Unpack contracts encoded into len(encoded)-len(encoded)/9 bytes, removing
// the embedded parity bits without verifying them. len(encoded) must be a
// multiple of EncodedBlockSize.
func Unpack(encoded []byte) ([]byte, error) {
	return serial.Unpack(encoded)
}

// PackedLen returns the encoded size of n raw bytes.
func PackedLen(n int) int {
	return n + n/RawBlockSize
}

// UnpackedLen returns the raw size of n encoded bytes.
func UnpackedLen(n int) int {
	return n - n/EncodedBlockSize
}

func checkPack(raw []byte, m parity.Mode) error {
	if len(raw)%RawBlockSize != 0 {
		return errors.NewLengthError("pack", len(raw), RawBlockSize)
	}
	if !m.Valid() {
		return errors.Wrap(errors.ErrInvalidMode, m.String())
	}
	return nil
}

func checkUnpack(encoded []byte) error {
	if len(encoded)%EncodedBlockSize != 0 {
		return errors.NewLengthError("unpack", len(encoded), EncodedBlockSize)
	}
	return nil
}

// packRange encodes raw blocks [lo, hi) of src into the matching blocks of dst.
func packRange(dst, src []byte, lo, hi int, m parity.Mode) {
	for b := lo; b < hi; b++ {
		in := (*[RawBlockSize]byte)(src[b*RawBlockSize:])
		out := (*[EncodedBlockSize]byte)(dst[b*EncodedBlockSize:])
		PackBlock(out, in, m)
	}
}

// unpackRange decodes encoded blocks [lo, hi) of src into the matching blocks of dst.
func unpackRange(dst, src []byte, lo, hi int) {
	for b := lo; b < hi; b++ {
		in := (*[EncodedBlockSize]byte)(src[b*EncodedBlockSize:])
		out := (*[RawBlockSize]byte)(dst[b*RawBlockSize:])
		UnpackBlock(out, in)
	}
}

// Verify reports the indices (into the decoded raw buffer) of bytes whose
// embedded parity bit does not match mode m. Unpack never calls it.
func Verify(encoded []byte, m parity.Mode) ([]int, error) {
	if err := checkUnpack(encoded); err != nil {
		return nil, err
	}
	if !m.Valid() {
		return nil, errors.Wrap(errors.ErrInvalidMode, m.String())
	}

	var bad []int
	var raw [RawBlockSize]byte
	for b := 0; b < len(encoded)/EncodedBlockSize; b++ {
		in := (*[EncodedBlockSize]byte)(encoded[b*EncodedBlockSize:])
		UnpackBlock(&raw, in)
		got := ParityBits(in)
		for k := range raw {
			if got[k] != parity.Bit(raw[k], m) {
				bad = append(bad, b*RawBlockSize+k)
			}
		}
	}

	if len(bad) > 0 {
		first := bad[0] / RawBlockSize * EncodedBlockSize
		log.Debug("parity mismatch",
			log.String("mode", m.String()),
			log.Int("count", len(bad)),
			log.Int("first", bad[0]),
			log.Hex("block", encoded[first:first+EncodedBlockSize]))
	}
	return bad, nil
}

// Package encoding packs raw bytes into a parity-carrying bit stream and back.
//
// Every raw byte is followed by its parity bit, and the resulting 9-bit
// symbols are laid out MSB-first. Eight raw bytes therefore fill exactly
// nine encoded bytes:
//
//	raw:     b0       b1       ...      b7
//	stream:  b0 P0 b1 P1 b2 P2 ... b7 P7   (72 bits)
//	encoded: e0 e1 e2 e3 e4 e5 e6 e7 e8
//
// Blocks are independent: the carry state resets at every block boundary, so
// encoding a buffer equals encoding each 8-byte block and concatenating.
//
// Unpacking strips the parity bits without checking them. Use Verify to
// inspect embedded parity separately.
package encoding

import "paritygen/internal/parity"

// Block sizes of the 8 -> 9 transform.
const (
	RawBlockSize     = 8
	EncodedBlockSize = 9
)

// packStep holds the fixed shift amounts used to build encoded byte j of a
// block from raw bytes j-1 (prev) and j (cur).
type packStep struct {
	carryShift  uint // prev << carryShift keeps prev's unplaced low bits at the top
	parityShift uint // bit position of parity(prev)
	dataShift   uint // cur >> dataShift places cur's high bits below the parity bit
}

// packSteps is indexed by encoded byte position. Entry 0 is unused because
// e0 is a verbatim copy of b0. At position 1 carryShift is 8, which clears
// prev entirely: b0 has no bits left to carry.
var packSteps = [EncodedBlockSize]packStep{
	1: {carryShift: 8, parityShift: 7, dataShift: 1},
	2: {carryShift: 7, parityShift: 6, dataShift: 2},
	3: {carryShift: 6, parityShift: 5, dataShift: 3},
	4: {carryShift: 5, parityShift: 4, dataShift: 4},
	5: {carryShift: 4, parityShift: 3, dataShift: 5},
	6: {carryShift: 3, parityShift: 2, dataShift: 6},
	7: {carryShift: 2, parityShift: 1, dataShift: 7},
	8: {carryShift: 1, parityShift: 0},
}

// unpackStep holds the shift amounts that rebuild raw byte k from encoded
// bytes k and k+1.
type unpackStep struct {
	hiShift uint // e[k] << hiShift drops the carry and parity bits ahead of b_k
	loShift uint // e[k+1] >> loShift recovers b_k's low bits
}

// unpackSteps is indexed by raw byte position. Entry 0 is unused because b0
// is a verbatim copy of e0.
var unpackSteps = [RawBlockSize]unpackStep{
	1: {hiShift: 1, loShift: 7},
	2: {hiShift: 2, loShift: 6},
	3: {hiShift: 3, loShift: 5},
	4: {hiShift: 4, loShift: 4},
	5: {hiShift: 5, loShift: 3},
	6: {hiShift: 6, loShift: 2},
	7: {hiShift: 7, loShift: 1},
}

// PackBlock encodes one raw block into dst.
func PackBlock(dst *[EncodedBlockSize]byte, src *[RawBlockSize]byte, m parity.Mode) {
	dst[0] = src[0]
	for j := 1; j < RawBlockSize; j++ {
		s := packSteps[j]
		prev, cur := src[j-1], src[j]
		dst[j] = prev<<s.carryShift | parity.Bit(prev, m)<<s.parityShift | cur>>s.dataShift
	}

	// The last encoded byte has no raw byte of its own: only b7's low seven
	// bits and its parity bit remain.
	s := packSteps[RawBlockSize]
	last := src[RawBlockSize-1]
	dst[RawBlockSize] = last<<s.carryShift | parity.Bit(last, m)<<s.parityShift
}

// UnpackBlock decodes one encoded block into dst, discarding parity bits.
func UnpackBlock(dst *[RawBlockSize]byte, src *[EncodedBlockSize]byte) {
	dst[0] = src[0]
	for k := 1; k < RawBlockSize; k++ {
		s := unpackSteps[k]
		dst[k] = src[k]<<s.hiShift | src[k+1]>>s.loShift
	}
}

// ParityBits returns the parity bit embedded after each raw byte of an
// encoded block. The bit for raw byte k sits at position 7-k of e[k+1].
func ParityBits(src *[EncodedBlockSize]byte) [RawBlockSize]byte {
	var out [RawBlockSize]byte
	for k := 0; k < RawBlockSize; k++ {
		out[k] = src[k+1] >> packSteps[k+1].parityShift & 1
	}
	return out
}

// Package parity computes the single parity bit that accompanies each raw
// byte in a packed stream.
//
// Odd parity makes the total number of set bits (byte plus parity bit) odd,
// even parity makes it even. Both predicates are total over all 256 byte
// values and have no error conditions.
package parity

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mode selects which parity predicate is applied to a whole buffer.
type Mode int

const (
	Odd Mode = iota
	Even
)

func (m Mode) String() string {
	switch m {
	case Odd:
		return "odd"
	case Even:
		return "even"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Odd or Even.
func (m Mode) Valid() bool {
	return m == Odd || m == Even
}

// ParseMode converts "odd" or "even" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "odd":
		return Odd, nil
	case "even":
		return Even, nil
	default:
		return 0, fmt.Errorf("unknown parity mode %q (must be odd or even)", s)
	}
}

// OddBit returns the bit that makes popcount(b)+bit odd.
func OddBit(b byte) byte {
	return EvenBit(b) ^ 1
}

// EvenBit returns the bit that makes popcount(b)+bit even.
func EvenBit(b byte) byte {
	return byte(bits.OnesCount8(b) & 1)
}

// Bit returns the parity bit of b under mode m. Any mode other than Even is
// treated as Odd.
func Bit(b byte, m Mode) byte {
	if m == Even {
		return EvenBit(b)
	}
	return OddBit(b)
}

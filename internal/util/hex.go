package util

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"paritygen/internal/errors"
)

// ParseHexTokens converts tokens such as "F7", "0x21" or "a" into bytes.
// Each token must hold one or two hex digits after an optional 0x prefix.
// The first bad token is reported as a *errors.ValidationError wrapping
// errors.ErrInvalidHex.
func ParseHexTokens(tokens []string) ([]byte, error) {
	out := make([]byte, len(tokens))
	for i, tok := range tokens {
		digits := tok
		if len(tok) >= 2 && (tok[:2] == "0x" || tok[:2] == "0X") {
			digits = tok[2:]
		}
		if len(digits) == 0 || len(digits) > 2 {
			return nil, invalidHex(i, tok)
		}
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return nil, invalidHex(i, tok)
		}
		out[i] = byte(v)
	}
	return out, nil
}

func invalidHex(i int, tok string) error {
	return &errors.ValidationError{
		Field:   fmt.Sprintf("byte %d", i+1),
		Message: fmt.Sprintf("%q is not a hex byte (expected 00-FF)", tok),
		Err:     errors.ErrInvalidHex,
	}
}

// ReadHexTokens splits everything readable from r into whitespace-separated
// tokens.
func ReadHexTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading hex input: %w", err)
	}
	return tokens, nil
}

// FormatHex renders b as space-separated, two-digit uppercase hex.
func FormatHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	perrors "paritygen/internal/errors"
)

func TestParseHexTokens(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []byte
	}{
		{"empty", nil, []byte{}},
		{"upper", []string{"F7", "21"}, []byte{0xF7, 0x21}},
		{"lower", []string{"fc", "8f"}, []byte{0xFC, 0x8F}},
		{"single digit", []string{"0", "a"}, []byte{0x00, 0x0A}},
		{"prefixed", []string{"0x10", "0XFF", "0x0a"}, []byte{0x10, 0xFF, 0x0A}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexTokens(tt.tokens)
			if err != nil {
				t.Fatalf("ParseHexTokens(%v): %v", tt.tokens, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParseHexTokens(%v) = %X; want %X", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestParseHexTokensInvalid(t *testing.T) {
	tests := []struct {
		tokens []string
		field  string
	}{
		{[]string{"zz"}, "byte 1"},
		{[]string{"00", "100"}, "byte 2"},
		{[]string{"00", "11", "0x"}, "byte 3"},
		{[]string{""}, "byte 1"},
		{[]string{"-1"}, "byte 1"},
		{[]string{"+f"}, "byte 1"},
		// Only one prefix is stripped.
		{[]string{"0x0XA"}, "byte 1"},
		{[]string{"01", "0X0xff"}, "byte 2"},
		{[]string{"0x0x1"}, "byte 1"},
	}

	for _, tt := range tests {
		_, err := ParseHexTokens(tt.tokens)
		if !errors.Is(err, perrors.ErrInvalidHex) {
			t.Errorf("ParseHexTokens(%q) error = %v; want ErrInvalidHex", tt.tokens, err)
			continue
		}
		var ve *perrors.ValidationError
		if !errors.As(err, &ve) || ve.Field != tt.field {
			t.Errorf("ParseHexTokens(%q) field = %v; want %s", tt.tokens, err, tt.field)
		}
	}
}

func TestReadHexTokens(t *testing.T) {
	got, err := ReadHexTokens(strings.NewReader("F7 21\n\t73  98\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"F7", "21", "73", "98"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ReadHexTokens = %v; want %v", got, want)
	}

	got, err = ReadHexTokens(strings.NewReader("   \n"))
	if err != nil || len(got) != 0 {
		t.Errorf("blank input = %v, %v; want no tokens", got, err)
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x0A}, "0A"},
		{[]byte{0xF7, 0x10, 0xDC}, "F7 10 DC"},
	}
	for _, tt := range tests {
		if got := FormatHex(tt.in); got != tt.want {
			t.Errorf("FormatHex(%X) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := []byte{0x00, 0x7F, 0x80, 0xFF}
	got, err := ParseHexTokens(strings.Fields(FormatHex(in)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, in) {
		t.Errorf("round trip = %X; want %X", got, in)
	}
}

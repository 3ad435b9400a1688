package parity

import (
	"math/bits"
	"testing"
)

func TestPredicatesAllBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		odd, even := OddBit(b), EvenBit(b)

		if odd > 1 || even > 1 {
			t.Fatalf("byte %#02x: parity bits must be 0 or 1, got odd=%d even=%d", b, odd, even)
		}
		if odd == even {
			t.Errorf("byte %#02x: odd and even parity should differ", b)
		}
		if (bits.OnesCount8(b)+int(odd))%2 != 1 {
			t.Errorf("byte %#02x: popcount+odd parity should be odd", b)
		}
		if (bits.OnesCount8(b)+int(even))%2 != 0 {
			t.Errorf("byte %#02x: popcount+even parity should be even", b)
		}
		if Bit(b, Odd) != odd || Bit(b, Even) != even {
			t.Errorf("byte %#02x: Bit disagrees with predicates", b)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		in   byte
		odd  byte
		even byte
	}{
		{0x00, 1, 0},
		{0xFF, 1, 0},
		{0x01, 0, 1},
		{0xF7, 0, 1},
		{0x21, 1, 0},
		{0x73, 0, 1},
	}
	for _, tt := range tests {
		if got := OddBit(tt.in); got != tt.odd {
			t.Errorf("OddBit(%#02x) = %d; want %d", tt.in, got, tt.odd)
		}
		if got := EvenBit(tt.in); got != tt.even {
			t.Errorf("EvenBit(%#02x) = %d; want %d", tt.in, got, tt.even)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"odd", Odd, false},
		{"EVEN", Even, false},
		{" Odd ", Odd, false},
		{"remove", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMode(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if Odd.String() != "odd" || Even.String() != "even" {
		t.Errorf("unexpected mode names: %s, %s", Odd, Even)
	}
	if Mode(7).Valid() {
		t.Error("Mode(7) should not be valid")
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("unexpected name for unknown mode: %s", Mode(7))
	}
}

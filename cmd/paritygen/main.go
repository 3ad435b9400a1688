// paritygen adds and removes per-byte parity bits in a packed bit stream.
//
// Every 8 raw bytes become 9 encoded bytes: each byte is followed by its odd
// or even parity bit and the 9-bit symbols are packed MSB-first. Removing
// parity reverses the packing without checking the parity bits.
//
// Usage:
//
//	paritygen odd    XX XX XX XX ...
//	paritygen even   XX XX XX XX ...
//	paritygen remove XX XX XX XX ...
package main

import (
	"os"

	"paritygen/internal/cli"
)

// version is reported by --version.
const version = "v0.3"

func main() {
	os.Exit(cli.Execute(version))
}

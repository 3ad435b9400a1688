// Package util provides helpers shared by the paritygen CLI and stream layer.
//
// This package contains:
//   - Size constants (KiB, MiB, GiB, TiB) for byte calculations
//   - Hex token parsing and formatting for command-line byte input
//   - Progress, speed and size formatting for file conversions
//   - A pool of chunk buffers for streaming
//
// All utilities are stateless and safe for concurrent use.
package util

// Size constants for byte calculations
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
	TiB = 1 << 40
)

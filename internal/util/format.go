package util

import (
	"fmt"
	"time"
)

// Statify converts processed bytes, total bytes and a start time into a
// progress fraction (0.0-1.0), a speed in MiB/s and an "HH:MM:SS" ETA.
func Statify(done, total int64, start time.Time) (float32, float64, string) {
	if total <= 0 {
		return 0, 0, Timeify(0)
	}

	progress := min(float32(done)/float32(total), 1)

	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 || done <= 0 {
		return progress, 0, Timeify(0)
	}

	bytesPerSec := float64(done) / elapsed
	eta := int(float64(max(total-done, 0)) / bytesPerSec)
	return progress, bytesPerSec / MiB, Timeify(eta)
}

// Timeify converts seconds to "HH:MM:SS"; negative input clamps to zero.
func Timeify(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// Sizeify converts bytes to a human-readable string (B, KiB, MiB, GiB, TiB).
func Sizeify(size int64) string {
	switch {
	case size >= TiB:
		return fmt.Sprintf("%.2f TiB", float64(size)/TiB)
	case size >= GiB:
		return fmt.Sprintf("%.2f GiB", float64(size)/GiB)
	case size >= MiB:
		return fmt.Sprintf("%.2f MiB", float64(size)/MiB)
	case size >= KiB:
		return fmt.Sprintf("%.2f KiB", float64(size)/KiB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}

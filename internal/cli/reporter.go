// Package cli provides the paritygen command-line interface.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Reporter implements stream.ProgressReporter for terminal output.
// It displays progress updates on a single line that gets overwritten.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	status   string
	progress float32
	info     string
	quiet    bool
	lastLine int // Length of last printed line (for clearing)
}

// NewReporter creates a reporter writing to out (normally stderr).
// If quiet is true, only errors are printed.
func NewReporter(out io.Writer, quiet bool) *Reporter {
	return &Reporter{out: out, quiet: quiet}
}

// SetStatus updates the status message.
func (r *Reporter) SetStatus(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = text
}

// SetProgress updates the progress bar and info text.
func (r *Reporter) SetProgress(fraction float32, info string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = fraction
	r.info = info
}

// Update redraws the progress line.
func (r *Reporter) Update() {
	if r.quiet {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	const barWidth = 30
	filled := max(0, min(int(r.progress*barWidth), barWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	// [████████░░░░░░░░░░░░░░░░░░░░░░] 25.00% | Packing at 150.00 MiB/s (ETA: 00:00:05)
	line := fmt.Sprintf("\r[%s] %s | %s", bar, r.info, r.status)

	// Clear previous line if it was longer
	if len(line) < r.lastLine {
		line += strings.Repeat(" ", r.lastLine-len(line))
	}
	r.lastLine = len(line)

	fmt.Fprint(r.out, line)
}

// Finish moves past the progress line if one was drawn.
func (r *Reporter) Finish() {
	if !r.quiet && r.lastLine > 0 {
		fmt.Fprintln(r.out)
	}
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	fmt.Fprintf(r.out, "Error: "+format+"\n", args...)
}

// PrintWarning prints a warning unless quiet.
func (r *Reporter) PrintWarning(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "Warning: "+format+"\n", args...)
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

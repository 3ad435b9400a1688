package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" console ", FormatConsole, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestZerologLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, FormatJSON)

	logger.Debug("filtered")
	logger.WithFields(String("op", "pack")).Info("done", Int("blocks", 4))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one JSON line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	checks := map[string]any{
		"level":   "info",
		"message": "done",
		"app":     "paritygen",
		"op":      "pack",
		"blocks":  float64(4),
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("%s = %v; want %v", k, entry[k], want)
		}
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry should carry a timestamp")
	}
}

func TestZerologLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("also kept", Err(nil))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("Info should be filtered at Warn level")
	}
	if !strings.Contains(out, `"message":"kept"`) || !strings.Contains(out, `"level":"error"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelDebug, FormatConsole).Debug("unpack", Int("out", 8))

	out := buf.String()
	if !strings.Contains(out, "unpack") || !strings.Contains(out, "out=8") {
		t.Errorf("unexpected console output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("non-stderr writers should not receive colour codes")
	}
}

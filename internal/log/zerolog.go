package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how log entries are encoded.
type Format int

const (
	FormatText    Format = iota // time LEVEL msg k=v
	FormatJSON                  // one zerolog JSON object per entry
	FormatConsole               // zerolog console writer
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text", "json" or "console" to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q (must be text, json or console)", s)
	}
}

// New returns a logger for out in the given format.
func New(out io.Writer, level Level, format Format) Logger {
	switch format {
	case FormatJSON:
		return NewZerologLogger(out, level)
	case FormatConsole:
		return NewZerologLogger(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    out != os.Stderr,
		}, level)
	default:
		return NewLineLogger(out, level)
	}
}

// zeroLogger adapts a zerolog.Logger to Logger.
type zeroLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a logger that encodes entries with zerolog.
// out receives JSON unless it is a zerolog.ConsoleWriter.
func NewZerologLogger(out io.Writer, level Level) Logger {
	zl := zerolog.New(out).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Str("app", "paritygen").
		Logger()
	return &zeroLogger{zl: zl}
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// emit is a no-op for a nil event, which zerolog returns for filtered levels.
func emit(e *zerolog.Event, msg string, fields []Field) {
	if e == nil {
		return
	}
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	e.Msg(msg)
}

func (z *zeroLogger) Debug(msg string, fields ...Field) { emit(z.zl.Debug(), msg, fields) }
func (z *zeroLogger) Info(msg string, fields ...Field)  { emit(z.zl.Info(), msg, fields) }
func (z *zeroLogger) Warn(msg string, fields ...Field)  { emit(z.zl.Warn(), msg, fields) }
func (z *zeroLogger) Error(msg string, fields ...Field) { emit(z.zl.Error(), msg, fields) }

func (z *zeroLogger) WithFields(fields ...Field) Logger {
	ctx := z.zl.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &zeroLogger{zl: ctx.Logger()}
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/balkashynov/studyplay/internal/settings"
)

// LogFile is the log file name inside the data directory.
const LogFile = "studyplay.log"

// New returns a structured logger writing to the data directory, since the
// terminal belongs to the TUI. If the file cannot be opened it logs to
// stderr. The returned closer is never nil.
func New(s *settings.Settings) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if err := os.MkdirAll(s.DataDir, 0755); err == nil {
		f, err := os.OpenFile(filepath.Join(s.DataDir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			out, closer = f, f
		}
	}
	return NewWithWriter(out, s.Log), closer
}

// NewWithWriter builds a logger for the given level and format.
func NewWithWriter(w io.Writer, cfg settings.LogSettings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a settings level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Package audit writes an append-only JSON-lines log of notable events.
package audit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger appends structured audit events to a log file.
type Logger struct {
	f   *os.File
	log *slog.Logger
}

// Open creates or appends to the audit log in the given directory.
func Open(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating audit dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "audit.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}

	return &Logger{
		f:   f,
		log: slog.New(slog.NewJSONHandler(f, nil)),
	}, nil
}

// Event records a single audit event with a unique id. Extra key/value
// pairs are appended as attributes.
func (l *Logger) Event(event string, args ...any) {
	attrs := append([]any{"event_id", uuid.NewString(), "event", event}, args...)
	l.log.Info(event, attrs...)
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	return l.f.Close()
}

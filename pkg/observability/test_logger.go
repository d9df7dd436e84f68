package observability

import (
	"context"
	"sync"
	"time"
)

type testLogCore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger captures entries in memory for assertions. Loggers derived via
// WithField/WithFields share the same entry sink.
type TestLogger struct {
	core   *testLogCore
	fields map[string]any
}

var _ StructuredLogger = (*TestLogger)(nil)

// NewTestLogger returns a logger that records every entry.
func NewTestLogger() *TestLogger {
	return &TestLogger{core: &testLogCore{}}
}

// Entries returns a copy of everything logged so far.
func (l *TestLogger) Entries() []LogEntry {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	out := make([]LogEntry, len(l.core.entries))
	copy(out, l.core.entries)
	return out
}

func (l *TestLogger) record(level, message string, fields []map[string]any) {
	merged := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, m := range fields {
		for k, v := range m {
			merged[k] = v
		}
	}

	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.entries = append(l.core.entries, LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    merged,
	})
}

func (l *TestLogger) Debug(message string, fields ...map[string]any) { l.record("debug", message, fields) }
func (l *TestLogger) Info(message string, fields ...map[string]any)  { l.record("info", message, fields) }
func (l *TestLogger) Warn(message string, fields ...map[string]any)  { l.record("warn", message, fields) }
func (l *TestLogger) Error(message string, fields ...map[string]any) { l.record("error", message, fields) }

func (l *TestLogger) WithField(key string, value any) StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *TestLogger) WithFields(fields map[string]any) StructuredLogger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{core: l.core, fields: merged}
}

func (l *TestLogger) Flush(_ context.Context) error { return nil }
func (l *TestLogger) Close() error                  { return nil }

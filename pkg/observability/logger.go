package observability

import (
	"context"
	"time"
)

// LogEntry represents a structured log entry.
//
// This type is intentionally small and stable so implementations can adapt
// it to their backend.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// StructuredLogger is the logging surface used across gatetheory.
//
// It mirrors a message + map-of-fields shape so implementations can provide
// stronger guarantees (buffering, redaction, lifecycle) without changing
// call sites.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	Flush(ctx context.Context) error
	Close() error
}

package zap

import (
	"context"
	"os"
	"strings"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/gatetheory/pkg/observability"
)

// Option configures the zap-backed logger.
type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
	level     string
}

// WithZapLogger supplies a pre-built zap logger instead of the default
// JSON-to-stderr configuration.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// WithLevel sets the minimum level: debug, info, warn, or error.
func WithLevel(level string) Option {
	return func(opts *loggerOptions) {
		opts.level = level
	}
}

// Logger adapts zap to observability.StructuredLogger.
type Logger struct {
	log    *ubzap.Logger
	fields map[string]any
}

var _ observability.StructuredLogger = (*Logger)(nil)

// New builds a structured logger backed by zap.
func New(opts ...Option) *Logger {
	options := loggerOptions{level: "info"}
	for _, opt := range opts {
		opt(&options)
	}

	log := options.zapLogger
	if log == nil {
		encoderCfg := ubzap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			parseLevel(options.level),
		)
		log = ubzap.New(core)
	}
	return &Logger{log: log}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) zapFields(fields []map[string]any) []ubzap.Field {
	out := make([]ubzap.Field, 0, len(l.fields)+len(fields))
	for k, v := range l.fields {
		out = append(out, ubzap.Any(k, v))
	}
	for _, m := range fields {
		for k, v := range m {
			out = append(out, ubzap.Any(k, v))
		}
	}
	return out
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.log.Debug(message, l.zapFields(fields)...)
}

func (l *Logger) Info(message string, fields ...map[string]any) {
	l.log.Info(message, l.zapFields(fields)...)
}

func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.log.Warn(message, l.zapFields(fields)...)
}

func (l *Logger) Error(message string, fields ...map[string]any) {
	l.log.Error(message, l.zapFields(fields)...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{log: l.log, fields: merged}
}

func (l *Logger) Flush(_ context.Context) error {
	// Sync on stderr returns ENOTTY-style errors on some platforms; those
	// are not actionable for callers.
	_ = l.log.Sync()
	return nil
}

func (l *Logger) Close() error {
	_ = l.log.Sync()
	return nil
}

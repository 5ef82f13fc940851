// Package logger provides a zap-based application logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger writes.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts the active trace id from a context, or returns "".
type TraceIDFn func(ctx context.Context) string

// Logger writes JSON records tagged with the service name and trace id.
type Logger struct {
	z       *zap.Logger
	traceID TraceIDFn
}

// New constructs a Logger writing to w at the given level.
func New(w io.Writer, level Level, service string, traceID TraceIDFn) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).With(zap.String("service", service))
	return &Logger{z: z, traceID: traceID}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// ParseLevel maps debug, info, warn or error to a Level. Empty input yields def.
func ParseLevel(s string, def Level) (Level, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return def, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return l, nil
}

// Debug writes a debug-level record with the given key/value pairs.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelDebug, msg, kv)
}

// Info writes an info-level record with the given key/value pairs.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelInfo, msg, kv)
}

// Warn writes a warn-level record with the given key/value pairs.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelWarn, msg, kv)
}

// Error writes an error-level record with the given key/value pairs.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelError, msg, kv)
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) write(ctx context.Context, level Level, msg string, kv []any) {
	if !l.z.Core().Enabled(level) {
		return
	}
	if l.traceID != nil {
		if id := l.traceID(ctx); id != "" {
			kv = append(kv, "trace_id", id)
		}
	}

	sugar := l.z.Sugar()
	switch level {
	case LevelDebug:
		sugar.Debugw(msg, kv...)
	case LevelInfo:
		sugar.Infow(msg, kv...)
	case LevelWarn:
		sugar.Warnw(msg, kv...)
	default:
		sugar.Errorw(msg, kv...)
	}
}

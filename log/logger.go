// Package log provides structured logging with run context.
//
// Entries are JSON lines on stderr. Every entry carries the run_id and,
// when known, the input the run reads.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pithecene-io/rangemap/types"
)

// Logger provides structured logging with run context.
// All log entries include the run_id and input fields.
type Logger struct {
	zap     *zap.Logger
	level   zapcore.Level
	context []zap.Field
}

// ParseLevel converts a level name (debug, info, warn, error) into a zap
// level. Empty selects info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", s)
	}
	return lvl, nil
}

// NewLogger creates a new logger with run context.
// Output defaults to os.Stderr.
func NewLogger(runMeta *types.RunMeta, level zapcore.Level) *Logger {
	return newLoggerWithWriter(runMeta, level, os.Stderr)
}

func newCore(w io.Writer, level zapcore.Level) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
}

// WithOutput returns a new logger with a different output writer.
// The run context fields are carried over.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return &Logger{
		zap:     zap.New(newCore(w, l.level)).With(l.context...),
		level:   l.level,
		context: l.context,
	}
}

// newLoggerWithWriter creates a logger writing to the specified writer.
func newLoggerWithWriter(runMeta *types.RunMeta, level zapcore.Level, w io.Writer) *Logger {
	contextFields := []zap.Field{
		zap.String("run_id", runMeta.RunID),
	}
	if runMeta.Input != "" {
		contextFields = append(contextFields, zap.String("input", runMeta.Input))
	}

	zapLogger := zap.New(newCore(w, level)).With(contextFields...)
	return &Logger{zap: zapLogger, level: level, context: contextFields}
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl zapcore.Level) bool {
	return l.zap.Core().Enabled(lvl)
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields map[string]any) {
	l.zap.Debug(message, zap.Any("fields", fields))
}

// Info logs an info message.
func (l *Logger) Info(message string, fields map[string]any) {
	l.zap.Info(message, zap.Any("fields", fields))
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields map[string]any) {
	l.zap.Warn(message, zap.Any("fields", fields))
}

// Error logs an error message.
func (l *Logger) Error(message string, fields map[string]any) {
	l.zap.Error(message, zap.Any("fields", fields))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

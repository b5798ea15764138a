// Package logger provides structured logging for the gradebook.
// It supports log levels, structured fields, and context propagation,
// and is backed by zap.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log message.
type Level = zapcore.Level

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug = zapcore.DebugLevel
	// LevelInfo is for general operational information.
	LevelInfo = zapcore.InfoLevel
	// LevelWarn is for warning messages.
	LevelWarn = zapcore.WarnLevel
	// LevelError is for error messages.
	LevelError = zapcore.ErrorLevel
)

// ParseLevel parses a string into a Level. Unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field represents a key-value pair for structured logging.
type Field = zap.Field

// Common field constructors for convenience.
func String(key, value string) Field          { return zap.String(key, value) }
func Int(key string, value int) Field         { return zap.Int(key, value) }
func Float64(key string, value float64) Field { return zap.Float64(key, value) }

// Err creates an error field.
func Err(err error) Field {
	return zap.Error(err)
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Format selects the log encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Logger is the main logger struct.
type Logger struct {
	zl *zap.Logger
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	Format    Format
	AddCaller bool
}

// New creates a new Logger with the given options. A nil Output writes to
// stderr so logs never interleave with interactive output.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	enc := zapcore.NewJSONEncoder(encCfg)
	if opts.Format == FormatConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), zap.NewAtomicLevelAt(opts.Level))

	var zopts []zap.Option
	if opts.AddCaller {
		zopts = append(zopts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &Logger{zl: zap.New(core, zopts...)}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// With returns a new Logger with the given fields added.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.zl.Debug(msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) {
	l.zl.Info(msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.zl.Warn(msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	l.zl.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// Context key for logger.
type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or returns a no-op logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Nop()
}

// SessionIDKey is the field key for per-session tracing.
const SessionIDKey = "session_id"

// WithSessionID returns a logger with the session ID field added.
func (l *Logger) WithSessionID(sessionID string) *Logger {
	return l.With(String(SessionIDKey, sessionID))
}

// Gradebook logging helpers.
func StudentID(id string) Field     { return String("student_id", id) }
func CourseName(name string) Field  { return String("course_name", name) }
func Path(p string) Field           { return String("path", p) }
func RecordCount(n int) Field       { return Int("record_count", n) }
func Component(name string) Field   { return String("component", name) }
func Operation(name string) Field   { return String("operation", name) }
func Latency(d time.Duration) Field { return Duration("latency", d) }

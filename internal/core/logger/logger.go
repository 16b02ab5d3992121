package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

var globalLogger Logger = &noopLogger{}

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelFatal: 4,
}

// ParseLevel accepts level names in any case and falls back to INFO.
func ParseLevel(s string) LogLevel {
	level := LogLevel(strings.ToUpper(s))
	if _, ok := levelRank[level]; !ok {
		return LogLevelInfo
	}
	return level
}

type options struct {
	output io.Writer
	level  LogLevel
}

type Option func(*options)

// WithOutput sets where the text logger writes. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithLevel drops entries below level.
func WithLevel(level LogLevel) Option {
	return func(o *options) { o.level = level }
}

type leveledLogger struct {
	Logger
	min int
}

func (l *leveledLogger) Log(ctx context.Context, entry LogEntry) {
	if levelRank[entry.Level] < l.min {
		return
	}
	l.Logger.Log(ctx, entry)
}

func newLogEntry(level LogLevel, message string, err error, attrs attributes) LogEntry {
	return LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	}
}

func Debug(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelDebug, message, nil, attrs))
}

func Info(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelInfo, message, nil, attrs))
}

func Warn(ctx context.Context, message string, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelWarn, message, nil, attrs))
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelError, message, err, attrs))
}

func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	globalLogger.Log(ctx, newLogEntry(LogLevelFatal, message, err, attrs))
}

func Log(ctx context.Context, entry LogEntry) {
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

func Initialize(collectorEndpoint, serviceName string, isProduction bool, opts ...Option) error {
	o := options{output: os.Stdout, level: LogLevelDebug}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		l   Logger
		err error
	)

	if isProduction {
		l, err = initializeOtelLogger(collectorEndpoint, serviceName)
		if err != nil {
			return err
		}
		if o.level != LogLevelDebug {
			l = &leveledLogger{Logger: l, min: levelRank[o.level]}
		}
	} else {
		l = newTextLogger(serviceName, o)
	}

	globalLogger = l
	return nil
}

package logger

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"slices"
)

var slogLevels = map[LogLevel]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
	LogLevelFatal: slog.LevelError,
}

// textLogger writes key=value lines. Attributes are sorted so that lines
// for the same event always read the same way.
type textLogger struct {
	logger *slog.Logger
}

func newTextLogger(serviceName string, o options) Logger {
	handler := slog.NewTextHandler(o.output, &slog.HandlerOptions{Level: slogLevels[o.level]})
	return &textLogger{
		logger: slog.New(handler).With(slog.String("service", serviceName)),
	}
}

func (l *textLogger) Log(ctx context.Context, entry LogEntry) {
	keys := slices.Sorted(maps.Keys(entry.Attributes))

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, entry.Attributes[key]))
	}
	if entry.Error != nil {
		attrs = append(attrs, slog.String("error", entry.Error.Error()))
	}

	l.logger.LogAttrs(ctx, slogLevels[entry.Level], entry.Message, attrs...)
	if entry.Level == LogLevelFatal {
		os.Exit(1)
	}
}

func (l *textLogger) Shutdown(context.Context) error {
	return nil
}

type noopLogger struct{}

func (noopLogger) Log(context.Context, LogEntry)  {}
func (noopLogger) Shutdown(context.Context) error { return nil }

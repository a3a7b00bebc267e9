package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simple-container-com/pg-init/pkg/api/logger/color"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

const DefaultLogLevel = LogLevelInfo

type Logger interface {
	Error(ctx context.Context, format string, a ...any)
	Warn(ctx context.Context, format string, a ...any)
	Info(ctx context.Context, format string, a ...any)
	Debug(ctx context.Context, format string, a ...any)

	SetLogLevel(ctx context.Context, level LogLevel) context.Context
}

type (
	logLevelKey  struct{}
	logPrefixKey struct{}
)

type logger struct {
	out io.Writer
}

func New() Logger {
	return &logger{out: os.Stdout}
}

// NewWithWriter is used by tests and by callers that want output somewhere other than stdout.
func NewWithWriter(out io.Writer) Logger {
	return &logger{out: out}
}

// ParseLogLevel maps a textual level to LogLevel, falling back to DefaultLogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return DefaultLogLevel
	}
}

// WithPrefix returns a context whose log lines are prefixed with the given value,
// e.g. the lambda request id.
func WithPrefix(ctx context.Context, prefix string) context.Context {
	return context.WithValue(ctx, logPrefixKey{}, prefix)
}

func (l *logger) SetLogLevel(ctx context.Context, level LogLevel) context.Context {
	return context.WithValue(ctx, logLevelKey{}, level)
}

func levelFrom(ctx context.Context) LogLevel {
	if ctx == nil {
		return DefaultLogLevel
	}
	if level, ok := ctx.Value(logLevelKey{}).(LogLevel); ok {
		return level
	}
	return DefaultLogLevel
}

func (l *logger) print(ctx context.Context, level LogLevel, label string, format string, a ...any) {
	if level < levelFrom(ctx) {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if ctx != nil {
		if prefix, ok := ctx.Value(logPrefixKey{}).(string); ok && prefix != "" {
			msg = "[" + prefix + "] " + msg
		}
	}
	_, _ = fmt.Fprintln(l.out, label+": "+msg)
}

func (l *logger) Error(ctx context.Context, format string, a ...any) {
	l.print(ctx, LogLevelError, color.RedFmt("ERROR"), format, a...)
}

func (l *logger) Warn(ctx context.Context, format string, a ...any) {
	l.print(ctx, LogLevelWarn, color.Yellow("WARN"), format, a...)
}

func (l *logger) Info(ctx context.Context, format string, a ...any) {
	l.print(ctx, LogLevelInfo, "INFO", format, a...)
}

func (l *logger) Debug(ctx context.Context, format string, a ...any) {
	l.print(ctx, LogLevelDebug, "DEBUG", format, a...)
}

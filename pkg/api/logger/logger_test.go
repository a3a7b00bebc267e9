package logger

import (
	"bytes"
	"context"
	"testing"

	. "github.com/onsi/gomega"
)

func TestLogger_levels(t *testing.T) {
	RegisterTestingT(t)

	testCases := []struct {
		name      string
		level     LogLevel
		expect    []string
		notExpect []string
	}{
		{
			name:   "default level hides debug",
			level:  DefaultLogLevel,
			expect: []string{"info message", "warn message", "error message"},
			notExpect: []string{
				"debug message",
			},
		},
		{
			name:   "debug shows everything",
			level:  LogLevelDebug,
			expect: []string{"debug message", "info message", "warn message", "error message"},
		},
		{
			name:      "error shows only errors",
			level:     LogLevelError,
			expect:    []string{"error message"},
			notExpect: []string{"debug message", "info message", "warn message"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := NewWithWriter(buf)
			ctx := l.SetLogLevel(context.Background(), tc.level)

			l.Debug(ctx, "debug %s", "message")
			l.Info(ctx, "info %s", "message")
			l.Warn(ctx, "warn %s", "message")
			l.Error(ctx, "error %s", "message")

			for _, s := range tc.expect {
				Expect(buf.String()).To(ContainSubstring(s))
			}
			for _, s := range tc.notExpect {
				Expect(buf.String()).ToNot(ContainSubstring(s))
			}
		})
	}
}

func TestLogger_prefix(t *testing.T) {
	RegisterTestingT(t)

	buf := &bytes.Buffer{}
	l := NewWithWriter(buf)
	ctx := WithPrefix(context.Background(), "req-42")

	l.Info(ctx, "hello")

	Expect(buf.String()).To(Equal("INFO: [req-42] hello\n"))
}

func TestParseLogLevel(t *testing.T) {
	RegisterTestingT(t)

	Expect(ParseLogLevel("DEBUG")).To(Equal(LogLevelDebug))
	Expect(ParseLogLevel(" warning ")).To(Equal(LogLevelWarn))
	Expect(ParseLogLevel("error")).To(Equal(LogLevelError))
	Expect(ParseLogLevel("")).To(Equal(DefaultLogLevel))
	Expect(ParseLogLevel("verbose")).To(Equal(DefaultLogLevel))
}

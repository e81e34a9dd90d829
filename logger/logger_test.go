package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/dispatch/logger"
)

func newObserved(level zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.FromZap(zap.New(core)), logs
}

func TestNoopLogger(t *testing.T) {
	noopLog := logger.NewNoopLogger()

	var _ logger.Logger = noopLog

	assert.NotPanics(t, func() {
		noopLog.Debug("debug")
		noopLog.Info("info", logger.String("k", "v"))
		noopLog.Warn("warn")
		noopLog.Error("error")
		_ = noopLog.Named("x").With(logger.Int("n", 1)).Sync()
	})
}

func TestNewLogger(t *testing.T) {
	l, err := logger.NewLogger(logger.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	l, err = logger.NewLogger(logger.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestLogger_WithContext(t *testing.T) {
	l, logs := newObserved(zapcore.DebugLevel)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithTraceID(ctx, "trace-1")

	l.WithContext(ctx).Info("handled", logger.HTTPStatus(200))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.EqualValues(t, 200, fields["http.status"])
}

func TestLogger_WithContextEmpty(t *testing.T) {
	l, logs := newObserved(zapcore.DebugLevel)

	l.WithContext(context.Background()).Warn("plain")

	require.Equal(t, 1, logs.Len())
	assert.Empty(t, logs.All()[0].Context)
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, logs := newObserved(zapcore.WarnLevel)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept")

	assert.Equal(t, 2, logs.FilterMessage("kept").Len())
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
}

func TestLogger_Named(t *testing.T) {
	l, logs := newObserved(zapcore.DebugLevel)

	l.Named("routing").Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "routing", logs.All()[0].LoggerName)
}

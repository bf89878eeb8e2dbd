package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestWithoutContext(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(Logger, string)
		expectedLevel zapcore.Level
	}{
		{name: "Info", log: func(l Logger, m string) { l.Info(m) }, expectedLevel: zapcore.InfoLevel},
		{name: "Debug", log: func(l Logger, m string) { l.Debug(m) }, expectedLevel: zapcore.DebugLevel},
		{name: "Warn", log: func(l Logger, m string) { l.Warn(m) }, expectedLevel: zapcore.WarnLevel},
		{name: "Error", log: func(l Logger, m string) { l.Error(m) }, expectedLevel: zapcore.ErrorLevel},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dut, logs := NewObserverLogger("debug")
			const testMessage = "ABC"
			tc.log(dut, testMessage)

			require.Equal(t, 1, logs.Len())
			actualMessage := logs.All()[0]
			require.Equal(t, testMessage, actualMessage.Message)
			require.Equal(t, map[string]interface{}{}, actualMessage.ContextMap())
			require.Equal(t, tc.expectedLevel, actualMessage.Level)
		})
	}
}

func TestWithContext(t *testing.T) {
	ctx := ContextWithFields(context.Background(), zap.String("run_id", "01ABC"))
	ctx = ContextWithFields(ctx, zap.String("query", "set.1"))

	for _, tc := range []struct {
		name          string
		log           func(Logger, context.Context, string)
		expectedLevel zapcore.Level
	}{
		{name: "InfoWithContext", log: func(l Logger, c context.Context, m string) { l.InfoWithContext(c, m) }, expectedLevel: zapcore.InfoLevel},
		{name: "DebugWithContext", log: func(l Logger, c context.Context, m string) { l.DebugWithContext(c, m) }, expectedLevel: zapcore.DebugLevel},
		{name: "WarnWithContext", log: func(l Logger, c context.Context, m string) { l.WarnWithContext(c, m) }, expectedLevel: zapcore.WarnLevel},
		{name: "ErrorWithContext", log: func(l Logger, c context.Context, m string) { l.ErrorWithContext(c, m) }, expectedLevel: zapcore.ErrorLevel},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dut, logs := NewObserverLogger("debug")
			tc.log(dut, ctx, "ABC")

			require.Equal(t, 1, logs.Len())
			actualMessage := logs.All()[0]
			require.Equal(t, map[string]interface{}{"run_id": "01ABC", "query": "set.1"}, actualMessage.ContextMap())
			require.Equal(t, tc.expectedLevel, actualMessage.Level)
		})
	}

	t.Run("no_fields_in_context", func(t *testing.T) {
		dut, logs := NewObserverLogger("debug")
		dut.InfoWithContext(context.Background(), "ABC", zap.Int("n", 1))
		require.Equal(t, map[string]interface{}{"n": int64(1)}, logs.All()[0].ContextMap())
	})
}

func TestWithFields(t *testing.T) {
	logger, logs := NewObserverLogger("debug")

	child := logger.With(zap.String("TestOption", "Message"))
	child.Info("ABC")
	logger.Info("DEF")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, map[string]interface{}{"TestOption": "Message"}, logs.All()[0].ContextMap())
	require.Equal(t, map[string]interface{}{}, logs.All()[1].ContextMap())
}

func TestObserverLevel(t *testing.T) {
	logger, logs := NewObserverLogger("warn")
	logger.Info("skipped")
	logger.Warn("kept")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestNewLogger(t *testing.T) {
	t.Run("none_is_noop", func(t *testing.T) {
		l, err := NewLogger("text", "none")
		require.NoError(t, err)
		require.NotNil(t, l)
	})

	t.Run("formats", func(t *testing.T) {
		for _, format := range []string{"text", "json"} {
			l, err := NewLogger(format, "debug")
			require.NoError(t, err)
			require.True(t, l.Core().Enabled(zapcore.DebugLevel))
		}
	})

	t.Run("unknown_level", func(t *testing.T) {
		_, err := NewLogger("text", "verbose")
		require.ErrorContains(t, err, "unknown log level")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := NewLogger("xml", "info")
		require.ErrorContains(t, err, "unknown log format")
	})

	t.Run("must_panics", func(t *testing.T) {
		require.Panics(t, func() { MustNewLogger("text", "verbose") })
	})
}

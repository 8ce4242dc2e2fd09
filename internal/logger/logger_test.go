package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"panic": zapcore.PanicLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestToContext_RoundTrip ensures a logger stored in a context is returned as-is.
func TestToContext_RoundTrip(t *testing.T) {
	t.Parallel()

	l := zap.NewNop().Sugar()
	ctx := ToContext(context.Background(), l)

	require.Same(t, l, FromContext(ctx))
}

// TestWithName_DerivesScopedLogger checks that WithName replaces the context logger.
func TestWithName_DerivesScopedLogger(t *testing.T) {
	t.Parallel()

	ctx := ToContext(context.Background(), zap.NewNop().Sugar())
	named := WithName(ctx, "wake-server")

	require.NotSame(t, FromContext(ctx), FromContext(named))
}

// TestWithKV_DerivesScopedLogger checks that WithKV replaces the context logger.
func TestWithKV_DerivesScopedLogger(t *testing.T) {
	t.Parallel()

	ctx := ToContext(context.Background(), zap.NewNop().Sugar())
	scoped := WithKV(ctx, "token_id", "01J0TESTTOKEN")

	require.NotSame(t, FromContext(ctx), FromContext(scoped))
}

// TestWithLevel_RestrictsCore verifies the option produces a core gated at the requested level.
func TestWithLevel_RestrictsCore(t *testing.T) {
	t.Parallel()

	l := New(zap.NewAtomicLevelAt(zap.DebugLevel), WithLevel(zapcore.ErrorLevel))

	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
}

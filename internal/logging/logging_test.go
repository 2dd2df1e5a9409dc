package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unitconv.log")

	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zap.DebugLevel))
	require.NoError(t, logger.Sync())
	require.FileExists(t, path)
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	logger, err := New(Config{Level: "chatty", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zap.InfoLevel))
	require.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsUnwritableOutput(t *testing.T) {
	_, err := New(Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	custom := zap.New(core)

	ctx := WithLogger(context.Background(), custom)
	FromContext(ctx).Info("converted", zap.String("domain", "length"))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "length", logs.All()[0].ContextMap()["domain"])

	require.Same(t, Logger, FromContext(context.Background()))
}

func TestSetLogger(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { SetLogger(previous) })

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	Debug("debug")
	Warn("warn")
	Error("error")
	With(zap.String("component", "server")).Info("listening")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, "server", logs.FilterMessage("listening").All()[0].ContextMap()["component"])
	require.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

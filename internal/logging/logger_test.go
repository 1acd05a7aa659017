package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "development")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("warn", "production")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud", "production")
	assert.Error(t, err)
}

func TestLogger_CarriesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithRequestID(context.Background(), "req-123")

	l := For(ctx, zap.New(core))
	l.LogInfo("add_project", "project created", zap.String("project_id", "p1"))
	l.LogError("drop", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 2)

	info := entries[0].ContextMap()
	assert.Equal(t, "req-123", info["request_id"])
	assert.Equal(t, "add_project", info["operation"])
	assert.Equal(t, "p1", info["project_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestLogger_DefaultsWithoutContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	For(context.Background(), zap.New(core)).LogWarn("op", "careful")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "unknown", logs.All()[0].ContextMap()["request_id"])

	assert.NotPanics(t, func() { For(context.Background(), nil).LogInfo("op", "nop") })
}

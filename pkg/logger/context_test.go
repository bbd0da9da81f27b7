package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"posadmin/pkg/logger"
)

func TestFromContextPrefersAttachedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithContext(context.Background(), zap.New(core))

	logger.FromContext(ctx, zap.NewNop()).Info("through context")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "through context", logs.All()[0].Message)
}

func TestFromContextFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	logger.FromContext(context.Background(), zap.New(core)).Info("fallback")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "fallback", logs.All()[0].Message)
}

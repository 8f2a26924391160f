package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWritesRotatedFiles(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(LogConfig{Level: "debug", Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("voices listed")
	logger.Error("store failed")
	_ = logger.Sync()

	combined, err := os.ReadFile(filepath.Join(dir, "combined.log"))
	require.NoError(t, err)
	assert.Contains(t, string(combined), "voices listed")
	assert.Contains(t, string(combined), "store failed")

	errorsOnly, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errorsOnly), "voices listed")
	assert.Contains(t, string(errorsOnly), ServiceName)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, FromContext(ctx))

	named := zap.NewExample().Named("req")
	ctx = WithLogger(WithRequestID(ctx, "abc"), named)

	assert.Same(t, named, FromContext(ctx))
	assert.Equal(t, "abc", GetRequestID(ctx))
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("debug")
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Sync() })

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New("error")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("chatty")
	require.ErrorContains(t, err, "failed to parse log level")
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, enc := range []string{"json", "console", ""} {
		log, err := New("warn", enc)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	}
}

func TestLevels(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, toZapLevel("debug"))
	assert.Equal(t, zap.ErrorLevel, toZapLevel("error"))
	assert.Equal(t, zap.InfoLevel, toZapLevel("verbose"))
}

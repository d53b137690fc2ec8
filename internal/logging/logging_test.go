package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		verbose bool
		debug   bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		log, err := New(tt.verbose)
		require.NoError(t, err)
		assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	}
}

func TestNop(t *testing.T) {
	assert.False(t, Nop().Core().Enabled(zapcore.ErrorLevel))
}

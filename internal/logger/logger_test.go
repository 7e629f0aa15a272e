package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err)
			assert.NotNil(t, Log)
			assert.IsType(t, &zap.SugaredLogger{}, Log)

			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-level")
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerWritesBeforeInit(t *testing.T) {
	// a nop core reports Enabled=false for every level; the pre-Init
	// default must be a real logger so config parse failures are visible
	assert.True(t, sugar.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, sugar.Desugar().Core().Enabled(zapcore.FatalLevel))
}

func TestInitAcceptsBadLevel(t *testing.T) {
	Init("not-a-level", "")
	assert.True(t, sugar.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, sugar.Desugar().Core().Enabled(zapcore.DebugLevel))
}

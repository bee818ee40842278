package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"space-fighter/internal/config"
)

func TestBuildConfig_Level(t *testing.T) {
	zapConfig := buildConfig(config.LogSettings{Level: "debug", Format: "json"})
	assert.Equal(t, zapcore.DebugLevel, zapConfig.Level.Level())
	assert.Equal(t, "json", zapConfig.Encoding)
}

func TestBuildConfig_UnknownLevelFallsBackToInfo(t *testing.T) {
	zapConfig := buildConfig(config.LogSettings{Level: "loud", Development: true})
	assert.Equal(t, zapcore.InfoLevel, zapConfig.Level.Level())
	assert.Equal(t, "console", zapConfig.Encoding)
	assert.True(t, zapConfig.Development)
}

func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := NewFileLogger(config.LogSettings{Level: "info", Format: "json"}, path)
	require.NoError(t, err)

	logger.Info("match started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "match started")
}

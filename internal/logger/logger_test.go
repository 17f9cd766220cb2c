package logger

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestSetupRotationDefaults(t *testing.T) {
	closer, err := Setup(Options{Level: "info", File: filepath.Join(t.TempDir(), "api.log")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = closer.Close()
		log.SetOutput(os.Stdout)
	})

	rotator, ok := closer.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, 50, rotator.MaxSize)
	assert.Equal(t, 5, rotator.MaxBackups)
	assert.Equal(t, 14, rotator.MaxAge)
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")

	closer, err := Setup(Options{Level: "debug", JSON: true, File: path, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 3})
	require.NoError(t, err)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(log.InfoLevel)
	})

	log.WithField("component", "test").Info("hello")
	require.NoError(t, closer.Close())

	rotator, ok := closer.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, 1, rotator.MaxSize)
	assert.Equal(t, 2, rotator.MaxBackups)
	assert.Equal(t, 3, rotator.MaxAge)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/internal/logging"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(config.Log{Level: "info", File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.Log{Level: "loud"})
	require.Error(t, err)
}

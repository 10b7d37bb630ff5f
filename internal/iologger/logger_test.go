package iologger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herbdata/herbario/internal/iologger"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileDestination(t *testing.T) {
	errorsDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "error",
		Destination: "file",
	}

	log, closeFn, err := iologger.New(errorsDir, cfg)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Error("species detail request failed", "id", 42)
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(errorsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t,
		filepath.Ext(entries[0].Name()) == ".log",
		"log file should carry a .log extension")

	data, err := os.ReadFile(filepath.Join(errorsDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "species detail request failed")
	assert.Contains(t, string(data), "id=42")
	assert.Contains(t, string(data), "source=",
		"entries should carry their origin")
	assert.Contains(t, string(data), "logger_test.go",
		"origin should name the call site file")
}

func TestNew_LevelFiltering(t *testing.T) {
	errorsDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "error",
		Destination: "file",
	}

	log, closeFn, err := iologger.New(errorsDir, cfg)
	require.NoError(t, err)

	log.Info("not interesting")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(errorsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Zero(t, info.Size(),
		"info entries are filtered at the error level")
}

func TestNew_StdoutDestination(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "stdout",
	}

	log, closeFn, err := iologger.New(t.TempDir(), cfg)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NoError(t, closeFn(), "terminal destinations close without error")
}

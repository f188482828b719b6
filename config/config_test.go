package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/dev/rfcomm0", cfg.Printer.Device)
	assert.Equal(t, 60, cfg.Printer.ReadTimeoutSeconds)
	assert.Equal(t, 300, cfg.Printer.FeedPadding)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Logger.EnableConsole)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperang.yaml")
	yaml := `
printer:
  device: /dev/rfcomm3
  heatDensity: 90
logger:
  level: debug
  filePath: /tmp/paperang.log
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/rfcomm3", cfg.Printer.Device)
	assert.Equal(t, 90, cfg.Printer.HeatDensity)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "/tmp/paperang.log", cfg.Logger.FilePath)

	// Untouched keys keep their defaults.
	assert.Equal(t, 115200, cfg.Printer.Baud)
	assert.Equal(t, 300, cfg.Printer.FeedPadding)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

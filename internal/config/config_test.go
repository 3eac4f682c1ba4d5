package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		AssetsDir:  DefaultAssetsDir,
		Renderer:   RendererAuto,
		LogLevel:   "info",
		LogFormat:  "console",
		ListenAddr: DefaultListenAddr,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
assets_dir: /opt/linver/assets
renderer: tui
log_level: debug
os_release_path: /tmp/os-release
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/linver/assets", cfg.AssetsDir)
	assert.Equal(t, RendererTerminal, cfg.Renderer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/os-release", cfg.OSReleasePath)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "renderer: tui\n")
	t.Setenv("LINVER_RENDERER", "gtk")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, RendererGTK, cfg.Renderer)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, RendererAuto, cfg.Renderer)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "renderer: [unterminated\n")

	_, err := Load(viper.New(), path)
	assert.Error(t, err)
}

func TestLoadInvalidRenderer(t *testing.T) {
	path := writeConfig(t, "renderer: qt\n")

	_, err := Load(viper.New(), path)
	assert.ErrorContains(t, err, "invalid renderer")
}

func TestValidateLogFormat(t *testing.T) {
	cfg := Config{Renderer: RendererAuto, LogFormat: "xml"}
	assert.ErrorContains(t, cfg.Validate(), "invalid log format")
}

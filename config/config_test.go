package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
from = "en"
to = "zh"
formats = ["%s\n", "%1s -> %0s\n"]
collapse_runs = 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.From)
	assert.Equal(t, "zh", cfg.To)
	assert.Equal(t, []string{"%s\n", "%1s -> %0s\n"}, cfg.Formats)
	assert.Equal(t, 0, cfg.CollapseRuns)
	// Absent fields keep their defaults.
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
from: jp
timeout_seconds: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jp", cfg.From)
	assert.Equal(t, "auto", cfg.To)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, 2, cfg.CollapseRuns)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "from=en")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "config.toml", "collapse_runs = -1")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collapse_runs")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "auto", cfg.From)
	assert.Equal(t, "auto", cfg.To)
	assert.Empty(t, cfg.Formats)
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, "", DefaultPath())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fanyi"), 0o755))
	path := filepath.Join(dir, "fanyi", "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("from = \"en\""), 0o644))
	assert.Equal(t, path, DefaultPath())
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "collapse_runs")
	assert.Contains(t, string(data), "fanyi configuration")
}

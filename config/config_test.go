// ABOUTME: Tests for config layering: defaults, config file, and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultSamplesDir, cfg.SamplesDir)
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Empty(t, cfg.StaticDir)
	assert.Empty(t, cfg.Catalog)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "bridgeplay.yaml", `
addr: 0.0.0.0:7860
samples_dir: /srv/samples
static_dir: /srv/static
title: Demo Hub
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7860", cfg.Addr)
	assert.Equal(t, "/srv/samples", cfg.SamplesDir)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.Equal(t, "Demo Hub", cfg.Title)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := writeFile(t, "bridgeplay.yaml", "addr: 0.0.0.0:7860\n")
	t.Setenv("BRIDGEPLAY_ADDR", "127.0.0.1:9000")
	t.Setenv("BRIDGEPLAY_SAMPLES_DIR", "/tmp/samples")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/tmp/samples", cfg.SamplesDir)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Config{Addr: ":2389", SamplesDir: "samples"}.Validate())

	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr")
	assert.Contains(t, err.Error(), "samples_dir")
}

func TestLoadRejectsEmptyAddr(t *testing.T) {
	v := New()
	v.Set(KeyAddr, " ")

	_, err := Load(v, "")
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	c, err := Config{}.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"bridge", "fullscreen"}, c.IDs())

	path := writeFile(t, "catalog.yaml", "solo:\n  label: Solo\n  filename: solo.html\n")
	c, err = Config{Catalog: path}.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, c.IDs())

	_, err = Config{Catalog: filepath.Join(t.TempDir(), "nope.yaml")}.LoadCatalog()
	assert.Error(t, err)
}

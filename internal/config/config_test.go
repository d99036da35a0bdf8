package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".treeconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /srv/projects\nroot_name: scaffold\nplain: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects", cfg.OutputDir)
	assert.Equal(t, "scaffold", cfg.RootName)
	assert.True(t, cfg.Plain)
	assert.Equal(t, "0755", cfg.DirPerm, "unset keys keep their defaults")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".treeconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".treeconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /from/file\n"), 0o644))

	t.Setenv("TREECONV_OUT", "/from/env")
	t.Setenv("TREECONV_PLAIN", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.OutputDir)
	assert.True(t, cfg.Plain)
}

func TestParsePerm(t *testing.T) {
	mode, err := ParsePerm("0755", 0o644)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), mode)

	mode, err = ParsePerm("", 0o644)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), mode, "empty string falls back")

	_, err = ParsePerm("rwx", 0o644)
	assert.Error(t, err)
}

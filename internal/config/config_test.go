package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/patternforge/internal/errors"
)

func TestLoad_MissingFile_ConfigNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestLoad_PartialFile_FilledFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest: out\nlayout: base\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.Dest)
	require.Equal(t, "base", cfg.Layout)
	require.Equal(t, "block", cfg.BlockLayout)
	require.Equal(t, []string{"src/materials/**/*.html"}, cfg.Materials)
	require.Equal(t, "materials", cfg.Keys.Materials)
	require.Equal(t, 2, cfg.Format.Indent)
}

func TestLoad_KeysRenamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keys:\n  materials: patterns\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "patterns", cfg.Keys.Materials)
	require.Equal(t, "views", cfg.Keys.Views)
}

func TestLoad_InvalidYAML_ConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\tdest: x\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestLoad_EnvOverride_DestWins(t *testing.T) {
	t.Setenv("PATTERNFORGE_DEST", "env-out")
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest: file-out\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "env-out", cfg.Dest)
}

func TestStarter_ParsesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(Starter), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

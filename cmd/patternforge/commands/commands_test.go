package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	cmd := &InitCmd{}

	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: path}))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "layouts:")
}

func TestInitCmd_ExistingFileWithoutForce_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patternforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := (&InitCmd{}).Run(&Global{}, &CLI{Config: path})
	require.Error(t, err)

	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, &CLI{Config: path}))
}

func TestScanCmd_ListsCollectionsSorted(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"materials/widgets/chart.html",
		"materials/components/button.html",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("<div></div>\n"), 0o644))
	}

	cfgPath := filepath.Join(root, "patternforge.yaml")
	cfgYAML := fmt.Sprintf("materials:\n  - %s/materials/**/*.html\n", filepath.ToSlash(root))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	var buf bytes.Buffer
	cmd := &ScanCmd{out: &buf}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: cfgPath}))

	require.Contains(t, buf.String(), "materials (2) collections: components, widgets")
	require.Contains(t, buf.String(), "button  (button)")
}

func TestParseLogLevel_VerboseWinsOverEnv(t *testing.T) {
	t.Setenv("PATTERNFORGE_LOG_LEVEL", "error")
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))
}

func TestParseLogLevel_EnvValues(t *testing.T) {
	t.Setenv("PATTERNFORGE_LOG_LEVEL", "warn")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))

	t.Setenv("PATTERNFORGE_LOG_LEVEL", "")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
}

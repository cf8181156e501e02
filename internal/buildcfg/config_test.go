package buildcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smdgithub/hybuild/internal/model"
)

// writeBuildConfig drops a build configuration file into dir and
// returns dir for convenience.
func writeBuildConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BuildConfigFile), []byte(content), 0o644))
	return dir
}

func TestLoadBuildConfig_PlainJSON(t *testing.T) {
	root := writeBuildConfig(t, t.TempDir(), `{
	  "project": {"name": "shopping-app"},
	  "apps": [
	    {"name": "app", "outDir": "www"},
	    {"name": "kiosk", "outDir": "dist/kiosk"}
	  ]
	}`)

	cfg, err := LoadBuildConfig(root)
	require.NoError(t, err)

	require.Len(t, cfg.Apps, 2)
	assert.Equal(t, "www", cfg.Apps[0].OutDir)
	assert.Equal(t, []string{"www", "dist/kiosk"}, cfg.OutDirs())
}

// TestLoadBuildConfig_JSONC verifies comments and trailing commas are
// tolerated — the file is hand-edited in real projects.
func TestLoadBuildConfig_JSONC(t *testing.T) {
	root := writeBuildConfig(t, t.TempDir(), `{
	  // build output goes here
	  "apps": [
	    {"outDir": "www"}, /* primary app */
	  ],
	}`)

	cfg, err := LoadBuildConfig(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"www"}, cfg.OutDirs())
}

func TestLoadBuildConfig_NotFound(t *testing.T) {
	_, err := LoadBuildConfig(t.TempDir())
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestLoadBuildConfig_Malformed(t *testing.T) {
	root := writeBuildConfig(t, t.TempDir(), `{"apps": [`)

	_, err := LoadBuildConfig(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestOutDirs_DeduplicatesAndSkipsEmpty(t *testing.T) {
	cfg := &BuildConfig{Apps: []AppConfig{
		{OutDir: "www"},
		{OutDir: ""},
		{OutDir: "www"},
		{OutDir: "dist"},
	}}
	assert.Equal(t, []string{"www", "dist"}, cfg.OutDirs())
}

func TestLoadToolRC_MissingFileIsZeroValue(t *testing.T) {
	rc, err := LoadToolRC(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ToolRC{}, rc)

	pm, err := rc.ResolvePackageManager()
	require.NoError(t, err)
	assert.Equal(t, model.PackageManagerNPM, pm)
}

func TestLoadToolRC_FullFile(t *testing.T) {
	dir := t.TempDir()
	content := `
packageManager: yarn
exportFile: src/config/env.json
clean:
  extraPaths:
    - .gradle
    - node_modules/.cache
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ToolRCFile), []byte(content), 0o644))

	rc, err := LoadToolRC(dir)
	require.NoError(t, err)

	pm, err := rc.ResolvePackageManager()
	require.NoError(t, err)
	assert.Equal(t, model.PackageManagerYarn, pm)
	assert.Equal(t, "src/config/env.json", rc.ExportFile)
	assert.Equal(t, []string{".gradle", "node_modules/.cache"}, rc.Clean.ExtraPaths)
}

func TestLoadToolRC_InvalidPackageManager(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ToolRCFile), []byte("packageManager: bower\n"), 0o644))

	rc, err := LoadToolRC(dir)
	require.NoError(t, err)

	_, err = rc.ResolvePackageManager()
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestLoadToolRC_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ToolRCFile), []byte("packageManager: [oops\n"), 0o644))

	_, err := LoadToolRC(dir)
	assert.Error(t, err)
}

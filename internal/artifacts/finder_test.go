package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and its parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindAppBuilds_BothPlatforms(t *testing.T) {
	root := t.TempDir()
	apk := filepath.Join(root, "platforms/android/app/build/outputs/apk/release/app-release.apk")
	ipa := filepath.Join(root, "platforms/ios/build/device/MyApp.ipa")
	writeFile(t, apk, "apk-bytes")
	writeFile(t, ipa, "ipa-bytes")

	// Files outside the fixed patterns must not match.
	writeFile(t, filepath.Join(root, "platforms/android/app/build/outputs/bundle/release/app.aab"), "aab")
	writeFile(t, filepath.Join(root, "platforms/ios/build/emulator/MyApp.app"), "app")

	builds, err := FindAppBuilds(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{apk, ipa}, builds)
}

func TestFindAppBuilds_NoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "platforms/android"), 0o755))

	builds, err := FindAppBuilds(root)
	require.NoError(t, err)
	assert.Empty(t, builds)
}

func TestFindAppBuilds_MultipleVariants(t *testing.T) {
	root := t.TempDir()
	debug := filepath.Join(root, "platforms/android/app/build/outputs/apk/debug/app-debug.apk")
	release := filepath.Join(root, "platforms/android/app/build/outputs/apk/release/app-release.apk")
	writeFile(t, debug, "debug")
	writeFile(t, release, "release")

	builds, err := FindAppBuilds(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{debug, release}, builds)
}

func TestCopyBuilds_CreatesDestAndCopies(t *testing.T) {
	root := t.TempDir()
	apk := filepath.Join(root, "app-release.apk")
	writeFile(t, apk, "apk-bytes")

	dest := filepath.Join(root, "out", "builds")
	require.NoError(t, CopyBuilds([]string{apk}, dest))

	copied, err := os.ReadFile(filepath.Join(dest, "app-release.apk"))
	require.NoError(t, err)
	assert.Equal(t, "apk-bytes", string(copied))
}

func TestCopyBuilds_OverwritesExisting(t *testing.T) {
	root := t.TempDir()
	apk := filepath.Join(root, "app.apk")
	writeFile(t, apk, "fresh")

	dest := filepath.Join(root, "dest")
	writeFile(t, filepath.Join(dest, "app.apk"), "stale")

	require.NoError(t, CopyBuilds([]string{apk}, dest))

	copied, err := os.ReadFile(filepath.Join(dest, "app.apk"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(copied))
}

func TestCopyBuilds_MissingSourceFails(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	err := CopyBuilds([]string{"/no/such/app.apk"}, dest)
	assert.Error(t, err)

	// The destination is still created before the copy is attempted —
	// matching the documented behavior that DEST may exist even when
	// the copy step fails.
	_, statErr := os.Stat(dest)
	assert.NoError(t, statErr)
}

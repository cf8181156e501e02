package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smdgithub/hybuild/internal/model"
)

const fixtureManifest = `{
  "name": "phonegap-plugin-push",
  "version": "2.1.3",
  "description": "Register and receive push notifications",
  "peerDependencies": {
    "cordova-android": "6.3.0",
    "cordova-ios": ">=4.4.0"
  },
  "engines": {
    "cordovaDependencies": {
      "2.0.0": {"cordova-android": ">=6.3.0"}
    }
  },
  "keywords": ["ecosystem:cordova", "cordova-android", "cordova-ios"]
}`

// writeManifest drops the fixture into a temp dir and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClearPeerDependencies_EmptiesField(t *testing.T) {
	path := writeManifest(t, fixtureManifest)

	require.NoError(t, ClearPeerDependenciesAt(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	var peers map[string]string
	require.NoError(t, json.Unmarshal(doc["peerDependencies"], &peers))
	assert.Empty(t, peers, "peerDependencies must deserialize to an empty mapping")
}

func TestClearPeerDependencies_PreservesOtherFields(t *testing.T) {
	path := writeManifest(t, fixtureManifest)

	require.NoError(t, ClearPeerDependenciesAt(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	// Every original top-level field is still present with an
	// equivalent value.
	assert.JSONEq(t, `"phonegap-plugin-push"`, string(doc["name"]))
	assert.JSONEq(t, `"2.1.3"`, string(doc["version"]))
	assert.JSONEq(t, `"Register and receive push notifications"`, string(doc["description"]))
	assert.JSONEq(t, `{"cordovaDependencies": {"2.0.0": {"cordova-android": ">=6.3.0"}}}`, string(doc["engines"]))
	assert.JSONEq(t, `["ecosystem:cordova", "cordova-android", "cordova-ios"]`, string(doc["keywords"]))
}

func TestClearPeerDependencies_PrettyPrintedOutput(t *testing.T) {
	path := writeManifest(t, fixtureManifest)

	require.NoError(t, ClearPeerDependenciesAt(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Two-space indentation and a trailing newline.
	assert.Contains(t, string(data), "\n  \"name\"")
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n')
}

func TestClearPeerDependencies_AddsFieldWhenAbsent(t *testing.T) {
	path := writeManifest(t, `{"name": "some-plugin", "version": "1.0.0"}`)

	require.NoError(t, ClearPeerDependenciesAt(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `{}`, string(doc["peerDependencies"]))
}

func TestClearPeerDependencies_MissingManifest(t *testing.T) {
	err := ClearPeerDependenciesAt(filepath.Join(t.TempDir(), "package.json"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitManifestError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "not found")
}

func TestClearPeerDependencies_MalformedManifest(t *testing.T) {
	path := writeManifest(t, `{"name": "broken"`)

	err := ClearPeerDependenciesAt(path)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitManifestError, cliErr.Code)
}

func TestClearPeerDependencies_ResolvesDefaultPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, DefaultManifestPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(fixtureManifest), 0o644))

	require.NoError(t, ClearPeerDependencies(root))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"peerDependencies": {}`)
}

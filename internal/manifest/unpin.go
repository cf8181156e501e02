package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smdgithub/hybuild/internal/model"
)

// DefaultManifestPath is the manifest whose peer dependencies the
// unpin-dependency command clears, relative to the project root.
// The push plugin pins exact cordova-android peers that conflict with
// the platform version this project tracks.
const DefaultManifestPath = "node_modules/phonegap-plugin-push/package.json"

// peerDependenciesKey is the manifest field that gets cleared.
const peerDependenciesKey = "peerDependencies"

// ClearPeerDependencies reads the manifest at root/DefaultManifestPath,
// sets its peerDependencies field to an empty object, and writes the
// manifest back pretty-printed.
//
// All failures (missing file, malformed JSON, write error) come back as
// CLIError with ExitManifestError.
func ClearPeerDependencies(root string) error {
	return ClearPeerDependenciesAt(filepath.Join(root, DefaultManifestPath))
}

// ClearPeerDependenciesAt performs the rewrite on an explicit manifest
// path. Split out from ClearPeerDependencies for testability.
func ClearPeerDependenciesAt(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.WrapCLIError(model.ExitManifestError,
				fmt.Sprintf("dependency manifest not found: %s", path), err)
		}
		return model.WrapCLIError(model.ExitManifestError,
			fmt.Sprintf("failed to read dependency manifest %s", path), err)
	}

	// Decode into RawMessage values so fields hybuild does not model
	// (scripts, engines, repository, ...) pass through untouched.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.WrapCLIError(model.ExitManifestError,
			fmt.Sprintf("failed to parse dependency manifest %s", path), err)
	}

	doc[peerDependenciesKey] = json.RawMessage("{}")

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitManifestError,
			fmt.Sprintf("failed to serialize dependency manifest %s", path), err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return model.WrapCLIError(model.ExitManifestError,
			fmt.Sprintf("failed to rewrite dependency manifest %s", path), err)
	}
	return nil
}

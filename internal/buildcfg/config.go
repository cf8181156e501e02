package buildcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/smdgithub/hybuild/internal/model"
)

// BuildConfigFile is the name of the externally-owned build configuration
// file, resolved relative to the project root.
const BuildConfigFile = ".angular-cli.json"

// BuildConfig represents the subset of the build configuration file that
// hybuild cares about. All other fields are ignored during parsing.
type BuildConfig struct {
	// Apps lists the application descriptors. Each app builds into its
	// own output directory.
	Apps []AppConfig `json:"apps"`
}

// AppConfig is a single application descriptor.
type AppConfig struct {
	// Name is the optional display name of the app.
	Name string `json:"name,omitempty"`

	// OutDir is the distribution output directory, relative to the
	// project root (e.g. "www" or "dist").
	OutDir string `json:"outDir"`
}

// OutDirs returns the distinct, non-empty output directories across all
// apps, in declaration order.
func (c *BuildConfig) OutDirs() []string {
	seen := make(map[string]bool, len(c.Apps))
	var dirs []string
	for _, app := range c.Apps {
		if app.OutDir == "" || seen[app.OutDir] {
			continue
		}
		seen[app.OutDir] = true
		dirs = append(dirs, app.OutDir)
	}
	return dirs
}

// LoadBuildConfig reads the build configuration file from the given
// project root, strips JSONC comments, and parses it.
//
// Returns a CLIError with ExitConfigError if the file is missing or
// malformed: the clean --dist scope cannot proceed without it.
func LoadBuildConfig(root string) (*BuildConfig, error) {
	path := filepath.Join(root, BuildConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("build configuration not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read %s", path), err)
	}

	// Strip // and /* */ comments plus trailing commas before handing
	// the document to encoding/json.
	cleanJSON := jsonc.ToJSON(data)

	var cfg BuildConfig
	if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse %s", path), err)
	}
	return &cfg, nil
}

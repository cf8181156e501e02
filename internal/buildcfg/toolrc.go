package buildcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smdgithub/hybuild/internal/model"
)

// ToolRCFile is the name of hybuild's optional per-project defaults file.
const ToolRCFile = ".hybuildrc.yml"

// ToolRC holds project-level defaults. Every field is optional and
// command-line flags take precedence over anything set here.
type ToolRC struct {
	// PackageManager selects npm or yarn for the build step.
	PackageManager string `yaml:"packageManager,omitempty"`

	// ExportFile overrides the default export-env output path.
	ExportFile string `yaml:"exportFile,omitempty"`

	// Clean holds clean-command defaults.
	Clean ToolRCClean `yaml:"clean,omitempty"`
}

// ToolRCClean configures the clean command.
type ToolRCClean struct {
	// ExtraPaths lists additional paths removed whenever the
	// platform/plugin scope runs (e.g. ".gradle", "node_modules/.cache").
	ExtraPaths []string `yaml:"extraPaths,omitempty"`
}

// ResolvePackageManager returns the configured package manager, or npm
// when the field is unset. An unknown value is a config error.
func (rc *ToolRC) ResolvePackageManager() (model.PackageManager, error) {
	if rc.PackageManager == "" {
		return model.PackageManagerNPM, nil
	}
	pm, err := model.ParsePackageManager(rc.PackageManager)
	if err != nil {
		return "", model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid packageManager in %s", ToolRCFile), err)
	}
	return pm, nil
}

// LoadToolRC reads the defaults file from the given project root.
// A missing file is not an error: the zero-value ToolRC is returned so
// callers always have something to consult.
func LoadToolRC(root string) (*ToolRC, error) {
	path := filepath.Join(root, ToolRCFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ToolRC{}, nil
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read %s", path), err)
	}

	var rc ToolRC
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse %s", path), err)
	}
	return &rc, nil
}

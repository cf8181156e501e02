package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smdgithub/hybuild/internal/buildcfg"
	"github.com/smdgithub/hybuild/internal/model"
)

// CordovaDirs are the directories the packaging tool generates at the
// project root. They are always safe to delete: the packaging tool
// recreates them from config.xml on the next prepare.
var CordovaDirs = []string{"platforms", "plugins"}

// CleanOptions selects which removal scopes run.
type CleanOptions struct {
	// Cordova removes the platform/plugin directories, plus any extra
	// paths configured in the project defaults file.
	Cordova bool

	// Dist removes every output directory declared in the build
	// configuration file.
	Dist bool

	// Path, when non-empty, removes exactly this one path.
	Path string

	// ExtraPaths lists additional project-relative paths removed with
	// the Cordova scope (sourced from .hybuildrc.yml).
	ExtraPaths []string

	// DryRun reports what would be removed without touching the
	// filesystem.
	DryRun bool
}

// Defaulted returns a copy of the options with the default scopes
// enabled when the caller selected none. The explicit path is never
// enabled by defaulting.
func (o CleanOptions) Defaulted() CleanOptions {
	if !o.Cordova && !o.Dist && o.Path == "" {
		o.Cordova = true
		o.Dist = true
	}
	return o
}

// Clean removes the selected scopes under root. It returns the paths
// that were removed (or would be, under DryRun), in removal order:
// platform/plugin dirs, extra paths, dist dirs, explicit path.
// Report, when non-nil, is called once per completed removal.
//
// Scopes run one after another and each failure is terminal, so the
// platform/plugin scope always completes before the distribution scope
// reads the build configuration file. A missing or malformed file fails
// the clean with the earlier scopes' removals already done; they are
// not rolled back.
func Clean(root string, opts CleanOptions, report func(path string)) ([]string, error) {
	var removed []string

	remove := func(target string) error {
		if !opts.DryRun {
			if err := os.RemoveAll(target); err != nil {
				return model.WrapCLIError(model.ExitGeneralError,
					fmt.Sprintf("failed to remove %s", target), err)
			}
		}
		removed = append(removed, target)
		if report != nil {
			report(target)
		}
		return nil
	}

	if opts.Cordova {
		for _, dir := range CordovaDirs {
			if err := remove(filepath.Join(root, dir)); err != nil {
				return removed, err
			}
		}
		for _, extra := range opts.ExtraPaths {
			if err := remove(filepath.Join(root, extra)); err != nil {
				return removed, err
			}
		}
	}

	if opts.Dist {
		cfg, err := buildcfg.LoadBuildConfig(root)
		if err != nil {
			return removed, err
		}
		for _, dir := range cfg.OutDirs() {
			if err := remove(filepath.Join(root, dir)); err != nil {
				return removed, err
			}
		}
	}

	if opts.Path != "" {
		path := opts.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if err := remove(path); err != nil {
			return removed, err
		}
	}

	return removed, nil
}

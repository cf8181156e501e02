// Package cli — clean.go implements the "hybuild clean" command.
//
// clean removes generated build artifacts. Three scope flags select
// what goes: --cordova (platform/plugin directories), --dist (output
// directories from the build configuration file), --path (one explicit
// path). With no scope flags, cordova and dist both run; the explicit
// path never runs by default.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smdgithub/hybuild/internal/buildcfg"
	"github.com/smdgithub/hybuild/internal/ui"
	"github.com/smdgithub/hybuild/internal/workspace"
)

// cleanFlags holds the flag values for the clean command.
type cleanFlags struct {
	cordova bool   // --cordova: remove platform/plugin directories
	dist    bool   // --dist: remove configured distribution directories
	path    string // --path: remove exactly this path
}

// NewCleanCommand creates the "clean" cobra command.
func NewCleanCommand() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated build artifacts",
		Long: `Remove generated build artifacts from the project tree.

Scopes:
  --cordova   platforms/ and plugins/ (plus clean.extraPaths from ` + buildcfg.ToolRCFile + `)
  --dist      every apps[].outDir from ` + buildcfg.BuildConfigFile + `
  --path P    exactly P

With no scope flags, --cordova and --dist both apply. Removals stop at the
first failure; completed removals are not rolled back.

Examples:
  hybuild clean
  hybuild clean --cordova
  hybuild clean --path www/assets/env.json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(flags)
		},
	}

	cmd.Flags().BoolVar(&flags.cordova, "cordova", false, "Remove platform/plugin build directories")
	cmd.Flags().BoolVar(&flags.dist, "dist", false, "Remove configured distribution directories")
	cmd.Flags().StringVar(&flags.path, "path", "", "Remove exactly this path")

	return cmd
}

// runClean is the main logic for the clean command.
func runClean(flags *cleanFlags) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	rc, err := buildcfg.LoadToolRC(root)
	if err != nil {
		return err
	}

	opts := workspace.CleanOptions{
		Cordova:    flags.cordova,
		Dist:       flags.dist,
		Path:       flags.path,
		ExtraPaths: rc.Clean.ExtraPaths,
		DryRun:     dryRun,
	}.Defaulted()

	report := func(path string) { ui.Success("removed %s", path) }
	if dryRun {
		report = func(path string) { ui.Info("dry-run: would remove %s", path) }
	}

	removed, err := workspace.Clean(root, opts, report)
	if err != nil {
		return err
	}

	VerboseLog("Removed %d path(s)", len(removed))
	return nil
}

// Package cli — unpin.go implements the "hybuild unpin-dependency"
// command.
//
// The push plugin pins exact platform versions in its peerDependencies,
// which breaks dependency installation against the platform version this
// project tracks. unpin-dependency clears that field in the installed
// copy of the plugin's manifest.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smdgithub/hybuild/internal/manifest"
	"github.com/smdgithub/hybuild/internal/ui"
)

// NewUnpinCommand creates the "unpin-dependency" cobra command.
func NewUnpinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin-dependency",
		Short: "Clear the push plugin's peer dependency pins",
		Long: `Rewrite ` + manifest.DefaultManifestPath + ` with an empty
peerDependencies object, leaving every other field intact. Run this after
every dependency installation that restores the plugin.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpin()
		},
	}
}

// runUnpin is the main logic for the unpin-dependency command.
func runUnpin() error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	if dryRun {
		ui.Info("dry-run: would clear peerDependencies in %s", manifest.DefaultManifestPath)
		return nil
	}

	if err := manifest.ClearPeerDependencies(root); err != nil {
		return err
	}

	ui.Success("cleared peerDependencies in %s", manifest.DefaultManifestPath)
	return nil
}

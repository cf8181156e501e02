// Package cli — exportenv.go implements the "hybuild export-env" command.
//
// export-env snapshots the requested environment variables and writes
// them as a compact JSON object for the web bundle to consume at
// runtime. Unset variables serialize as null (see internal/envfile).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smdgithub/hybuild/internal/buildcfg"
	"github.com/smdgithub/hybuild/internal/envfile"
	"github.com/smdgithub/hybuild/internal/model"
	"github.com/smdgithub/hybuild/internal/ui"
)

// exportEnvFlags holds the flag values for the export-env command.
type exportEnvFlags struct {
	output string // -o/--output: snapshot file path
	dotenv string // --dotenv: dotenv file filling in unset names
}

// NewExportEnvCommand creates the "export-env" cobra command.
func NewExportEnvCommand() *cobra.Command {
	flags := &exportEnvFlags{}

	cmd := &cobra.Command{
		Use:   "export-env <name>...",
		Short: "Write selected environment variables to a JSON file",
		Long: `Write a JSON object mapping each requested variable name to its current
value. Variables that are unset at invocation time appear with a null value,
so the consuming application can tell "unset" apart from "empty".

The default output path can be overridden per project via the exportFile
field of ` + buildcfg.ToolRCFile + `.

Examples:
  hybuild export-env API_URL API_KEY
  hybuild export-env -o www/env.json API_URL
  hybuild export-env --dotenv .env.staging API_URL API_KEY`,

		// Validation is done in RunE rather than with cobra.MinimumNArgs
		// so the empty-name-list case exits with the usage code.
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportEnv(args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: "+envfile.DefaultOutputPath+")")
	cmd.Flags().StringVar(&flags.dotenv, "dotenv", "", "Dotenv file consulted for names unset in the environment")

	return cmd
}

// runExportEnv is the main logic for the export-env command.
func runExportEnv(names []string, flags *exportEnvFlags) error {
	if len(names) == 0 {
		return model.NewCLIError(model.ExitUsage, "at least one variable name is required")
	}

	root, err := projectRoot()
	if err != nil {
		return err
	}

	// Resolve the output path: flag > project defaults > built-in.
	output := flags.output
	if output == "" {
		rc, rcErr := buildcfg.LoadToolRC(root)
		if rcErr != nil {
			return rcErr
		}
		output = rc.ExportFile
	}
	if output == "" {
		output = envfile.DefaultOutputPath
	}
	VerboseLog("Output path: %s", output)

	lookup := envfile.OSLookup
	if flags.dotenv != "" {
		VerboseLog("Overlaying dotenv file: %s", flags.dotenv)
		lookup, err = envfile.DotenvOverlay(flags.dotenv)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, "failed to load dotenv file", err)
		}
	}

	snap := envfile.Snapshot(names, lookup)

	if dryRun {
		ui.Info("dry-run: would write %d variable(s) to %s", len(snap), output)
		return nil
	}

	if err := envfile.Write(output, snap); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write environment snapshot", err)
	}

	ui.Success("exported %d variable(s) to %s", len(snap), output)
	return nil
}

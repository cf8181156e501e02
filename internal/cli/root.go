// Package cli implements the cobra-based commands for hybuild.
//
// Each subcommand (export-env, build-and-package, clean,
// unpin-dependency) is defined in its own file within this package.
// This file defines the root command, the global flags, and the
// error-to-exit-code translation.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smdgithub/hybuild/internal/model"
	"github.com/smdgithub/hybuild/internal/runner"
	"github.com/smdgithub/hybuild/internal/ui"
)

// Global flag variables bound to persistent flags on the root command,
// making them available to every subcommand.
var (
	// verbose enables trace output (executed commands, resolved paths)
	// on stderr.
	verbose bool

	// dryRun makes every command report its external invocations and
	// filesystem removals instead of performing them.
	dryRun bool
)

// Version, Commit, and Date are set at build time via ldflags and
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// helpShown records that help text was printed during the current
// invocation. Help terminates the process with the usage exit code:
// it appears when the user asked for documentation or got the command
// wrong, never as part of a completed build task, so scripts must not
// mistake it for success.
var helpShown bool

// NewRootCommand creates and configures the root cobra command.
//
// The root command performs no action of its own: invoked without a
// subcommand it prints the short usage and fails with a usage error,
// so scripts that forget the command name notice immediately.
func NewRootCommand() *cobra.Command {
	helpShown = false

	rootCmd := &cobra.Command{
		Use:   "hybuild",
		Short: "Build task wrapper for the hybrid mobile app project",
		Long: `hybuild wraps the recurring build chores of this hybrid mobile app:
exporting environment variables for the web bundle, running the build and
packaging pipeline, cleaning generated artifacts, and unpinning a vendored
dependency's peer dependencies.

Run "hybuild <command> --help" for per-command documentation.`,

		// We print usage and errors ourselves for a single, consistent
		// error path (see Execute).
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			// Short usage on stderr, then a usage-class failure.
			_ = cmd.Usage()
			return model.NewCLIError(model.ExitUsage, "no command specified")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print commands and removals instead of performing them")

	// Wrap cobra's default help so Execute can tell that help was
	// printed. Cobra itself treats --help as success (Execute returns
	// nil), but this tool exits non-zero for every help path.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(NewExportEnvCommand())
	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewCleanCommand())
	rootCmd.AddCommand(NewUnpinCommand())

	return rootCmd
}

// Execute runs the root command and terminates the process with the
// resulting exit code.
func Execute(rootCmd *cobra.Command) {
	os.Exit(run(rootCmd))
}

// run executes the command tree and translates the outcome into an
// exit code. CLIError values carry their own code (found through the
// wrapped-error chain); other errors exit 1. Help output — whether via
// --help or the help command — exits with the usage code.
func run(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			return int(cliErr.Code)
		}
		printError(err.Error(), nil)
		return int(model.ExitGeneralError)
	}
	if helpShown {
		return int(model.ExitUsage)
	}
	return int(model.ExitSuccess)
}

// printError outputs an error message to stderr.
func printError(message string, underlying error) {
	if underlying != nil {
		ui.Fail("%s: %v", message, underlying)
	} else {
		ui.Fail("%s", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// newRunner builds the process runner for the current invocation,
// honoring the global --dry-run and --verbose flags. Commands are
// echoed whenever either flag asks for it.
func newRunner() *runner.Runner {
	r := &runner.Runner{DryRun: dryRun}
	if verbose || dryRun {
		r.Trace = ui.Command
	}
	return r
}

// projectRoot returns the directory the tool operates on. All paths in
// the project (config files, platforms/, dist dirs) are resolved
// relative to the current working directory.
func projectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}
	return cwd, nil
}

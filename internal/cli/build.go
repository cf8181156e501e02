// Package cli — build.go implements the "hybuild build-and-package"
// command.
//
// The command runs up to three steps in sequence:
//  1. Web build via the package manager (`npm run build` / `yarn run
//     build`) — skipped with --fast.
//  2. The cordova packaging tool with the trailing positional arguments
//     and translated option flags.
//  3. When packaging a build (`build` positional) with --copy: locate
//     the produced .apk/.ipa artifacts and copy them to the destination.
//
// A tool that runs and exits non-zero is warned about and the sequence
// proceeds; a tool that cannot be started at all is terminal. The only
// way a packaging failure surfaces is indirectly, through the artifact
// copy step finding nothing.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smdgithub/hybuild/internal/artifacts"
	"github.com/smdgithub/hybuild/internal/buildcfg"
	"github.com/smdgithub/hybuild/internal/model"
	"github.com/smdgithub/hybuild/internal/runner"
	"github.com/smdgithub/hybuild/internal/ui"
)

// packagingTool is the external mobile packaging command.
const packagingTool = "cordova"

// telemetryOptOut is always passed to the packaging tool so CI runs
// never prompt or phone home.
const telemetryOptOut = "--no-telemetry"

// buildFlags holds the flag values for the build-and-package command.
type buildFlags struct {
	fast     bool   // --fast: skip the web build step
	dev      bool   // --dev: development bundle (default: prod)
	env      string // -e/--env: named target environment for the build
	device   bool   // --device: package for a physical device
	emulate  bool   // --emulate: package for the emulator
	debug    bool   // --debug: debug packaging
	release  bool   // --release: release packaging
	copyDest string // --copy: directory receiving produced app builds
	yarn     bool   // --yarn: use yarn instead of npm for the build step
}

// NewBuildCommand creates the "build-and-package" cobra command.
func NewBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build-and-package [cordova-args...]",
		Short: "Run the web build, then the cordova packaging tool",
		Long: `Run the web build step, then invoke the cordova packaging tool with the
trailing positional arguments. The telemetry opt-out flag is always appended.

When the first positional argument is "build" and --copy is given, the
produced .apk/.ipa files are copied into the destination directory; finding
none is an error even if packaging itself succeeded.

Examples:
  hybuild build-and-package build android --release --device
  hybuild build-and-package --fast run ios --emulate
  hybuild build-and-package build android --copy ../builds -e staging`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fast, "fast", false, "Skip the web build step")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "Build a development bundle (default: production)")
	cmd.Flags().StringVarP(&flags.env, "env", "e", "", "Named target environment for the build step")
	cmd.Flags().BoolVar(&flags.device, "device", false, "Package for a physical device")
	cmd.Flags().BoolVar(&flags.emulate, "emulate", false, "Package for the emulator")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Debug packaging")
	cmd.Flags().BoolVar(&flags.release, "release", false, "Release packaging")
	cmd.Flags().StringVar(&flags.copyDest, "copy", "", "Copy produced app builds into this directory")
	cmd.Flags().BoolVar(&flags.yarn, "yarn", false, "Run the build step with yarn instead of npm")

	return cmd
}

// runBuild is the main orchestration function for build-and-package.
func runBuild(ctx context.Context, args []string, flags *buildFlags) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	rc, err := buildcfg.LoadToolRC(root)
	if err != nil {
		return err
	}

	run := newRunner()

	// Step 1: web build, unless --fast.
	if flags.fast {
		VerboseLog("Skipping build step (--fast)")
	} else if err := runBuildStep(ctx, run, rc, flags); err != nil {
		return err
	}

	// Step 2: packaging tool.
	if err := runPackagingStep(ctx, run, args, flags); err != nil {
		return err
	}

	// Step 3: artifact copy, only for `build` with a destination.
	if len(args) > 0 && args[0] == "build" && flags.copyDest != "" {
		return copyAppBuilds(root, flags.copyDest)
	}
	return nil
}

// runBuildStep invokes the package manager's build script. The mode
// flag and target environment are forwarded after the `--` separator so
// the package manager hands them to the underlying build tooling.
func runBuildStep(ctx context.Context, run *runner.Runner, rc *buildcfg.ToolRC, flags *buildFlags) error {
	pm, err := rc.ResolvePackageManager()
	if err != nil {
		return err
	}
	if flags.yarn {
		pm = model.PackageManagerYarn
	}

	mode := model.BuildModeProd
	if flags.dev {
		mode = model.BuildModeDev
	}

	buildArgs := []string{"run", "build", "--", mode.Flag()}
	if flags.env != "" {
		buildArgs = append(buildArgs, "--env="+flags.env)
	}

	VerboseLog("Build step: %s %v", pm, buildArgs)
	return tolerateExitStatus(run.Run(ctx, runner.Invocation{Name: pm.String(), Args: buildArgs}))
}

// runPackagingStep invokes the packaging tool with the positional
// arguments, the telemetry opt-out, and the translated option flags.
func runPackagingStep(ctx context.Context, run *runner.Runner, args []string, flags *buildFlags) error {
	pkgArgs := append(append([]string{}, args...), telemetryOptOut)

	// Boolean options translate one-to-one into packaging tool flags.
	for _, opt := range []struct {
		set  bool
		flag string
	}{
		{flags.device, "--device"},
		{flags.emulate, "--emulate"},
		{flags.debug, "--debug"},
		{flags.release, "--release"},
	} {
		if opt.set {
			pkgArgs = append(pkgArgs, opt.flag)
		}
	}

	VerboseLog("Packaging step: %s %v", packagingTool, pkgArgs)
	return tolerateExitStatus(run.Run(ctx, runner.Invocation{Name: packagingTool, Args: pkgArgs}))
}

// tolerateExitStatus downgrades a non-zero tool exit into a warning and
// keeps everything else terminal. Spawn failures become CLIErrors with
// the spawn exit code.
func tolerateExitStatus(err error) error {
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*runner.ExitStatusError); ok {
		ui.Warn("%s; continuing", exitErr.Error())
		return nil
	}
	return model.WrapCLIError(model.ExitSpawnError, "failed to run external tool", err)
}

// copyAppBuilds locates produced platform binaries and copies them into
// dest. The destination is created before the artifact check, so an
// empty result still leaves dest in place — and is still an error.
func copyAppBuilds(root, dest string) error {
	builds, err := artifacts.FindAppBuilds(root)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to locate app builds", err)
	}

	if dryRun {
		for _, b := range builds {
			ui.Info("dry-run: would copy %s to %s", b, dest)
		}
	} else if err := artifacts.CopyBuilds(builds, dest); err != nil {
		return err
	}

	if len(builds) == 0 {
		return model.NewCLIError(model.ExitNoArtifacts, "no app builds found")
	}

	ui.Success("copied %d app build(s) to %s", len(builds), dest)
	return nil
}

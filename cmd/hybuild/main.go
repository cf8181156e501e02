// Package main is the entry point for the hybuild CLI.
//
// This binary wraps the recurring build chores of a hybrid mobile
// (Cordova) application project: exporting environment variables for the
// web bundle, running the build and packaging pipeline, cleaning generated
// artifacts, and unpinning a vendored dependency's peer dependencies.
// It delegates all functionality to the internal/cli package, which
// defines cobra commands.
package main

import (
	"github.com/smdgithub/hybuild/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}

// Package runner invokes external build tools (npm, yarn, cordova) as
// blocking child processes with their output streamed to the terminal.
//
// The runner distinguishes two failure classes: a tool that cannot be
// started at all (returned as ErrSpawn-wrapped error, terminal for the
// CLI) and a tool that starts but exits non-zero (returned as an
// *ExitStatusError, which callers are free to tolerate). The
// build-and-package pipeline deliberately proceeds past non-zero tool
// exits; only spawn failures abort it.
package runner

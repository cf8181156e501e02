package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrSpawn marks failures where the child process never started
// (binary missing, not executable). Check with errors.Is.
var ErrSpawn = errors.New("failed to start external tool")

// ExitStatusError reports that an external tool started, ran, and exited
// with a non-zero status. It wraps the underlying *exec.ExitError.
type ExitStatusError struct {
	// Tool is the binary name that was invoked.
	Tool string

	// Code is the tool's exit code.
	Code int

	// Err is the underlying exec error.
	Err error
}

// Error satisfies the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}

// Unwrap returns the underlying exec error.
func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// Invocation describes a single external command to run.
type Invocation struct {
	// Name is the binary to invoke (resolved via PATH).
	Name string

	// Args are the command-line arguments, excluding the binary name.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the invocation as a shell-style command line for
// trace output. Arguments are not quoted; this is for display only.
func (inv Invocation) String() string {
	if len(inv.Args) == 0 {
		return inv.Name
	}
	return inv.Name + " " + strings.Join(inv.Args, " ")
}

// Runner executes external commands. The zero value streams to the
// process's own stdio and actually runs commands; DryRun and the
// writer fields exist for tests and the --dry-run flag.
type Runner struct {
	// DryRun suppresses execution. Commands are only echoed via Trace.
	DryRun bool

	// Trace, when non-nil, receives each command line before it runs.
	Trace func(line string)

	// Stdout and Stderr default to os.Stdout / os.Stderr when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the invocation and blocks until it completes. The child
// inherits stdin and streams stdout/stderr.
//
// Failure to start the process returns an error wrapping ErrSpawn.
// A non-zero exit returns an *ExitStatusError. Context cancellation
// kills the child (exec.CommandContext semantics).
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	if r.Trace != nil {
		r.Trace(inv.String())
	}
	if r.DryRun {
		return nil
	}

	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	// Start/Wait are split so that "could not start" and "ran and
	// failed" surface as different error classes.
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSpawn, inv.Name, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitStatusError{Tool: inv.Name, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("%s: %w", inv.Name, err)
	}
	return nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// Package model defines the domain types for the hybuild CLI.
//
// All types here are transient: they are constructed once per invocation
// from the argument list and configuration files, and discarded at process
// exit. There is no shared state across invocations.
package model

import (
	"fmt"
	"strings"
)

// PackageManager identifies which Node package manager runs the build step
// of the build-and-package pipeline.
type PackageManager string

const (
	// PackageManagerNPM runs the build step via `npm run build`.
	PackageManagerNPM PackageManager = "npm"

	// PackageManagerYarn runs the build step via `yarn run build`.
	PackageManagerYarn PackageManager = "yarn"
)

// String returns the string representation of the PackageManager.
// It is also the binary name that gets invoked.
func (p PackageManager) String() string {
	return string(p)
}

// IsValid checks whether the PackageManager value is one of the
// supported package managers.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNPM, PackageManagerYarn:
		return true
	default:
		return false
	}
}

// ParsePackageManager converts a string to a PackageManager.
// Returns an error if the string does not match a supported manager.
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(s))
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid package manager: %q (valid: npm, yarn)", s)
	}
	return pm, nil
}

// BuildMode selects the optimization profile passed to the web build step.
type BuildMode string

const (
	// BuildModeDev produces an unminified development bundle.
	BuildModeDev BuildMode = "dev"

	// BuildModeProd produces an optimized production bundle.
	// This is the default when no mode flag is given.
	BuildModeProd BuildMode = "prod"
)

// String returns the string representation of the BuildMode.
func (m BuildMode) String() string {
	return string(m)
}

// Flag returns the mode as a command-line flag for the build tooling,
// e.g. "--prod".
func (m BuildMode) Flag() string {
	return "--" + string(m)
}

// ExitCode defines the process exit codes used by the CLI. These codes
// let scripts and CI systems distinguish failure classes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates missing or malformed command-line arguments.
	// No side effects have been performed when this code is returned.
	ExitUsage ExitCode = 2

	// ExitConfigError indicates the build configuration file or the
	// project defaults file could not be read or parsed.
	ExitConfigError ExitCode = 3

	// ExitManifestError indicates the dependency manifest could not be
	// located, parsed, or rewritten.
	ExitManifestError ExitCode = 4

	// ExitNoArtifacts indicates the packaging step produced no binary
	// artifacts matching the known platform output patterns.
	ExitNoArtifacts ExitCode = 5

	// ExitSpawnError indicates an external tool could not be started
	// at all (not installed, not executable). A tool that starts and
	// exits non-zero does NOT produce this code.
	ExitSpawnError ExitCode = 6
)

// CLIError is an error that carries a process exit code. The CLI layer
// translates it into the corresponding os.Exit call; everything below
// the CLI layer returns it like any other error.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

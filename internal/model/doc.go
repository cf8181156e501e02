// Package model defines the domain types and value objects for the
// hybuild CLI.
//
// This package contains pure data structures with no external
// dependencies: the package manager and build mode enumerations, the
// exit code constants, and a CLIError type that carries exit codes so
// the CLI layer can translate failures into proper process exit codes.
package model

// Package ui provides formatted terminal output helpers for the
// hybuild CLI.
//
// All output goes to stderr so that stdout stays free for data
// (e.g. piping). Colors degrade gracefully on non-TTY outputs via
// github.com/fatih/color.
package ui

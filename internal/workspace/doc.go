// Package workspace removes generated build artifacts from the project
// tree.
//
// Three removal scopes exist: the platform/plugin directories created by
// the packaging tool, the distribution directories declared in the build
// configuration file, and a single explicitly named path. When no scope
// is selected, the platform/plugin and distribution scopes both run; the
// explicit path never runs by default.
//
// Removals are sequential and each success is reported before the next
// starts. The first I/O failure aborts the whole clean; earlier removals
// are not rolled back.
package workspace

// Package buildcfg loads the project-level configuration files that
// hybuild consumes but does not own.
//
// Two files are involved:
//
//   - .angular-cli.json — the build configuration file maintained by the
//     app's web tooling. hybuild only reads the apps[].outDir fields to
//     learn which distribution directories the clean command should remove.
//     The file is hand-edited in practice and frequently carries comments
//     and trailing commas, so it is parsed as JSONC via
//     github.com/tidwall/jsonc.
//
//   - .hybuildrc.yml — optional hybuild defaults (package manager, export
//     output path, extra clean paths). Command-line flags override it.
package buildcfg

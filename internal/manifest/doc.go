// Package manifest rewrites a dependency's package manifest in place.
//
// The single operation offered is clearing the peerDependencies field of
// a nested node_modules package whose pinned peers otherwise break
// dependency installation. The rewrite goes through a
// map[string]json.RawMessage so every other top-level field survives
// verbatim; only key ordering is normalized (encoding/json sorts map
// keys deterministically).
package manifest

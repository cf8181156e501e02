package envfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultOutputPath is where export-env writes the snapshot when no
// --output flag is given. The path is relative to the project root and
// sits inside the web assets so the bundle can fetch it at runtime.
const DefaultOutputPath = "src/assets/env.json"

// Lookup resolves a variable name to its value. The second return value
// reports whether the variable is set, mirroring os.LookupEnv.
type Lookup func(name string) (string, bool)

// OSLookup resolves names against the process environment.
func OSLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// DotenvOverlay returns a Lookup that consults the process environment
// first and falls back to the given dotenv file for unset names.
// The file is read once, up front.
func DotenvOverlay(path string) (Lookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dotenv file %s: %w", path, err)
	}
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := values[name]
		return v, ok
	}, nil
}

// Snapshot resolves each requested name through lookup and returns the
// mapping to serialize. Unset names map to nil, which encoding/json
// renders as null.
func Snapshot(names []string, lookup Lookup) map[string]*string {
	snap := make(map[string]*string, len(names))
	for _, name := range names {
		if value, ok := lookup(name); ok {
			v := value
			snap[name] = &v
		} else {
			snap[name] = nil
		}
	}
	return snap
}

// Write serializes the snapshot as compact JSON and writes it to path,
// overwriting any existing file. Parent directories are created as
// needed so the default assets path works on a fresh checkout.
func Write(path string, snap map[string]*string) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize environment snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

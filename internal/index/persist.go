package index

import (
	"encoding/json"
	"os"
	"path/filepath"

	"lantern/internal/entry"
)

const (
	appDirName    = "lantern"
	indexFileName = "index.json"
)

// DefaultPath returns the fixed on-disk location of the persisted
// index under the per-user configuration directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDirName, indexFileName), nil
}

// Save serializes entries to path as a flat JSON array, creating
// parent directories as needed. Callers treat a failure here as
// non-fatal: the in-memory snapshot stays authoritative and only
// durability across restarts is affected.
func Save(path string, entries []entry.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load deserializes a previously persisted index. It reports false for
// a missing, unreadable, or malformed file rather than returning an
// error; the caller falls back to an empty index and a fresh scan.
func Load(path string) ([]entry.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Package pathutil provides small path helpers shared by the CLI.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize returns a canonical filesystem path string: trailing
// slashes removed, "." and ".." collapsed, relative paths preserved.
func Normalize(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// ExpandUser replaces a leading "~" or "~/" with the current user's
// home directory. Paths without the prefix, and "~user" forms, are
// returned unchanged, as is everything when the home directory is
// unknown.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

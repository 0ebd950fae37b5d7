package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading "~" with the current user's home
// directory, mirroring shell expansion for paths given on the CLI.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false // e.g., file doesn't exist
	}
	return info.Mode().IsRegular()
}

package utils

import "path/filepath"

// GetAbsolutePath resolves path against baseDir (usually the directory of the
// config file) unless it is already absolute. The result is cleaned.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

package utils

import "path/filepath"

// GetAbsolutePath resolves path against baseDir unless it is already
// absolute. The result is cleaned; an absolute path is returned as given.
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

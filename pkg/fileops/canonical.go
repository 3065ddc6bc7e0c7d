package fileops

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fileScheme is the prefix used to mark canonical paths as file remotes.
const fileScheme = "file://"

// ResolveCanonicalPath resolves a filesystem remote address to its canonical
// identity. The input may be a bare path or a file:// URL; the result is
// always the file://-wrapped absolute path with every symlink resolved.
//
// Relative paths are resolved against the process's current working
// directory, so callers must invoke this from within the repository's
// working directory rather than an arbitrary location.
func ResolveCanonicalPath(path string) (string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(path), fileScheme)

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	// EvalSymlinks both follows symlinks and fails on paths that do not
	// exist, which is exactly the contract callers rely on.
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return fileScheme + resolved, nil
}

// StripFileScheme removes the file:// marker from a canonical path,
// returning the bare filesystem path. Paths without the marker are
// returned unchanged.
func StripFileScheme(path string) string {
	return strings.TrimPrefix(path, fileScheme)
}

// HasFileScheme reports whether the given remote address carries the
// file:// marker.
func HasFileScheme(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), fileScheme)
}

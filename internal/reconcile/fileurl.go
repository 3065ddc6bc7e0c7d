package reconcile

import (
	"path/filepath"
	"strings"

	"reponame/pkg/fileops"
)

// FormatFileRemoteURL rewrites a filesystem remote URL to point at
// canonicalPath while preserving the addressing style of originalURL:
// a relative path that still resolves to the same target is kept verbatim,
// a file://-prefixed URL stays file://-prefixed, and a bare absolute path
// stays bare. workingDir anchors the relative-path check and is passed in
// explicitly so callers (and tests) control it instead of the process cwd.
func FormatFileRemoteURL(originalURL, canonicalPath, workingDir string) string {
	trimmed := strings.TrimSpace(originalURL)

	// A relative URL that already resolves to the canonical target is the
	// best form there is: leave it untouched. This check must run before
	// the scheme checks, otherwise every relative URL would be rewritten
	// absolute.
	if !fileops.HasFileScheme(trimmed) && !filepath.IsAbs(trimmed) {
		expanded := "file://" + filepath.Join(workingDir, trimmed)
		if expanded == canonicalPath {
			return originalURL
		}
	}

	if fileops.HasFileScheme(trimmed) {
		return canonicalPath
	}
	return fileops.StripFileScheme(canonicalPath)
}

// RepoNameFromPath derives the repository name from a canonical filesystem
// remote path: the base name of the target with any ".git" suffix dropped.
func RepoNameFromPath(canonicalPath string) string {
	path := fileops.StripFileScheme(canonicalPath)
	path = strings.TrimSuffix(path, ".git")
	return filepath.Base(path)
}

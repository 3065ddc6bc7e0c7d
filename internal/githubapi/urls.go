package githubapi

import (
	"fmt"
	"regexp"
	"strings"
)

// The detection and parsing grammars must accept the same URL set: a URL
// that detects as GitHub but fails to parse is a bug, not user input to
// tolerate. Host matching is case-insensitive, owner and name are not.
var (
	githubURLPattern = regexp.MustCompile(
		`^(?:https://(?i:(?:www\.)?github\.com)/|git@(?i:github\.com):|ssh://git@(?i:github\.com)/|git://(?i:github\.com)/)[^/\s]+/[^/\s]+?(?:\.git)?$`)
	githubURLCapture = regexp.MustCompile(
		`^(?:https://(?i:(?:www\.)?github\.com)/|git@(?i:github\.com):|ssh://git@(?i:github\.com)/|git://(?i:github\.com)/)([^/\s]+)/([^/\s]+?)(?:\.git)?$`)
)

// InvalidURLError indicates a remote URL that does not match the GitHub
// owner/name grammar.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid GitHub URL format: %s", e.URL)
}

// IsGitHubURL reports whether the remote URL addresses a repository on
// github.com in any of the supported schemes (https, SSH shorthand,
// ssh://, git://).
func IsGitHubURL(url string) bool {
	return githubURLPattern.MatchString(url)
}

// ParseGitHubURL extracts the owner and repository name from a GitHub
// remote URL, stripping a trailing .git suffix.
func ParseGitHubURL(url string) (owner, name string, err error) {
	matches := githubURLCapture.FindStringSubmatch(url)
	if matches == nil {
		return "", "", &InvalidURLError{URL: url}
	}
	return matches[1], matches[2], nil
}

// FormatRemoteURL builds a replacement remote URL carrying the given owner
// and repository name while preserving the original URL's addressing
// scheme. Plain http:// is deliberately upgraded to https://, and the .git
// suffix is always appended.
func FormatRemoteURL(originalURL, owner, name string) string {
	switch {
	case strings.HasPrefix(originalURL, "git@"):
		// SSH shorthand (e.g. git@github.com:owner/repo.git)
		return fmt.Sprintf("git@github.com:%s/%s.git", owner, name)
	case strings.HasPrefix(originalURL, "ssh://"):
		// Full SSH URL (e.g. ssh://git@github.com/owner/repo.git)
		return fmt.Sprintf("ssh://git@github.com/%s/%s.git", owner, name)
	case strings.HasPrefix(originalURL, "git://"):
		// Git protocol (e.g. git://github.com/owner/repo.git)
		return fmt.Sprintf("git://github.com/%s/%s.git", owner, name)
	default:
		// Everything else defaults to HTTPS.
		return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
	}
}

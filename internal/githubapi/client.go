package githubapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"reponame/internal/logging"
)

const (
	// DefaultAPIBaseURL is the public GitHub REST API endpoint.
	DefaultAPIBaseURL = "https://api.github.com"

	// EnvAPIBaseURL overrides the API endpoint, used to point the client
	// at a test double.
	EnvAPIBaseURL = "GITHUB_API_BASE_URL"

	userAgent = "reponame"
)

// RepoInfo is the subset of GitHub repository metadata the reconciler
// needs: the authoritative name, the owner-qualified full name and the
// canonical clone URL.
type RepoInfo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	CloneURL string `json:"clone_url"`
}

// Owner returns the owner half of FullName, or fallback when the API
// response carries no usable full name.
func (ri *RepoInfo) Owner(fallback string) string {
	owner, _, found := strings.Cut(ri.FullName, "/")
	if !found || owner == "" {
		return fallback
	}
	return owner
}

// Client talks to the GitHub repositories API. Reads degrade to
// unauthenticated requests when no token is configured; mutations require
// one and fail with a typed error otherwise.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logging.AppLogger
}

// NewClient builds a client. token may be empty for anonymous access. The
// base URL comes from GITHUB_API_BASE_URL when set, otherwise the public
// endpoint.
func NewClient(token string, logger *logging.AppLogger) *Client {
	baseURL := os.Getenv(EnvAPIBaseURL)
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// GetRepo fetches the repository metadata for owner/name.
func (c *Client) GetRepo(owner, name string) (*RepoInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	if c.logger != nil {
		c.logger.Debug("Fetching repository metadata", "url", url, "authenticated", c.token != "")
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build GitHub API request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub API request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Owner: owner, Name: name}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	var info RepoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub API response: %w", err)
	}
	return &info, nil
}

// RenameRepo updates the repository's name on GitHub and returns the
// resulting metadata. The returned owner may differ from the requested one
// when the service normalizes casing.
//
// This mutates remote state: after a partial failure the rename may
// already have applied, so callers must not retry blindly.
func (c *Client) RenameRepo(owner, name, newName string) (*RepoInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	if c.logger != nil {
		c.logger.Debug("Renaming repository", "url", url, "new_name", newName)
	}

	body, err := json.Marshal(map[string]string{"name": newName})
	if err != nil {
		return nil, fmt.Errorf("failed to encode rename request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build GitHub API request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GitHub API request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &PermissionDeniedError{
			Owner:      owner,
			Name:       name,
			Capability: "administration write access to the repository (classic 'repo' scope)",
		}
	case http.StatusNotFound:
		return nil, &NotFoundError{Owner: owner, Name: name}
	case http.StatusUnprocessableEntity:
		return nil, &NameConflictError{
			Owner:   owner,
			Name:    name,
			NewName: newName,
			Reason:  readErrorMessage(resp.Body),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	var info RepoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub API response: %w", err)
	}
	return &info, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
}

// readErrorMessage extracts GitHub's error message from a failure body,
// falling back to the raw text for non-JSON responses.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}

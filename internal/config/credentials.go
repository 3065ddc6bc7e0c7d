package config

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service name for OS credential store
	credentialService = "reponame"
	// Key for GitHub Personal Access Token
	githubTokenKey = "github_pat"
)

// CredentialManager handles secure storage and retrieval of the GitHub
// Personal Access Token via the OS credential store.
type CredentialManager struct {
	service string
}

// NewCredentialManager creates a new credential manager instance
func NewCredentialManager() *CredentialManager {
	return &CredentialManager{
		service: credentialService,
	}
}

// StoreGitHubToken securely stores a GitHub Personal Access Token in the OS
// credential store. The token is validated before storage.
func (cm *CredentialManager) StoreGitHubToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := validateTokenFormat(token); err != nil {
		return fmt.Errorf("invalid token format: %w", err)
	}

	if err := keyring.Set(cm.service, githubTokenKey, token); err != nil {
		return fmt.Errorf("failed to store token in credential store: %w", err)
	}

	return nil
}

// GetGitHubToken retrieves the stored token, or an error when none is
// stored. Callers that can operate unauthenticated should use
// OptionalGitHubToken instead.
func (cm *CredentialManager) GetGitHubToken() (string, error) {
	token, err := keyring.Get(cm.service, githubTokenKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no GitHub token found - configure one with '%s config github-token <token>'", AppName)
		}
		return "", fmt.Errorf("failed to retrieve token from credential store: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("stored token is empty - configure one with '%s config github-token <token>'", AppName)
	}

	return token, nil
}

// OptionalGitHubToken returns the stored token or the empty string when no
// usable token exists. Absence of a token is not an error: public
// repositories remain reachable with unauthenticated requests.
func (cm *CredentialManager) OptionalGitHubToken() string {
	token, err := keyring.Get(cm.service, githubTokenKey)
	if err != nil || strings.TrimSpace(token) == "" {
		return ""
	}
	return token
}

// DeleteGitHubToken removes the stored token. Returns nil if no token
// exists.
func (cm *CredentialManager) DeleteGitHubToken() error {
	err := keyring.Delete(cm.service, githubTokenKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete token from credential store: %w", err)
	}
	return nil
}

// HasGitHubToken checks if a token is stored without retrieving it.
func (cm *CredentialManager) HasGitHubToken() bool {
	_, err := keyring.Get(cm.service, githubTokenKey)
	return err == nil
}

// validateTokenFormat validates that the token matches GitHub PAT format
// expectations. GitHub tokens carry a type-specific prefix:
//   - Classic PATs: ghp_*
//   - Fine-grained PATs: github_pat_*
//   - OAuth tokens: gho_*
//   - User-to-server tokens: ghu_*
//   - Server-to-server tokens: ghs_*
func validateTokenFormat(token string) error {
	token = strings.TrimSpace(token)

	// GitHub PATs are typically 40+ characters
	if len(token) < 20 {
		return fmt.Errorf("token too short (minimum 20 characters)")
	}

	validPrefixes := []string{
		"ghp_",        // Classic Personal Access Token
		"github_pat_", // Fine-grained Personal Access Token
		"gho_",        // OAuth token
		"ghu_",        // User-to-server token
		"ghs_",        // Server-to-server token
	}

	for _, prefix := range validPrefixes {
		if strings.HasPrefix(token, prefix) {
			return nil
		}
	}

	// Older tokens or GitHub Enterprise tokens might not follow these
	// patterns, but rejecting here catches pasted garbage early.
	return fmt.Errorf("token does not match expected GitHub PAT format (should start with ghp_ or github_pat_)")
}

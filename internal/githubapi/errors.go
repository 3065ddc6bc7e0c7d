package githubapi

import "fmt"

// NotFoundError is returned when GitHub reports 404 for a repository.
// GitHub deliberately answers 404 for private repositories queried without
// sufficient credentials, so this is ambiguous between "renamed or
// deleted" and "private, token missing" - the message tells the operator
// how to resolve the latter.
type NotFoundError struct {
	Owner string
	Name  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"repository %s/%s not found - if this is a private repository, configure a GitHub token with 'reponame config github-token <token>'",
		e.Owner, e.Name)
}

// PermissionDeniedError is returned when GitHub rejects a mutation for
// lack of authorization. Capability names the access the token is
// missing; the message is formatted here at the presentation boundary.
type PermissionDeniedError struct {
	Owner      string
	Name       string
	Capability string
}

func (e *PermissionDeniedError) Error() string {
	capability := e.Capability
	if capability == "" {
		capability = "write access to the repository"
	}
	return fmt.Sprintf("permission denied updating repository %s/%s: the token needs %s",
		e.Owner, e.Name, capability)
}

// NameConflictError is returned when GitHub rejects a rename target as
// invalid or already taken.
type NameConflictError struct {
	Owner   string
	Name    string
	NewName string
	Reason  string
}

func (e *NameConflictError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "name is invalid or already taken"
	}
	return fmt.Sprintf("cannot rename repository %s/%s to '%s': %s",
		e.Owner, e.Name, e.NewName, reason)
}

// APIError covers any other non-2xx response, carrying the raw status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GitHub API error: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("GitHub API error: unexpected status %d: %s", e.StatusCode, e.Message)
}

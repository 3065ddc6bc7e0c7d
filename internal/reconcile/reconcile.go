// Package reconcile implements the name-reconciliation engine: it resolves
// a remote's true identity (filesystem path or GitHub repository), computes
// the minimal set of corrective actions, and applies them in a fixed order
// with dry-run and idempotence guarantees.
package reconcile

import (
	"io"
	"os"
	"time"

	"reponame/internal/config"
	"reponame/internal/githubapi"
	"reponame/internal/gitrepo"
	"reponame/internal/logging"
	"reponame/pkg/fileops"
)

// ActionSet is the minimal pair of corrective operations computed by
// comparing the resolved remote identity against the current local state.
// The zero value means "already up to date".
type ActionSet struct {
	// RenameDirectoryTo holds the new working-directory base name, or ""
	// when the directory already matches.
	RenameDirectoryTo string
	// ChangeRemoteURLTo holds the rewritten remote URL, or "" when the
	// configured URL already matches.
	ChangeRemoteURLTo string
}

// Empty reports whether no corrective action is needed.
func (a ActionSet) Empty() bool {
	return a.RenameDirectoryTo == "" && a.ChangeRemoteURLTo == ""
}

// Options configures a Reconciler. Everything is owned by the caller and
// handed down; the engine holds no process-wide state.
type Options struct {
	// RemoteName selects the git remote to reconcile against. Empty means
	// the conventional default remote.
	RemoteName string
	// GitHubToken authenticates GitHub API calls. Empty degrades reads to
	// unauthenticated requests.
	GitHubToken string
	// Out receives the user-facing action messages. Defaults to stdout.
	Out io.Writer
	// Logger receives debug/diagnostic logging. Defaults to the app
	// logger.
	Logger *logging.AppLogger
}

// Reconciler reconciles a repository's working-directory name with its
// configured remote, in either direction. Each call resolves the remote
// identity fresh; nothing is cached across invocations.
type Reconciler struct {
	repo       *gitrepo.Repo
	remoteName string
	client     *githubapi.Client
	out        io.Writer
	logger     *logging.AppLogger
}

// New builds a Reconciler for an opened repository.
func New(repo *gitrepo.Repo, opts Options) *Reconciler {
	remoteName := opts.RemoteName
	if remoteName == "" {
		remoteName = config.DefaultRemoteName
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetDefault()
	}

	return &Reconciler{
		repo:       repo,
		remoteName: remoteName,
		client:     githubapi.NewClient(opts.GitHubToken, logger),
		out:        out,
		logger:     logger,
	}
}

// Pull adopts the remote's identity locally: the working directory is
// renamed to the remote's authoritative repository name and the remote URL
// is rewritten to its canonical form, preserving the URL's original
// addressing scheme. With dryRun set the same decisions are made and
// reported but nothing changes.
func (r *Reconciler) Pull(dryRun bool) error {
	defer r.logger.LogPerformance("pull", time.Now())

	remoteURL, err := r.repo.RemoteURL(r.remoteName)
	if err != nil {
		return err
	}

	if githubapi.IsGitHubURL(remoteURL) {
		return r.pullGitHub(remoteURL, dryRun)
	}
	return r.pullFile(remoteURL, dryRun)
}

// Push imposes the local directory name onto the remote: a GitHub
// repository is renamed through the API, a filesystem remote's bare
// directory is renamed on disk, and in both cases the remote URL is
// updated to match.
func (r *Reconciler) Push(dryRun bool) error {
	defer r.logger.LogPerformance("push", time.Now())

	remoteURL, err := r.repo.RemoteURL(r.remoteName)
	if err != nil {
		return err
	}

	if githubapi.IsGitHubURL(remoteURL) {
		return r.pushGitHub(remoteURL, dryRun)
	}
	return r.pushFile(remoteURL, dryRun)
}

// FetchName resolves and returns the remote's authoritative repository
// name without mutating anything.
func (r *Reconciler) FetchName() (string, error) {
	defer r.logger.LogPerformance("fetch", time.Now())

	remoteURL, err := r.repo.RemoteURL(r.remoteName)
	if err != nil {
		return "", err
	}

	if githubapi.IsGitHubURL(remoteURL) {
		owner, name, err := githubapi.ParseGitHubURL(remoteURL)
		if err != nil {
			return "", err
		}
		info, err := r.client.GetRepo(owner, name)
		if err != nil {
			return "", err
		}
		return info.Name, nil
	}

	canonical, err := fileops.ResolveCanonicalPath(remoteURL)
	if err != nil {
		return "", err
	}
	return RepoNameFromPath(canonical), nil
}

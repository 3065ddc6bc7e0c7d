package gitrepo

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-git/v6"
)

// ErrNotAGitRepo is returned when the given path is not inside a git
// repository working tree.
var ErrNotAGitRepo = errors.New("not a git repository")

// NoRemoteError indicates that the repository has no remote with the
// requested name, or the remote has no URL configured.
type NoRemoteError struct {
	Name string
}

func (e *NoRemoteError) Error() string {
	return fmt.Sprintf("no remote named '%s' configured", e.Name)
}

// Repo gives read/write access to a repository's remote configuration and
// working directory identity. It never touches history, branches or
// objects.
type Repo struct {
	repo    *git.Repository
	workdir string
}

// Open discovers the repository containing path (walking up to find the
// .git directory, the same way the git CLI does) and returns an accessor
// for it. Bare repositories are rejected since reconciliation needs a
// working directory to rename.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotAGitRepo
		}
		return nil, fmt.Errorf("cannot open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("cannot get repository working directory: %w", err)
	}

	return &Repo{
		repo:    repo,
		workdir: wt.Filesystem.Root(),
	}, nil
}

// WorkdirPath returns the absolute path of the repository's working
// directory root.
func (r *Repo) WorkdirPath() string {
	return r.workdir
}

// DirectoryName returns the base name of the working directory, the local
// half of the name reconciliation.
func (r *Repo) DirectoryName() string {
	return filepath.Base(r.workdir)
}

// RemoteURL returns the first URL configured for the named remote.
func (r *Repo) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", &NoRemoteError{Name: name}
	}

	cfg := remote.Config()
	if cfg == nil || len(cfg.URLs) == 0 {
		return "", &NoRemoteError{Name: name}
	}

	return cfg.URLs[0], nil
}

// SetRemoteURL rewrites the named remote's URL. The change is reported on
// out in both modes; with dryRun set the configuration is left untouched.
func (r *Repo) SetRemoteURL(out io.Writer, name, currentURL, newURL string, dryRun bool) error {
	if dryRun {
		fmt.Fprintf(out, "%s '%s' remote from '%s' to '%s'\n",
			color.New(color.FgYellow).Sprint("Would change"), name, currentURL, newURL)
		return nil
	}

	fmt.Fprintf(out, "%s '%s' remote from '%s' to '%s'\n",
		color.New(color.FgGreen).Sprint("Changing"), name, currentURL, newURL)

	cfg, err := r.repo.Config()
	if err != nil {
		return fmt.Errorf("cannot read repository configuration: %w", err)
	}

	remoteCfg, ok := cfg.Remotes[name]
	if !ok {
		return &NoRemoteError{Name: name}
	}

	urls := append([]string{newURL}, remoteCfg.URLs[1:]...)
	remoteCfg.URLs = urls

	if err := r.repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("cannot update remote '%s': %w", name, err)
	}

	return nil
}

package reconcile

import (
	"fmt"
	"os"
	"path/filepath"

	"reponame/pkg/fileops"
)

// pullFile adopts the identity of a filesystem remote: the remote path is
// canonicalized through any symlinks, the repository name is derived from
// the canonical target, and local state is corrected to match. The URL
// change is applied before the directory rename so a failure mid-way never
// leaves a renamed directory pointing at the old URL form.
func (r *Reconciler) pullFile(remoteURL string, dryRun bool) error {
	canonical, err := fileops.ResolveCanonicalPath(remoteURL)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	actions := ActionSet{}
	if name := RepoNameFromPath(canonical); name != r.repo.DirectoryName() {
		actions.RenameDirectoryTo = name
	}
	if newURL := FormatFileRemoteURL(remoteURL, canonical, cwd); newURL != remoteURL {
		actions.ChangeRemoteURLTo = newURL
	}

	r.logger.Debug("Resolved file remote", "remote", r.remoteName, "canonical", canonical)
	r.logger.DebugObject("actions", actions)

	if actions.Empty() {
		fmt.Fprintln(r.out, "Directory name and remote URL already up-to-date")
		return nil
	}

	if actions.ChangeRemoteURLTo != "" {
		if err := r.repo.SetRemoteURL(r.out, r.remoteName, remoteURL, actions.ChangeRemoteURLTo, dryRun); err != nil {
			return err
		}
	}
	if actions.RenameDirectoryTo != "" {
		if err := fileops.RenameDirectory(r.out, r.repo.WorkdirPath(), actions.RenameDirectoryTo, dryRun); err != nil {
			return err
		}
	}
	return nil
}

// pushFile imposes the local directory name onto a filesystem remote by
// renaming the remote's bare repository directory in place and updating
// the remote URL to match. The rename happens first; if it fails the URL
// is left alone so the remote stays reachable.
func (r *Reconciler) pushFile(remoteURL string, dryRun bool) error {
	if _, err := os.Stat(fileops.StripFileScheme(remoteURL)); err != nil {
		return fmt.Errorf("remote repository does not exist: %s: %w", remoteURL, err)
	}

	canonical, err := fileops.ResolveCanonicalPath(remoteURL)
	if err != nil {
		return err
	}

	localName := r.repo.DirectoryName()
	remoteName := RepoNameFromPath(canonical)
	if remoteName == localName {
		fmt.Fprintln(r.out, "Remote repository name already matches the local directory name")
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	// The bare directory keeps its parent; only the base name changes.
	parent := filepath.Dir(fileops.StripFileScheme(canonical))
	oldPath := filepath.Join(parent, remoteName+".git")
	newPath := filepath.Join(parent, localName+".git")
	newURL := FormatFileRemoteURL(remoteURL, "file://"+newPath, cwd)

	r.logger.Debug("Renaming file remote",
		"remote", r.remoteName, "old_path", oldPath, "new_path", newPath, "new_url", newURL)

	if err := fileops.RenameDirectory(r.out, oldPath, localName+".git", dryRun); err != nil {
		return err
	}
	return r.repo.SetRemoteURL(r.out, r.remoteName, remoteURL, newURL, dryRun)
}

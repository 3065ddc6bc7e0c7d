package reconcile

import (
	"fmt"

	"github.com/fatih/color"

	"reponame/internal/githubapi"
	"reponame/pkg/fileops"
)

// pullGitHub adopts the identity of a GitHub remote: the repository
// metadata is fetched from the API (following any rename redirects the
// service applies) and local state is corrected to match. The URL change
// is applied before the directory rename, mirroring the file backend.
func (r *Reconciler) pullGitHub(remoteURL string, dryRun bool) error {
	owner, name, err := githubapi.ParseGitHubURL(remoteURL)
	if err != nil {
		return err
	}

	info, err := r.client.GetRepo(owner, name)
	if err != nil {
		return err
	}

	resolvedOwner := info.Owner(owner)
	actions := ActionSet{}
	if info.Name != r.repo.DirectoryName() {
		actions.RenameDirectoryTo = info.Name
	}
	if newURL := githubapi.FormatRemoteURL(remoteURL, resolvedOwner, info.Name); newURL != remoteURL {
		actions.ChangeRemoteURLTo = newURL
	}

	r.logger.Debug("Resolved GitHub remote",
		"remote", r.remoteName, "owner", resolvedOwner, "name", info.Name)
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

// pushGitHub imposes the local directory name onto the GitHub repository
// via the rename API, then updates the remote URL from the name and owner
// the service reports back. A failed API call leaves local state
// completely untouched.
func (r *Reconciler) pushGitHub(remoteURL string, dryRun bool) error {
	owner, name, err := githubapi.ParseGitHubURL(remoteURL)
	if err != nil {
		return err
	}

	localName := r.repo.DirectoryName()
	if name == localName {
		fmt.Fprintln(r.out, "Repository name already matches the local directory name")
		return nil
	}

	if dryRun {
		fmt.Fprintf(r.out, "%s GitHub repository name from '%s' to '%s'\n",
			color.New(color.FgYellow).Sprint("Would update"), name, localName)
		wouldURL := githubapi.FormatRemoteURL(remoteURL, owner, localName)
		return r.repo.SetRemoteURL(r.out, r.remoteName, remoteURL, wouldURL, true)
	}

	fmt.Fprintf(r.out, "%s GitHub repository name from '%s' to '%s'...\n",
		color.New(color.FgGreen).Sprint("Updating"), name, localName)

	info, err := r.client.RenameRepo(owner, name, localName)
	if err != nil {
		return err
	}

	newURL := githubapi.FormatRemoteURL(remoteURL, info.Owner(owner), info.Name)
	return r.repo.SetRemoteURL(r.out, r.remoteName, remoteURL, newURL, false)
}

// Package cli defines the cobra commands. Each command constructor wires
// the reconciliation engine to the repository containing the current
// working directory.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"reponame/internal/config"
	"reponame/internal/gitrepo"
	"reponame/internal/logging"
	"reponame/internal/reconcile"
)

// buildReconciler opens the repository around the working directory and
// assembles a reconciler from the command flags, persisted settings and
// the credential store. Flag beats config beats built-in default for the
// remote name.
func buildReconciler(cmd *cobra.Command) (*reconcile.Reconciler, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	repo, err := gitrepo.Open(cwd)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	remote, _ := cmd.Flags().GetString("remote")
	if remote == "" {
		remote = settings.DefaultRemote
	}

	return reconcile.New(repo, reconcile.Options{
		RemoteName:  remote,
		GitHubToken: config.NewCredentialManager().OptionalGitHubToken(),
		Logger:      logging.GetDefault(),
	}), nil
}

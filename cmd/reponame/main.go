// Package main is the entry point for the reponame CLI.
//
// reponame keeps a git repository's directory name and its remote in
// agreement: 'pull' adopts the remote's name locally, 'push' imposes the
// local name onto the remote, 'fetch' just reports what the remote says.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reponame/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reponame",
		Short: "Keep local directory names and git remotes in sync",
		Long: `reponame reconciles a repository's working-directory name with its
remote. It understands GitHub remotes (following renames and transfers
through the API) and filesystem remotes (resolving paths through
symlinks), and preserves the remote URL's original addressing style
when rewriting it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("remote", "r", "", "git remote to reconcile against (default from config, else origin)")

	rootCmd.AddCommand(cli.FetchCmd())
	rootCmd.AddCommand(cli.PullCmd())
	rootCmd.AddCommand(cli.PushCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

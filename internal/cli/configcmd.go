package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reponame/internal/config"
)

// ConfigCmd groups the persisted-settings subcommands.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored configuration",
	}

	cmd.AddCommand(githubTokenCmd())
	cmd.AddCommand(defaultRemoteCmd())
	return cmd
}

func githubTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github-token [token]",
		Short: "Show or store the GitHub Personal Access Token",
		Long: `Show or store a GitHub Personal Access Token for API access.

With a token argument the token is stored; without one the stored token
is printed. The token lives in the OS credential store
(keychain/keyring), never in a file. It is needed to read private
repositories and to rename repositories with 'reponame push'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds := config.NewCredentialManager()

			if remove, _ := cmd.Flags().GetBool("delete"); remove {
				if len(args) != 0 {
					return fmt.Errorf("--delete takes no token argument")
				}
				if err := creds.DeleteGitHubToken(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "GitHub token removed from the credential store")
				return nil
			}

			if len(args) == 0 {
				token, err := creds.GetGitHubToken()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			}

			if err := creds.StoreGitHubToken(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "GitHub token stored in the credential store")
			return nil
		},
	}

	cmd.Flags().Bool("delete", false, "remove the stored token instead")
	return cmd
}

func defaultRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-remote [name]",
		Short: "Show or set the remote used when no --remote flag is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), settings.DefaultRemote)
				return nil
			}

			if err := settings.SetDefaultRemote(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default remote set to '%s'\n", args[0])
			return nil
		},
	}
}

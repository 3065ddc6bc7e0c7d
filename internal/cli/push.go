package cli

import (
	"github.com/spf13/cobra"
)

// PushCmd imposes the local directory name onto the remote.
func PushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Rename the remote to match the local directory",
		Long: `Rename the remote repository to the local working directory's
name and update the remote URL to match. A GitHub remote is renamed
through the API (requires a token with admin access, see
'reponame config github-token'); a filesystem remote's bare directory
is renamed on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := buildReconciler(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return rec.Push(dryRun)
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "show what would change without doing it")
	return cmd
}

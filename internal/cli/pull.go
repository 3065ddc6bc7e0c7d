package cli

import (
	"github.com/spf13/cobra"
)

// PullCmd adopts the remote's name locally.
func PullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Rename the local directory to match the remote",
		Long: `Rename the repository's working directory to the remote's
repository name and update the remote URL to its canonical form. The
URL keeps its original addressing style (SSH stays SSH, relative paths
stay relative when still valid).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := buildReconciler(cmd)
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return rec.Pull(dryRun)
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "show what would change without doing it")
	return cmd
}

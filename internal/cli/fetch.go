package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FetchCmd resolves and prints the remote's repository name without
// changing anything.
func FetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Print the repository name according to the remote",
		Long: `Resolve the remote's authoritative repository name and print it.

For a GitHub remote this queries the API (following renames and
transfers); for a filesystem remote it resolves the path through any
symlinks. Nothing is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := buildReconciler(cmd)
			if err != nil {
				return err
			}

			name, err := rec.FetchName()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/spf13/cobra"
)

func newPruneCommand(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete local branches whose upstream is gone",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := git.PruneOptions{
				Force:  a.cfg.Prune.Force,
				DryRun: dryRun,
			}

			deleted, err := a.client().PruneGone(cmd.Context(), opts)

			verb := "Deleted"
			if dryRun {
				verb = "Would delete"
			}
			out := cmd.OutOrStdout()
			for _, b := range deleted {
				fmt.Fprintf(out, "%s %s (%s)\n", verb, b.Name, b.Hash)
			}
			if len(deleted) == 0 && err == nil {
				fmt.Fprintln(out, "No gone branches")
			}

			return err
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be deleted")
	cmd.Flags().BoolP("force", "f", false, "delete with -D even if not merged")

	return cmd
}

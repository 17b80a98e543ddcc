package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/Johannes-Berggren/gonebranch/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	var (
		goneOnly bool
		plain    bool
		input    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List local branches and their upstream status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				branches []models.BranchLine
				err      error
			)
			switch input {
			case "":
				branches, err = a.client().ListBranches(cmd.Context())
			case "-":
				branches, err = git.ParseBranches(cmd.InOrStdin(), a.cfg.Parse.Prefix)
			default:
				branches, err = parseFile(input, a.cfg.Parse.Prefix)
			}
			if err != nil {
				return err
			}

			if goneOnly {
				branches = git.GoneBranches(branches)
			}

			out := cmd.OutOrStdout()
			if plain {
				for _, b := range branches {
					writeBranch(out, b)
				}
				return nil
			}

			fmt.Fprintln(out, renderTable(branches, useColor(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&goneOnly, "gone", false, "only show branches whose upstream is gone")
	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated rows instead of a table")
	cmd.Flags().StringVar(&input, "input", "", `read saved "git branch -vv" output from a file ("-" for stdin) instead of running git`)
	cmd.Flags().String("prefix", "", `literal prefix to strip from each input line, e.g. "[info]"`)

	return cmd
}

func parseFile(path, prefix string) ([]models.BranchLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return git.ParseBranches(f, prefix)
}

func renderTable(branches []models.BranchLine, color bool) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Footer = text.FormatDefault

	tbl.AppendHeader(table.Row{"Branch", "Status", "Hash", "Comment"})

	gone := 0
	for _, b := range branches {
		status := b.Status.String()
		if b.IsGone() {
			gone++
			if color {
				status = text.FgRed.Sprint(status)
			}
		}
		tbl.AppendRow(table.Row{b.Name, status, string(b.Hash), b.Comment})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d branches", len(branches)), fmt.Sprintf("%d gone", gone)})

	return tbl.Render()
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

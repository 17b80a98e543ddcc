package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/Johannes-Berggren/gonebranch/internal/models"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func newParseCommand(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "parse [LINE...]",
		Short: "Parse git branch -vv lines given as arguments or on stdin",
		Example: `  gonebranch parse "  feature  dddd3333 [gone] Fix the thing"
  gonebranch list --plain --input saved.txt
  printf "[info] * main 0000bbbb msg\n" | gonebranch parse --prefix "[info]" --dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				lines, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			parsed, failed := 0, 0
			for i, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				parsed++

				branch, err := git.ParseLine(line, a.cfg.Parse.Prefix)
				if err != nil {
					failed++
					log.WithFields(log.Fields{"line": i + 1, "text": line}).Debug("malformed branch line")
					fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", i+1, err)
					continue
				}

				if dump {
					dumpConfig.Fdump(out, branch)
				} else {
					writeBranch(out, branch)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d lines could not be parsed", failed, parsed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the full parsed record")
	cmd.Flags().String("prefix", "", `literal prefix to strip from each line, e.g. "[info]"`)

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// writeBranch prints one tab-separated row: name, status, hash, comment.
func writeBranch(w io.Writer, b models.BranchLine) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Name, b.Status, b.Hash, b.Comment)
}

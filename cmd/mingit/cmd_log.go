package main

import (
	"fmt"
	"strings"

	"github.com/odvcencio/mingit/pkg/object"
	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [commit]",
		Short: "Render the history of a commit as a graphviz digraph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "HEAD"
			if len(args) > 0 {
				start = args[0]
			}

			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			h, err := r.ResolveName(start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "digraph log{")
			fmt.Fprintln(out, "  node[shape=rect]")
			err = r.WalkCommits(h, func(h object.Hash, c *object.Commit) error {
				fmt.Fprintf(out, "  c_%s [label=\"%s: %s\"]\n", h, h.Short(), graphvizLabel(c.Message))
				for _, parent := range c.Parents() {
					fmt.Fprintf(out, "  c_%s -> c_%s;\n", h, parent)
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "}")
			return nil
		},
	}
}

// graphvizLabel reduces a commit message to its escaped first line.
func graphvizLabel(message string) string {
	line := strings.TrimSpace(message)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.ReplaceAll(line, `\`, `\\`)
	line = strings.ReplaceAll(line, `"`, `\"`)
	return line
}

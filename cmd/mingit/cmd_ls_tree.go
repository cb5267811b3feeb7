package main

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/odvcencio/mingit/pkg/object"
	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsTreeCmd() *cobra.Command {
	var recurse bool

	cmd := &cobra.Command{
		Use:   "ls-tree <tree-ish>",
		Short: "List the entries of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			h, err := r.ResolveName(args[0])
			if err != nil {
				return err
			}
			treeHash, err := treeIshToTree(r, h)
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), r, treeHash, "", recurse)
		},
	}

	cmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "recurse into subtrees")

	return cmd
}

// treeIshToTree peels a commit or annotated tag down to the tree it snapshots.
func treeIshToTree(r *repo.Repo, h object.Hash) (object.Hash, error) {
	obj, err := r.Store.Read(h)
	if err != nil {
		return "", err
	}
	switch o := obj.(type) {
	case *object.Tree:
		return h, nil
	case *object.Commit:
		return o.TreeHash(), nil
	case *object.Tag:
		return treeIshToTree(r, o.Target())
	default:
		return "", fmt.Errorf("object %s is a %s, not a tree-ish", h.Short(), obj.Type())
	}
}

func printTree(out io.Writer, r *repo.Repo, h object.Hash, prefix string, recurse bool) error {
	tree, err := r.Store.ReadTree(h)
	if err != nil {
		return err
	}
	for _, entry := range tree.Entries {
		full := entry.Name
		if prefix != "" {
			full = path.Join(prefix, entry.Name)
		}

		if entry.IsDir() && recurse {
			if err := printTree(out, r, entry.Target, full, true); err != nil {
				return err
			}
			continue
		}

		kind := object.TypeBlob
		if entry.IsDir() {
			kind = object.TypeTree
		}
		fmt.Fprintf(out, "%s %s %s\t%s\n", padMode(entry.Mode), kind, entry.Target, full)
	}
	return nil
}

// padMode left-pads a 5-digit mode with a zero for display, matching the
// reference tool's ls-tree output.
func padMode(mode string) string {
	if len(mode) < 6 {
		return strings.Repeat("0", 6-len(mode)) + mode
	}
	return mode
}

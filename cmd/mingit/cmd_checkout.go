package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/mingit/pkg/object"
	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <commit|tree> <directory>",
		Short: "Materialize a tree snapshot into an empty directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			h, err := r.ResolveName(args[0])
			if err != nil {
				return err
			}

			dest := args[1]
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("create destination: %w", err)
			}

			obj, err := r.Store.Read(h)
			if err != nil {
				return err
			}
			switch obj.(type) {
			case *object.Commit:
				return r.CheckoutCommit(h, dest)
			case *object.Tree:
				return r.CheckoutTree(h, dest)
			default:
				return fmt.Errorf("object %s is a %s; checkout needs a commit or tree", h.Short(), obj.Type())
			}
		},
	}
}

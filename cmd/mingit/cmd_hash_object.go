package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/mingit/pkg/object"
	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd() *cobra.Command {
	var objType string
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [-t type] [-w] <path>",
		Short: "Compute an object id, optionally storing the object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			// Parsing validates the payload against its declared grammar
			// (a no-op for blobs).
			obj, err := object.Unmarshal(object.ObjectType(objType), data)
			if err != nil {
				return err
			}

			var h object.Hash
			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				h, err = r.Store.Write(obj, true)
				if err != nil {
					return err
				}
			} else {
				payload, err := obj.Marshal()
				if err != nil {
					return err
				}
				h = object.HashObject(obj.Type(), payload)
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().StringVarP(&objType, "type", "t", "blob", "object type (blob, tree, commit, tag)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "actually write the object into the database")

	return cmd
}

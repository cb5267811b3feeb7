package main

import (
	"fmt"

	"github.com/odvcencio/mingit/pkg/object"
	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <type> <object>",
		Short: "Print the payload of a repository object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wantType := object.ObjectType(args[0])

			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			h, err := r.ResolveName(args[1])
			if err != nil {
				return err
			}
			obj, err := r.Store.Read(h)
			if err != nil {
				return err
			}
			if obj.Type() != wantType {
				return fmt.Errorf("object %s is a %s, not a %s", h.Short(), obj.Type(), wantType)
			}

			payload, err := obj.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
}

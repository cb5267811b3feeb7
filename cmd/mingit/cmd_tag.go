package main

import (
	"fmt"

	"github.com/odvcencio/mingit/pkg/repo"
	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var annotate bool
	var force bool
	var message string
	var tagger string

	cmd := &cobra.Command{
		Use:   "tag [name [object]]",
		Short: "List tags, or create a tag pointing at an object",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			if len(args) == 0 {
				names, err := r.ListTags()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			name := args[0]
			targetName := "HEAD"
			if len(args) > 1 {
				targetName = args[1]
			}
			target, err := r.ResolveName(targetName)
			if err != nil {
				return err
			}

			if annotate {
				if message == "" {
					return fmt.Errorf("annotated tags need a message (-m)")
				}
				if _, err := r.CreateAnnotatedTag(name, target, tagger, message, force); err != nil {
					return err
				}
				return nil
			}
			return r.CreateTag(name, target, force)
		},
	}

	cmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "create an annotated tag object")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing tag")
	cmd.Flags().StringVarP(&message, "message", "m", "", "tag message (with -a)")
	cmd.Flags().StringVar(&tagger, "tagger", "", "tagger identity (with -a)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/raysuliteanu/gitgo/pkg/repo"
	"github.com/spf13/cobra"
)

func newCommitTreeCmd() *cobra.Command {
	var (
		parent  string
		message string
	)

	cmd := &cobra.Command{
		Use:   "commit-tree <tree>",
		Short: "Create a commit object from an existing tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			h, err := r.CommitTree(args[0], parent, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "id of the parent commit")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit log message")
	return cmd
}

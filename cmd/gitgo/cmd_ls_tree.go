package main

import (
	"fmt"

	"github.com/raysuliteanu/gitgo/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsTreeCmd() *cobra.Command {
	var (
		recursive bool
		nameOnly  bool
		showSize  bool
	)

	cmd := &cobra.Command{
		Use:   "ls-tree <tree-ish>",
		Short: "List the contents of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			rows, err := r.ListTree(args[0], recursive)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range rows {
				switch {
				case nameOnly:
					fmt.Fprintln(out, row.Name)
				case showSize:
					fmt.Fprintf(out, "%s %s %s %7s\t%s\n", row.Mode, row.Type, row.Hash, row.Size, row.Name)
				default:
					fmt.Fprintf(out, "%s %s %s\t%s\n", row.Mode, row.Type, row.Hash, row.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recurse into sub-trees")
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "list only entry names")
	cmd.Flags().BoolVarP(&showSize, "long", "l", false, "show object size of blob entries")
	return cmd
}

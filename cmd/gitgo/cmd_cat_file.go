package main

import (
	"fmt"

	"github.com/raysuliteanu/gitgo/pkg/object"
	"github.com/raysuliteanu/gitgo/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	var (
		pretty   bool
		showType bool
		showSize bool
		exists   bool
	)

	cmd := &cobra.Command{
		Use:   "cat-file <object>",
		Short: "Show contents or details of a stored object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			obj, err := r.Store.Read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case exists:
				return nil
			case showType:
				fmt.Fprintln(out, obj.Type)
			case showSize:
				fmt.Fprintln(out, obj.Size)
			case pretty:
				if obj.Type == object.TypeTree {
					rows, err := r.ListTree(string(obj.Hash), false)
					if err != nil {
						return err
					}
					for _, row := range rows {
						fmt.Fprintf(out, "%s %s %s\t%s\n", row.Mode, row.Type, row.Hash, row.Name)
					}
					return nil
				}
				fmt.Fprintf(out, "%s", obj.Body)
			default:
				return fmt.Errorf("cat-file: one of -p, -t, -s, or -e is required")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "pretty-print the object's content")
	cmd.Flags().BoolVarP(&showType, "type", "t", false, "show the object's type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "show the object's size")
	cmd.Flags().BoolVarP(&exists, "exists", "e", false, "exit with zero iff the object exists")
	cmd.MarkFlagsMutuallyExclusive("pretty", "type", "size", "exists")
	return cmd
}

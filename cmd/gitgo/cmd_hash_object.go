package main

import (
	"fmt"
	"io"
	"os"

	"github.com/raysuliteanu/gitgo/pkg/object"
	"github.com/raysuliteanu/gitgo/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd() *cobra.Command {
	var (
		typeName  string
		write     bool
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "hash-object [files...]",
		Short: "Compute object ID and optionally store the object",
		RunE: func(cmd *cobra.Command, args []string) error {
			objType, err := object.ParseObjectType(typeName)
			if err != nil {
				return err
			}

			var bodies [][]byte
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				bodies = append(bodies, data)
			}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				bodies = append(bodies, data)
			}
			if len(bodies) == 0 {
				return fmt.Errorf("nothing to hash: pass files or --stdin")
			}

			var store func(object.ObjectType, []byte) (object.Hash, error)
			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				store = r.Store.Write
			} else {
				store = func(t object.ObjectType, body []byte) (object.Hash, error) {
					return object.HashObject(t, body), nil
				}
			}

			for _, body := range bodies {
				h, err := store(objType, body)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "blob", "object type to hash")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object into the store")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read content from standard input")
	return cmd
}

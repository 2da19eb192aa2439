package main

import (
	"fmt"

	"github.com/raysuliteanu/gitgo/pkg/repo"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> [value]",
		Short: "Get or set repository options",
		Long:  "Keys use section.key form, e.g. user.name or init.defaultbranch.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			if len(args) == 2 {
				return r.SetConfig(args[0], args[1])
			}

			cfg, err := r.ReadConfig()
			if err != nil {
				return err
			}
			value, ok := cfg.Get(args[0])
			if !ok {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

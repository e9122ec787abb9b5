package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bcblab/resscore/tables"
)

func tablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the built-in score tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range tables.Names() {
				table, _ := tables.Builtin(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					name, table.Alphabet())
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bcblab/resscore/seq"
)

func lookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup RESIDUES...",
		Short: "Print the score of each residue",
		Long: "Print the score of each residue character in the arguments.\n" +
			"Residues absent from the table score the fixed default of 0.05.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := openTable()
			if err != nil {
				return err
			}
			for _, arg := range args {
				for _, r := range []byte(arg) {
					fmt.Fprintf(cmd.OutOrStdout(), "%c\t%g\n",
						r, table.Score(seq.Residue(r)))
				}
			}
			return nil
		},
	}
}

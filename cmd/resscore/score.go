package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bcblab/resscore/io/fasta"
	"github.com/bcblab/resscore/seq"
)

func scoreCommand() *cobra.Command {
	var flagEach bool

	cmd := &cobra.Command{
		Use:   "score [FASTA...]",
		Short: "Score the sequences in FASTA files",
		Long: "Score every sequence in the given FASTA files, printing the\n" +
			"name, total score and mean score per sequence. With no\n" +
			"arguments (or '-'), sequences are read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := openTable()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, arg := range args {
				if err := scoreFile(cmd.OutOrStdout(), table, arg, flagEach); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagEach, "each", false,
		"Also print a score line for every residue.")
	return cmd
}

func scoreFile(out io.Writer, table *seq.ScoreTable, path string, each bool) error {
	var in io.Reader
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	entries, err := fasta.NewReader(in).ReadAll()
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("sequences", len(entries)).Msg("read FASTA")

	for _, entry := range entries {
		s := entry.Seq()
		total, mean := table.ScoreSequence(s)
		fmt.Fprintf(out, "%s\t%g\t%g\n", s.Name, total, mean)
		if each {
			for _, r := range s.Residues {
				fmt.Fprintf(out, "\t%c\t%g\n", r, table.Score(r))
			}
		}
	}
	return nil
}

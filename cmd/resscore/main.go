package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bcblab/resscore/seq"
	"github.com/bcblab/resscore/tables"
)

var (
	flagTable   string
	flagVerbose bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:          "resscore",
		Short:        "Score amino acid residues against fixed score tables",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&flagTable, "table", "uniform",
		"Score table: a built-in name or a path to a YAML table file.")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable debug logging.")

	rootCmd.AddCommand(lookupCommand())
	rootCmd.AddCommand(scoreCommand())
	rootCmd.AddCommand(tablesCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openTable resolves the --table flag to a score table.
func openTable() (*seq.ScoreTable, error) {
	table, err := tables.Open(flagTable)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("table", flagTable).
		Str("alphabet", table.Alphabet().String()).
		Msg("score table loaded")
	return table, nil
}

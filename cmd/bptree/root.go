package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/bptree/internal/logging"
)

var (
	logLevel  string
	logFormat string
	log       logging.Logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bptree",
	Short: "Conformance and benchmark harness for the bptree package",
	Long: `bptree drives randomized operations against an in-memory generic
B+ tree and reports whether its observable behavior matches a reference
implementation, plus how fast it gets there.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(logging.Config{
			Level:  logLevel,
			Format: logFormat,
			Output: "stderr",
		})
		log = log.WithRunID(logging.GenerateRunID())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")

	rootCmd.AddCommand(fuzzCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(statsCmd)
}

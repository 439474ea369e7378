package main

import (
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/bptree/bptree"
)

var (
	statsN     int
	statsOrder int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build a tree of N sequential entries and report its shape",
	Run: func(cmd *cobra.Command, args []string) {
		runStats(cmd)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsN, "n", 10000, "number of entries to insert")
	statsCmd.Flags().IntVar(&statsOrder, "order", 32, "tree branching factor")
}

func runStats(cmd *cobra.Command) {
	log = log.WithCommand("stats")

	tree := bptree.New[int, struct{}](bptree.WithOrder[int, struct{}](statsOrder))
	for i := 0; i < statsN; i++ {
		tree.Insert(i, struct{}{})
	}

	stats := tree.Stats()
	log.Info("tree built", "n", statsN, "order", statsOrder)
	cmd.Printf("height:         %d\n", stats.Height)
	cmd.Printf("internal nodes: %d\n", stats.InternalNodes)
	cmd.Printf("leaf nodes:     %d\n", stats.LeafNodes)
	cmd.Printf("total keys:     %d\n", stats.TotalKeys)
}

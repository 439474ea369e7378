package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/bptree/bptree"
)

var (
	benchN     int
	benchOrder int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure insert, find, and iteration throughput",
	Run: func(cmd *cobra.Command, args []string) {
		runBench(cmd)
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchN, "n", 200000, "number of entries to insert")
	benchCmd.Flags().IntVar(&benchOrder, "order", 32, "tree branching factor")
}

func runBench(cmd *cobra.Command) {
	log = log.WithCommand("bench")

	tree := bptree.New[int, int](bptree.WithOrder[int, int](benchOrder))

	insertTime := measure(func() {
		for i := 0; i < benchN; i++ {
			tree.Insert(i, i)
		}
	})
	log.Info("insert complete", "n", benchN, "duration", insertTime.String())

	findTime := measure(func() {
		for i := 0; i < benchN; i++ {
			tree.Find(i)
		}
	})
	log.Info("find complete", "n", benchN, "duration", findTime.String())

	var sum int
	iterTime := measure(func() {
		for _, v := range tree.All() {
			sum += v
		}
	})
	log.Info("iteration complete", "n", benchN, "duration", iterTime.String(), "checksum", sum)

	cmd.Printf("insert: %v (%.0f ops/s)\n", insertTime, opsPerSecond(benchN, insertTime))
	cmd.Printf("find:   %v (%.0f ops/s)\n", findTime, opsPerSecond(benchN, findTime))
	cmd.Printf("iterate: %v (%.0f ops/s)\n", iterTime, opsPerSecond(benchN, iterTime))
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func opsPerSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

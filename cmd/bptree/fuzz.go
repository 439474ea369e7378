package main

import (
	"math/rand/v2"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/bptree/bptree"
)

var (
	fuzzOps   int
	fuzzSeed  uint64
	fuzzOrder int
	fuzzKeys  int
)

var fuzzCmd = &cobra.Command{
	Use:   "fuzz",
	Short: "Run randomized insert/erase/find sequences against a reference map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFuzz(cmd)
	},
}

func init() {
	fuzzCmd.Flags().IntVar(&fuzzOps, "ops", 20000, "number of random operations to perform")
	fuzzCmd.Flags().Uint64Var(&fuzzSeed, "seed", 1, "PRNG seed")
	fuzzCmd.Flags().IntVar(&fuzzOrder, "order", 16, "tree branching factor")
	fuzzCmd.Flags().IntVar(&fuzzKeys, "keys", 4000, "size of the key universe operations draw from")
}

// runFuzz drives the same three operations (insert, erase, find) against
// both a bptree.Tree and a plain Go map keyed the same way, comparing
// observable results at every step. Any divergence is reported with the
// step number, operation and key at which it occurred; rerunning with the
// same flags (including --seed) replays the same operation sequence.
func runFuzz(cmd *cobra.Command) error {
	log = log.WithCommand("fuzz")

	if fuzzKeys <= 0 {
		return errors.New("fuzz: --keys must be positive")
	}

	rng := rand.New(rand.NewPCG(fuzzSeed, fuzzSeed^0x9e3779b97f4a7c15))
	tree := bptree.New[int, string](bptree.WithOrder[int, string](fuzzOrder))
	reference := make(map[int]string)

	log.Info("fuzz starting", "ops", fuzzOps, "seed", fuzzSeed, "order", fuzzOrder, "keys", fuzzKeys)

	for i := 0; i < fuzzOps; i++ {
		key := rng.IntN(fuzzKeys)
		switch rng.IntN(3) {
		case 0:
			value := strconv.Itoa(i)
			_, treeInserted := tree.Insert(key, value)
			_, refExisted := reference[key]
			if treeInserted == refExisted {
				return errors.Wrapf(divergence(i, "insert", key), "insert reported inserted=%v, reference already had key=%v", treeInserted, refExisted)
			}
			if !refExisted {
				reference[key] = value
			}

		case 1:
			treeCount := tree.EraseKey(key)
			_, refExisted := reference[key]
			wantCount := 0
			if refExisted {
				wantCount = 1
				delete(reference, key)
			}
			if treeCount != wantCount {
				return errors.Wrapf(divergence(i, "erase", key), "erase removed %d, want %d", treeCount, wantCount)
			}

		case 2:
			v, err := tree.At(key)
			refV, refExisted := reference[key]
			if refExisted && (err != nil || v != refV) {
				return errors.Wrapf(divergence(i, "find", key), "tree At returned (%q, %v), reference has %q", v, err, refV)
			}
			if !refExisted && err == nil {
				return errors.Wrapf(divergence(i, "find", key), "tree At returned %q, reference has no entry", v)
			}
		}

		if tree.Size() != len(reference) {
			return errors.Wrapf(divergence(i, "size", key), "tree size %d != reference size %d", tree.Size(), len(reference))
		}
	}

	log.Info("fuzz completed with no divergence", "final_size", tree.Size())
	cmd.Printf("OK: %d operations, final size %d\n", fuzzOps, tree.Size())
	return nil
}

func divergence(step int, op string, key int) error {
	return errors.Errorf("divergence at step %d (%s key=%d)", step, op, key)
}

// Package logging provides structured logging for the bptree conformance
// and benchmark harness's fuzz, bench, and stats subcommands.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"sync/atomic"
	"time"
)

// runIDCounter distinguishes IDs generated by this process within the same
// second; separate runs each start it afresh and rely on the random part.
var runIDCounter uint64

// GenerateRunID returns an identifier unique to one invocation of the
// bptree binary. PersistentPreRun attaches it to the root logger so every
// line a fuzz, bench, or stats run produces can be told apart from the
// lines of a different run captured in the same terminal or log file
// (e.g. a shell loop re-running `bptree fuzz` with a new seed each time).
// The format is timestamp-counter-random (e.g. "683b2b40-0001-a1b2c3d4").
func GenerateRunID() string {
	ts := time.Now().Unix()

	counter := atomic.AddUint64(&runIDCounter, 1)

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return formatRunID(ts, counter, "00000000")
	}

	return formatRunID(ts, counter, hex.EncodeToString(randomBytes))
}

// formatRunID formats the run ID components.
func formatRunID(ts int64, counter uint64, random string) string {
	return hex.EncodeToString([]byte{
		byte(ts >> 24), byte(ts >> 16), byte(ts >> 8), byte(ts),
	}) + "-" + formatCounter(counter) + "-" + random
}

// formatCounter formats the counter as a hex string.
func formatCounter(counter uint64) string {
	return hex.EncodeToString([]byte{
		byte(counter >> 8), byte(counter),
	})
}

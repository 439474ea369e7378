// Command bptree is a conformance and benchmark harness for the bptree
// package: it drives randomized insert/erase/find sequences against a
// tree and a reference map, reports any divergence, and measures
// throughput.
package main

func main() {
	Execute()
}

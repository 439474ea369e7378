// Package bptree implements an in-memory, ordered, generic B+ tree.
//
// A Tree is an associative container keyed by an arbitrary totally ordered
// key type, storing one value per key. It supports logarithmic lookup,
// insert, and erase, plus bidirectional ordered iteration over a doubly
// linked chain of leaves. The tree keeps no on-disk representation and
// performs no synchronization of its own; concurrent access from multiple
// goroutines must be serialized by the caller.
//
// Construct a tree with New for key types that satisfy cmp.Ordered, or
// with NewFunc to supply an explicit comparison function for key types
// that do not have a natural ordering:
//
//	t := bptree.New[int, string]()
//	t.Insert(7, "seven")
//	v, err := t.At(7)
//
//	names := bptree.NewFunc[string, int](strings.Compare)
//	names.Insert("carol", 3)
package bptree

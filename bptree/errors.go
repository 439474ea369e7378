package bptree

import "errors"

// ErrKeyNotFound is returned by At when the requested key is absent from
// the tree. It is the only user-visible failure path of the core.
var ErrKeyNotFound = errors.New("bptree: key not found")

// ErrIteratorInvalidated is the panic value raised when an iterator is
// advanced, retreated, or dereferenced after the tree it was obtained from
// has been mutated (any insert that added an entry or erase that removed
// one, with or without a split, merge or redistribution). Using an iterator across such a
// mutation is a precondition violation; the tree detects it rather than
// returning stale or corrupted positions.
var ErrIteratorInvalidated = errors.New("bptree: iterator invalidated by mutation")

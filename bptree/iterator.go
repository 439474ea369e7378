package bptree

import "iter"

// Iterator is a bidirectional cursor over a Tree's entries in ascending
// key order. The zero value is not meaningful; obtain one from a Tree's
// Find, Begin, End, LowerBound, UpperBound, Insert, or EqualRange.
//
// An iterator is a non-owning reference into the tree. Every insert that
// adds an entry and every erase that removes one (whether or not it
// splits, merges or redistributes nodes) invalidates every iterator taken
// before it; using one afterwards panics with ErrIteratorInvalidated
// rather than returning a stale or corrupted position.
type Iterator[K any, V any] struct {
	tree *Tree[K, V]
	leaf *node[K, V] // nil marks the end sentinel
	idx  int
	gen  uint64
}

func (t *Tree[K, V]) newIterator(leaf *node[K, V], idx int) *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, leaf: leaf, idx: idx, gen: t.gen}
}

// Begin returns an iterator to the first entry in ascending order, or an
// iterator equal to End if the tree is empty.
func (t *Tree[K, V]) Begin() *Iterator[K, V] {
	if t.size == 0 {
		return t.End()
	}
	return t.newIterator(t.head, 0)
}

// End returns the sentinel iterator positioned past the last entry.
func (t *Tree[K, V]) End() *Iterator[K, V] {
	return t.newIterator(nil, 0)
}

func (it *Iterator[K, V]) checkValid() {
	if it.tree.gen != it.gen {
		panic(ErrIteratorInvalidated)
	}
}

// Valid reports whether it references an entry (false for the end
// sentinel).
func (it *Iterator[K, V]) Valid() bool {
	it.checkValid()
	return it.leaf != nil
}

// Key returns the immutable key at the iterator's position. It panics if
// the iterator is at end.
func (it *Iterator[K, V]) Key() K {
	it.checkValid()
	if it.leaf == nil {
		panic("bptree: Key called on end iterator")
	}
	return it.leaf.keys[it.idx]
}

// Value returns the value at the iterator's position. It panics if the
// iterator is at end.
func (it *Iterator[K, V]) Value() V {
	it.checkValid()
	if it.leaf == nil {
		panic("bptree: Value called on end iterator")
	}
	return it.leaf.values[it.idx]
}

// SetValue overwrites the value at the iterator's position in place. It
// panics if the iterator is at end. Unlike Insert or Erase this does not
// bump the tree's generation counter: it changes an entry's value without
// touching tree structure, so other live iterators stay valid.
func (it *Iterator[K, V]) SetValue(v V) {
	it.checkValid()
	if it.leaf == nil {
		panic("bptree: SetValue called on end iterator")
	}
	it.leaf.values[it.idx] = v
}

// Next advances the iterator to the next entry in ascending order, or to
// end if it was at the last entry. It panics if already at end.
func (it *Iterator[K, V]) Next() {
	it.checkValid()
	if it.leaf == nil {
		panic("bptree: Next called on end iterator")
	}
	if it.idx+1 < len(it.leaf.keys) {
		it.idx++
		return
	}
	it.leaf = it.leaf.next
	it.idx = 0
}

// Prev retreats the iterator to the previous entry in ascending order.
// Retreating from end yields the last entry. Retreating from the first
// entry is undefined, per the precondition-violation contract of Prev.
func (it *Iterator[K, V]) Prev() {
	it.checkValid()
	if it.leaf == nil {
		it.leaf = it.tree.tail
		if it.leaf != nil {
			it.idx = len(it.leaf.keys) - 1
		}
		return
	}
	if it.idx > 0 {
		it.idx--
		return
	}
	it.leaf = it.leaf.prev
	if it.leaf != nil {
		it.idx = len(it.leaf.keys) - 1
	}
}

// Equal reports whether it and other reference the same position: both
// at end, or both at the same (leaf, index).
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	it.checkValid()
	other.checkValid()
	return it.leaf == other.leaf && (it.leaf == nil || it.idx == other.idx)
}

// All returns a range-over-func sequence across the tree's entries in
// ascending key order, for use with for k, v := range t.All(). Mutating
// the tree while an All loop is in progress panics the next time the loop
// resumes, the same as a stale cursor Iterator would.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := t.gen
		for n := t.head; n != nil; n = n.next {
			for i := range n.keys {
				if t.gen != gen {
					panic(ErrIteratorInvalidated)
				}
				if !yield(n.keys[i], n.values[i]) {
					return
				}
			}
		}
	}
}

// Backward returns a range-over-func sequence across the tree's entries
// in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := t.gen
		for n := t.tail; n != nil; n = n.prev {
			for i := len(n.keys) - 1; i >= 0; i-- {
				if t.gen != gen {
					panic(ErrIteratorInvalidated)
				}
				if !yield(n.keys[i], n.values[i]) {
					return
				}
			}
		}
	}
}

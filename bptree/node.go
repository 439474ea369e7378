package bptree

import "sort"

// node is either a leaf or an internal node of the tree. Leaves hold
// entries directly (keys and values in parallel slices) and are linked
// into a doubly linked chain via next/prev for O(1) iteration. Internal
// nodes hold separator keys and one more child than they have keys; a
// child at index i covers keys in [keys[i-1], keys[i]).
type node[K any, V any] struct {
	leaf bool

	keys []K

	// leaf-only fields
	values []V
	next   *node[K, V]
	prev   *node[K, V]

	// internal-only fields
	children []*node[K, V]
}

func newLeaf[K any, V any](order int) *node[K, V] {
	return &node[K, V]{
		leaf:   true,
		keys:   make([]K, 0, order),
		values: make([]V, 0, order),
	}
}

func newInternal[K any, V any](order int) *node[K, V] {
	return &node[K, V]{
		leaf:     false,
		keys:     make([]K, 0, order),
		children: make([]*node[K, V], 0, order+1),
	}
}

func (n *node[K, V]) keyCount() int {
	return len(n.keys)
}

// minKeys is the floor on a non-root node's key count: ceil(order/2)-1.
func minKeys(order int) int {
	return (order+1)/2 - 1
}

func (n *node[K, V]) isFull(order int) bool {
	return len(n.keys) >= order-1
}

func (n *node[K, V]) isUnderflow(order int) bool {
	return len(n.keys) < minKeys(order)
}

func (n *node[K, V]) canBorrow(order int) bool {
	return len(n.keys) > minKeys(order)
}

// locate returns the position of key within n.keys via binary search: the
// index of the first key >= query, and whether that key equals query
// exactly. For leaves this is the slot the entry occupies (or would
// occupy on insert); for internal nodes it is used by childIndex below.
func (n *node[K, V]) locate(key K, compare func(a, b K) int) (int, bool) {
	idx := sort.Search(len(n.keys), func(i int) bool {
		return compare(n.keys[i], key) >= 0
	})
	if idx < len(n.keys) && compare(n.keys[idx], key) == 0 {
		return idx, true
	}
	return idx, false
}

// childIndex returns the index of the child that must contain key, for an
// internal node with keys k0 < k1 < ... and children c0..cn where every
// key in ci is < k(i) and (for i>0) >= k(i-1).
func (n *node[K, V]) childIndex(key K, compare func(a, b K) int) int {
	idx := sort.Search(len(n.keys), func(i int) bool {
		return compare(n.keys[i], key) > 0
	})
	return idx
}

// insertEntryAt shifts leaf entries right and places a new one at index i.
func (n *node[K, V]) insertEntryAt(i int, key K, value V) {
	n.keys = append(n.keys, key)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key

	n.values = append(n.values, value)
	copy(n.values[i+1:], n.values[i:])
	n.values[i] = value
}

// removeEntryAt shifts leaf entries left, removing the one at index i.
func (n *node[K, V]) removeEntryAt(i int) (K, V) {
	key := n.keys[i]
	value := n.values[i]
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.values = append(n.values[:i], n.values[i+1:]...)
	return key, value
}

// insertSeparatorAt places key at position i and rightChild at i+1,
// shifting existing separators and children right.
func (n *node[K, V]) insertSeparatorAt(i int, key K, rightChild *node[K, V]) {
	n.keys = append(n.keys, key)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = rightChild
}

// removeSeparatorAt removes the separator key at index i and the child
// immediately to its right at index i+1 (used when merging childIdx+1
// into childIdx).
func (n *node[K, V]) removeSeparatorAt(i int) {
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.children = append(n.children[:i+1], n.children[i+2:]...)
}

func (n *node[K, V]) firstKey() K {
	return n.keys[0]
}

func (n *node[K, V]) lastKey() K {
	return n.keys[len(n.keys)-1]
}

// link splices n between prev and next in the leaf chain.
func (n *node[K, V]) link(prev, next *node[K, V]) {
	n.prev = prev
	n.next = next
	if prev != nil {
		prev.next = n
	}
	if next != nil {
		next.prev = n
	}
}

// unlink removes n from the leaf chain it participates in.
func (n *node[K, V]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

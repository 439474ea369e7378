package bptree

// EraseKey removes the entry for key, if present, and returns the number
// of entries removed (0 or 1, since keys are unique).
func (t *Tree[K, V]) EraseKey(key K) int {
	leaf, path := t.findPath(key)
	idx, found := leaf.locate(key, t.compare)
	if !found {
		return 0
	}

	leaf.removeEntryAt(idx)
	t.size--
	t.rebalanceAfterErase(leaf, path)
	t.gen++

	return 1
}

// EraseIterator removes the entry it references and returns an iterator
// to the entry that followed it. Using an invalid or end iterator panics.
func (t *Tree[K, V]) EraseIterator(it *Iterator[K, V]) *Iterator[K, V] {
	it.checkValid()
	if it.leaf == nil {
		panic("bptree: EraseIterator called on end iterator")
	}
	key := it.leaf.keys[it.idx]
	t.EraseKey(key)
	return t.LowerBound(key)
}

// EraseRange removes every entry in [first, last) and returns an iterator
// equivalent to last. It behaves as repeated EraseIterator calls from
// first, stopping once the current position reaches last's original
// key (or end, if last was end); because every erase invalidates
// previously obtained iterators under this tree's invalidation policy,
// the stopping point is tracked by key rather than by comparing against
// the caller's last iterator directly.
func (t *Tree[K, V]) EraseRange(first, last *Iterator[K, V]) *Iterator[K, V] {
	first.checkValid()
	last.checkValid()

	atEnd := last.leaf == nil
	var stopKey K
	if !atEnd {
		stopKey = last.leaf.keys[last.idx]
	}

	cur := first
	for cur.leaf != nil {
		if !atEnd && t.compare(cur.leaf.keys[cur.idx], stopKey) == 0 {
			break
		}
		cur = t.EraseIterator(cur)
	}
	return cur
}

// rebalanceAfterErase is invoked on a node n immediately after it lost an
// entry or separator, with path describing n's ancestors. If n is the
// root it is exempt from the minimum-occupancy invariant, except that an
// internal root left with zero keys (one child) is replaced by that
// child. Otherwise, if n has underflowed, its parent performs a borrow or
// merge.
func (t *Tree[K, V]) rebalanceAfterErase(n *node[K, V], path []pathStep[K, V]) {
	if len(path) == 0 {
		if !n.leaf && n.keyCount() == 0 {
			t.root = n.children[0]
		}
		return
	}
	if !n.isUnderflow(t.order) {
		return
	}

	step := path[len(path)-1]
	parent := step.n
	idx := step.idx
	parentPath := path[:len(path)-1]

	if n.leaf {
		t.handleLeafUnderflow(n, parent, idx, parentPath)
	} else {
		t.handleInternalUnderflow(n, parent, idx, parentPath)
	}
}

// handleLeafUnderflow resolves an underflowing leaf at parent.children[idx]
// by borrowing from a sibling with spare capacity, preferring the left
// sibling, or else merging with a sibling.
func (t *Tree[K, V]) handleLeafUnderflow(n, parent *node[K, V], idx int, parentPath []pathStep[K, V]) {
	if idx > 0 {
		left := parent.children[idx-1]
		if left.canBorrow(t.order) {
			t.borrowFromLeftLeaf(left, n, parent, idx)
			return
		}
	}
	if idx+1 < len(parent.children) {
		right := parent.children[idx+1]
		if right.canBorrow(t.order) {
			t.borrowFromRightLeaf(n, right, parent, idx)
			return
		}
	}
	if idx > 0 {
		left := parent.children[idx-1]
		t.mergeLeaves(left, n, parent, idx-1, parentPath)
	} else {
		right := parent.children[idx+1]
		t.mergeLeaves(n, right, parent, idx, parentPath)
	}
}

// borrowFromLeftLeaf moves left's last entry to the front of right,
// updating the separator between them (at parent index rightIdx-1) to
// the new smallest key of right.
func (t *Tree[K, V]) borrowFromLeftLeaf(left, right *node[K, V], parent *node[K, V], rightIdx int) {
	k, v := left.removeEntryAt(len(left.keys) - 1)
	right.insertEntryAt(0, k, v)
	parent.keys[rightIdx-1] = right.firstKey()
}

// borrowFromRightLeaf moves right's first entry to the end of left,
// updating the separator between them (at parent index leftIdx) to
// right's new smallest key.
func (t *Tree[K, V]) borrowFromRightLeaf(left, right *node[K, V], parent *node[K, V], leftIdx int) {
	k, v := right.removeEntryAt(0)
	left.insertEntryAt(len(left.keys), k, v)
	parent.keys[leftIdx] = right.firstKey()
}

// mergeLeaves concatenates right onto the end of left, unlinks right from
// the leaf chain, and removes the separator and child pointer that led to
// right from parent, propagating further rebalancing upward if that
// leaves parent underflowing.
func (t *Tree[K, V]) mergeLeaves(left, right *node[K, V], parent *node[K, V], sepIdx int, parentPath []pathStep[K, V]) {
	left.keys = append(left.keys, right.keys...)
	left.values = append(left.values, right.values...)

	left.next = right.next
	if right.next != nil {
		right.next.prev = left
	}
	if t.tail == right {
		t.tail = left
	}

	parent.removeSeparatorAt(sepIdx)
	t.rebalanceAfterErase(parent, parentPath)
}

// handleInternalUnderflow resolves an underflowing internal node the same
// way as handleLeafUnderflow, but borrowing/merging rotate keys through
// the parent separator rather than moving leaf entries directly.
func (t *Tree[K, V]) handleInternalUnderflow(n, parent *node[K, V], idx int, parentPath []pathStep[K, V]) {
	if idx > 0 {
		left := parent.children[idx-1]
		if left.canBorrow(t.order) {
			t.borrowFromLeftInternal(left, n, parent, idx)
			return
		}
	}
	if idx+1 < len(parent.children) {
		right := parent.children[idx+1]
		if right.canBorrow(t.order) {
			t.borrowFromRightInternal(n, right, parent, idx)
			return
		}
	}
	if idx > 0 {
		left := parent.children[idx-1]
		t.mergeInternals(left, n, parent, idx-1, parentPath)
	} else {
		right := parent.children[idx+1]
		t.mergeInternals(n, right, parent, idx, parentPath)
	}
}

// borrowFromLeftInternal rotates one key/child from left through the
// parent separator at rightIdx-1 into the front of right.
func (t *Tree[K, V]) borrowFromLeftInternal(left, right *node[K, V], parent *node[K, V], rightIdx int) {
	sepIdx := rightIdx - 1
	downKey := parent.keys[sepIdx]

	movedChild := left.children[len(left.children)-1]
	left.children = left.children[:len(left.children)-1]
	upKey := left.keys[len(left.keys)-1]
	left.keys = left.keys[:len(left.keys)-1]

	right.keys = append(right.keys, downKey)
	copy(right.keys[1:], right.keys[:len(right.keys)-1])
	right.keys[0] = downKey

	right.children = append(right.children, nil)
	copy(right.children[1:], right.children[:len(right.children)-1])
	right.children[0] = movedChild

	parent.keys[sepIdx] = upKey
}

// borrowFromRightInternal rotates one key/child from right through the
// parent separator at leftIdx into the end of left.
func (t *Tree[K, V]) borrowFromRightInternal(left, right *node[K, V], parent *node[K, V], leftIdx int) {
	sepIdx := leftIdx
	downKey := parent.keys[sepIdx]

	movedChild := right.children[0]
	right.children = right.children[1:]
	upKey := right.keys[0]
	right.keys = right.keys[1:]

	left.keys = append(left.keys, downKey)
	left.children = append(left.children, movedChild)

	parent.keys[sepIdx] = upKey
}

// mergeInternals pulls the parent separator at sepIdx down into left,
// then appends right's keys and children onto left, removing right and
// the consumed separator from parent and propagating rebalancing upward
// if needed.
func (t *Tree[K, V]) mergeInternals(left, right *node[K, V], parent *node[K, V], sepIdx int, parentPath []pathStep[K, V]) {
	downKey := parent.keys[sepIdx]
	left.keys = append(left.keys, downKey)
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)

	parent.removeSeparatorAt(sepIdx)
	t.rebalanceAfterErase(parent, parentPath)
}

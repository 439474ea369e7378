package bptree

import (
	stdcmp "cmp"
)

// defaultOrder is used when no WithOrder option is supplied. It is chosen
// to keep node slices comfortably cache-friendly for small-to-medium value
// types; callers with large values (see WithOrder) should pick a smaller
// order so that a single leaf's backing arrays stay modest.
const defaultOrder = 32

// Tree is an in-memory, ordered, unique-keyed B+ tree. The zero value is
// not usable; construct one with New or NewFunc.
type Tree[K any, V any] struct {
	root    *node[K, V]
	head    *node[K, V]
	tail    *node[K, V]
	size    int
	order   int
	compare func(a, b K) int

	// gen is bumped on every insert that adds an entry and every erase
	// that removes one, including any split, merge, redistribution or
	// root replacement they cause. Iterators capture gen at creation and
	// compare it on every use; a mismatch means entries may have moved
	// since the iterator was taken.
	gen uint64
}

// treeConfig accumulates options before a Tree exists; Option carries the
// Tree's type parameters so that an option matches the New or NewFunc call
// it is passed to (WithOrder cannot infer them and is instantiated
// explicitly, e.g. WithOrder[int, string](8)), but the underlying config
// has no type parameters of its own.
type treeConfig struct {
	order int
}

// Option configures a Tree constructed by New or NewFunc.
type Option[K any, V any] func(*treeConfig)

// WithOrder sets the tree's branching factor B (maximum children per
// internal node; leaves hold at most B-1 entries). B must be >= 4; values
// below that are rounded up. A modest order (8-16) is appropriate when
// Value is large, keeping node occupancy independent of sizeof(Value).
func WithOrder[K any, V any](order int) Option[K, V] {
	return func(c *treeConfig) {
		c.order = order
	}
}

func resolveConfig[K any, V any](opts []Option[K, V]) treeConfig {
	cfg := treeConfig{order: defaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.order < 4 {
		cfg.order = 4
	}
	return cfg
}

// New constructs an empty Tree over a key type with a natural total order.
func New[K stdcmp.Ordered, V any](opts ...Option[K, V]) *Tree[K, V] {
	return NewFunc[K, V](stdcmp.Compare[K], opts...)
}

// NewFunc constructs an empty Tree using an explicit comparison function,
// for key types without a natural cmp.Ordered instance (case-insensitive
// strings, composite keys, and the like). compare must implement a strict
// weak ordering consistent with key equality.
func NewFunc[K any, V any](compare func(a, b K) int, opts ...Option[K, V]) *Tree[K, V] {
	cfg := resolveConfig(opts)
	root := newLeaf[K, V](cfg.order)
	t := &Tree[K, V]{
		root:    root,
		head:    root,
		tail:    root,
		order:   cfg.order,
		compare: compare,
	}
	return t
}

// Empty reports whether the tree holds no entries.
func (t *Tree[K, V]) Empty() bool {
	return t.size == 0
}

// Size returns the number of entries in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Order returns the tree's configured branching factor.
func (t *Tree[K, V]) Order() int {
	return t.order
}

// TreeStats reports structural counters useful for tests and diagnostics.
type TreeStats struct {
	Height        int
	InternalNodes int
	LeafNodes     int
	TotalKeys     int
}

// Stats walks the tree and reports its current shape.
func (t *Tree[K, V]) Stats() TreeStats {
	var stats TreeStats
	n := t.root
	for {
		stats.Height++
		if n.leaf {
			break
		}
		n = n.children[0]
	}

	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf {
			stats.LeafNodes++
			stats.TotalKeys += n.keyCount()
			continue
		}
		stats.InternalNodes++
		stack = append(stack, n.children...)
	}
	return stats
}

// pathStep records the internal node visited during a root-to-leaf descent
// and the index of the child chosen at that node, so that erase can
// re-ascend to rebalance without storing parent back-pointers on nodes.
type pathStep[K any, V any] struct {
	n   *node[K, V]
	idx int
}

// findLeaf descends from the root to the leaf that does or would contain
// key, without recording the path.
func (t *Tree[K, V]) findLeaf(key K) *node[K, V] {
	n := t.root
	for !n.leaf {
		idx := n.childIndex(key, t.compare)
		n = n.children[idx]
	}
	return n
}

// findPath descends from the root to the leaf that does or would contain
// key, recording each internal node and the child index taken, for use by
// erase's upward rebalancing pass.
func (t *Tree[K, V]) findPath(key K) (*node[K, V], []pathStep[K, V]) {
	var path []pathStep[K, V]
	n := t.root
	for !n.leaf {
		idx := n.childIndex(key, t.compare)
		path = append(path, pathStep[K, V]{n: n, idx: idx})
		n = n.children[idx]
	}
	return n, path
}

// findLeftmostLeaf and findRightmostLeaf recompute the first and last
// leaves by descending from root, independently of the cached head/tail.
// Nothing in the package or its tests calls them at present.
func (t *Tree[K, V]) findLeftmostLeaf() *node[K, V] {
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

func (t *Tree[K, V]) findRightmostLeaf() *node[K, V] {
	n := t.root
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}

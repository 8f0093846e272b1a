package intervalmap

import (
	"cmp"

	"volta/internal/arena"
)

// Leaf and branch fan-out. Splits hand the right node ceil(cap/2) entries
// at minimum, so every non-root node stays at least half full (the map
// never deletes).
const (
	leafCapacity   = 8
	branchCapacity = 8
)

// interval is the (left, right) key of one stored record. Intervals order
// lexicographically: by left endpoint, then by right.
type interval[K cmp.Ordered] struct {
	left  K
	right K
}

func (a interval[K]) compare(b interval[K]) int {
	if c := cmp.Compare(a.left, b.left); c != 0 {
		return c
	}
	return cmp.Compare(a.right, b.right)
}

// node is either *leaf or *branch. summarize reports the subtree's largest
// key and largest right endpoint, the two aggregates branches cache per
// child.
type node[K cmp.Ordered, V any] interface {
	summarize() (interval[K], K)
}

type leaf[K cmp.Ordered, V any] struct {
	count  int
	keys   [leafCapacity]interval[K]
	values [leafCapacity]V
}

func (l *leaf[K, V]) summarize() (interval[K], K) {
	maxKey := l.keys[l.count-1]
	maxRight := l.keys[0].right
	for i := 1; i < l.count; i++ {
		if l.keys[i].right > maxRight {
			maxRight = l.keys[i].right
		}
	}
	return maxKey, maxRight
}

type branch[K cmp.Ordered, V any] struct {
	count    int
	children [branchCapacity]node[K, V]
	// maxKey[i] is the largest key in children[i]'s subtree; it routes
	// inserts and keeps children ordered.
	maxKey [branchCapacity]interval[K]
	// maxRight[i] is the largest right endpoint in children[i]'s subtree,
	// used to prune overlap searches.
	maxRight [branchCapacity]K
}

func (b *branch[K, V]) summarize() (interval[K], K) {
	maxRight := b.maxRight[0]
	for i := 1; i < b.count; i++ {
		if b.maxRight[i] > maxRight {
			maxRight = b.maxRight[i]
		}
	}
	return b.maxKey[b.count-1], maxRight
}

// refresh recomputes the cached aggregates for child i.
func (b *branch[K, V]) refresh(i int) {
	b.maxKey[i], b.maxRight[i] = b.children[i].summarize()
}

// Allocator supplies node storage for a Map. Every mutating call takes one
// explicitly; the map performs no allocation of its own. One allocator may
// back several maps, but a given map must see the same allocator on every
// insert, and the allocator must outlive the map and its iterators.
type Allocator[K cmp.Ordered, V any] struct {
	leaves   *arena.Pool[leaf[K, V]]
	branches *arena.Pool[branch[K, V]]
}

// NewAllocator creates an allocator backed by fresh arena pools.
func NewAllocator[K cmp.Ordered, V any]() *Allocator[K, V] {
	return &Allocator[K, V]{
		leaves:   arena.NewPool[leaf[K, V]](1 << 6),
		branches: arena.NewPool[branch[K, V]](1 << 6),
	}
}

func (a *Allocator[K, V]) newLeaf() *leaf[K, V] {
	return a.leaves.New(leaf[K, V]{})
}

func (a *Allocator[K, V]) newBranch() *branch[K, V] {
	return a.branches.New(branch[K, V]{})
}

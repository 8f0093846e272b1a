// Package intervalmap provides an ordered container keyed by intervals
// rather than points: an augmented B+-tree storing (left, right, value)
// records in ascending (left, right) order, with cached per-subtree right
// bounds for overlap pruning. Duplicate intervals are retained; the
// container is a multiset.
//
// All node storage comes from an explicit Allocator; nothing is freed
// individually. The map is not safe for concurrent mutation, and any
// insert that restructures the tree invalidates outstanding iterators.
package intervalmap

import (
	"cmp"
)

// Map stores intervals over a totally ordered key type. The zero value is
// an empty map ready for use.
type Map[K cmp.Ordered, V any] struct {
	root   node[K, V]
	height int // levels of branches above the leaves; 0 means root is a leaf
	size   int
	bounds interval[K]
	alloc  *Allocator[K, V]
}

// Empty reports whether no intervals are stored.
func (m *Map[K, V]) Empty() bool { return m.size == 0 }

// Len returns the number of stored intervals.
func (m *Map[K, V]) Len() int { return m.size }

// Bounds returns (min left, max right) over all stored intervals. The pair
// is maintained incrementally by Insert, not by scanning. Panics on an
// empty map.
func (m *Map[K, V]) Bounds() (K, K) {
	if m.size == 0 {
		panic("intervalmap: Bounds of an empty map")
	}
	return m.bounds.left, m.bounds.right
}

// Insert stores (left, right, value). Requires left <= right; a degenerate
// interval with left == right is a valid point. Amortized O(log n); when a
// node overflows it splits around its midpoint and the tree branches.
func (m *Map[K, V]) Insert(left, right K, value V, alloc *Allocator[K, V]) {
	if left > right {
		panic("intervalmap: Insert with left > right")
	}
	if alloc == nil {
		panic("intervalmap: Insert with nil allocator")
	}
	if m.alloc == nil {
		m.alloc = alloc
	} else if m.alloc != alloc {
		panic("intervalmap: Insert with a different allocator")
	}

	key := interval[K]{left: left, right: right}
	if m.root == nil {
		lf := alloc.newLeaf()
		lf.keys[0] = key
		lf.values[0] = value
		lf.count = 1
		m.root = lf
		m.bounds = key
		m.size = 1
		return
	}

	if key.left < m.bounds.left {
		m.bounds.left = key.left
	}
	if key.right > m.bounds.right {
		m.bounds.right = key.right
	}

	if split := m.insertRec(m.root, m.height, key, value); split != nil {
		nb := alloc.newBranch()
		nb.count = 2
		nb.children[0] = m.root
		nb.children[1] = split
		nb.refresh(0)
		nb.refresh(1)
		m.root = nb
		m.height++
	}
	m.size++
}

// insertRec descends to the leaf for key, inserting on the way back up.
// A non-nil return is a freshly split right sibling the caller must link
// after n.
func (m *Map[K, V]) insertRec(n node[K, V], level int, key interval[K], value V) node[K, V] {
	if level == 0 {
		return m.insertLeaf(n.(*leaf[K, V]), key, value)
	}

	br := n.(*branch[K, V])
	idx := br.count - 1
	for i := 0; i < br.count-1; i++ {
		if key.compare(br.maxKey[i]) <= 0 {
			idx = i
			break
		}
	}

	split := m.insertRec(br.children[idx], level-1, key, value)
	br.refresh(idx)
	if split == nil {
		return nil
	}
	return m.linkChild(br, idx+1, split)
}

// insertLeaf places key at its upper-bound position, keeping equal
// intervals in insertion order. Returns the new right sibling on overflow.
func (m *Map[K, V]) insertLeaf(lf *leaf[K, V], key interval[K], value V) node[K, V] {
	pos := lf.count
	for i := 0; i < lf.count; i++ {
		if lf.keys[i].compare(key) > 0 {
			pos = i
			break
		}
	}

	if lf.count < leafCapacity {
		copy(lf.keys[pos+1:lf.count+1], lf.keys[pos:lf.count])
		copy(lf.values[pos+1:lf.count+1], lf.values[pos:lf.count])
		lf.keys[pos] = key
		lf.values[pos] = value
		lf.count++
		return nil
	}

	// Overflow: split the 9 logical entries around the midpoint, the left
	// node keeping the larger half.
	var keys [leafCapacity + 1]interval[K]
	var values [leafCapacity + 1]V
	copy(keys[:], lf.keys[:pos])
	copy(values[:], lf.values[:pos])
	keys[pos] = key
	values[pos] = value
	copy(keys[pos+1:], lf.keys[pos:])
	copy(values[pos+1:], lf.values[pos:])

	const leftCount = (leafCapacity + 2) / 2
	right := m.alloc.newLeaf()

	*lf = leaf[K, V]{count: leftCount}
	copy(lf.keys[:], keys[:leftCount])
	copy(lf.values[:], values[:leftCount])

	right.count = leafCapacity + 1 - leftCount
	copy(right.keys[:], keys[leftCount:])
	copy(right.values[:], values[leftCount:])
	return right
}

// linkChild inserts child at position pos of br, splitting br when full.
func (m *Map[K, V]) linkChild(br *branch[K, V], pos int, child node[K, V]) node[K, V] {
	if br.count < branchCapacity {
		copy(br.children[pos+1:br.count+1], br.children[pos:br.count])
		copy(br.maxKey[pos+1:br.count+1], br.maxKey[pos:br.count])
		copy(br.maxRight[pos+1:br.count+1], br.maxRight[pos:br.count])
		br.children[pos] = child
		br.count++
		br.refresh(pos)
		return nil
	}

	var children [branchCapacity + 1]node[K, V]
	copy(children[:], br.children[:pos])
	children[pos] = child
	copy(children[pos+1:], br.children[pos:])

	const leftCount = (branchCapacity + 2) / 2
	right := m.alloc.newBranch()

	*br = branch[K, V]{count: leftCount}
	copy(br.children[:], children[:leftCount])
	for i := 0; i < leftCount; i++ {
		br.refresh(i)
	}

	right.count = branchCapacity + 1 - leftCount
	copy(right.children[:], children[leftCount:])
	for i := 0; i < right.count; i++ {
		right.refresh(i)
	}
	return right
}

// Overlaps calls fn for every stored interval intersecting [left, right],
// in ascending order, pruning subtrees whose cached right bound ends before
// left. fn returning false stops the walk.
func (m *Map[K, V]) Overlaps(left, right K, fn func(l, r K, v V) bool) {
	if left > right {
		panic("intervalmap: Overlaps with left > right")
	}
	if m.root != nil {
		visitOverlaps(m.root, left, right, fn)
	}
}

func visitOverlaps[K cmp.Ordered, V any](n node[K, V], left, right K, fn func(l, r K, v V) bool) bool {
	switch t := n.(type) {
	case *leaf[K, V]:
		for i := 0; i < t.count; i++ {
			k := t.keys[i]
			if k.left > right {
				return false
			}
			if k.right >= left {
				if !fn(k.left, k.right, t.values[i]) {
					return false
				}
			}
		}
	case *branch[K, V]:
		for i := 0; i < t.count; i++ {
			if t.maxRight[i] < left {
				continue
			}
			if !visitOverlaps(t.children[i], left, right, fn) {
				return false
			}
		}
	}
	return true
}

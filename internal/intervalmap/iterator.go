package intervalmap

import (
	"cmp"
)

// Iterator walks the map in ascending (left, right) order. It is a
// bidirectional cursor: Next advances toward End, Prev steps back toward
// Begin. An invalid iterator is the past-the-end sentinel; Prev from it
// lands on the last interval. Any insert that restructures the tree
// invalidates outstanding iterators. A copied iterator shares its descent
// path with the original and must not be advanced independently.
type Iterator[K cmp.Ordered, V any] struct {
	m    *Map[K, V]
	path []pathEntry[K, V]
}

type pathEntry[K cmp.Ordered, V any] struct {
	n   node[K, V]
	idx int
}

// Begin returns an iterator on the first interval, invalid when the map is
// empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{m: m}
	if m.root != nil {
		it.descendLeft(m.root)
	}
	return it
}

// End returns the past-the-end sentinel.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m}
}

// Valid reports whether the iterator references an interval.
func (it *Iterator[K, V]) Valid() bool { return len(it.path) > 0 }

func (it *Iterator[K, V]) leafEntry() (*leaf[K, V], int) {
	if len(it.path) == 0 {
		panic("intervalmap: dereference of an end iterator")
	}
	e := it.path[len(it.path)-1]
	return e.n.(*leaf[K, V]), e.idx
}

// Left returns the current interval's left endpoint.
func (it *Iterator[K, V]) Left() K {
	lf, i := it.leafEntry()
	return lf.keys[i].left
}

// Right returns the current interval's right endpoint.
func (it *Iterator[K, V]) Right() K {
	lf, i := it.leafEntry()
	return lf.keys[i].right
}

// Value returns the current interval's value.
func (it *Iterator[K, V]) Value() V {
	lf, i := it.leafEntry()
	return lf.values[i]
}

// Next steps to the next interval in sorted order; stepping past the last
// interval reaches the end sentinel.
func (it *Iterator[K, V]) Next() {
	if len(it.path) == 0 {
		panic("intervalmap: Next on an end iterator")
	}
	last := &it.path[len(it.path)-1]
	lf := last.n.(*leaf[K, V])
	last.idx++
	if last.idx < lf.count {
		return
	}

	// Climb to the first ancestor with a sibling to the right, then take
	// its leftmost descent. No such ancestor means we were on the last
	// interval.
	it.path = it.path[:len(it.path)-1]
	for len(it.path) > 0 {
		p := &it.path[len(it.path)-1]
		br := p.n.(*branch[K, V])
		p.idx++
		if p.idx < br.count {
			it.descendLeft(br.children[p.idx])
			return
		}
		it.path = it.path[:len(it.path)-1]
	}
}

// Prev steps to the previous interval. From the end sentinel it lands on
// the last interval; stepping before Begin is a caller bug.
func (it *Iterator[K, V]) Prev() {
	if len(it.path) == 0 {
		if it.m == nil || it.m.root == nil {
			panic("intervalmap: Prev on an empty map")
		}
		it.descendRight(it.m.root)
		return
	}

	last := &it.path[len(it.path)-1]
	last.idx--
	if last.idx >= 0 {
		return
	}

	it.path = it.path[:len(it.path)-1]
	for len(it.path) > 0 {
		p := &it.path[len(it.path)-1]
		p.idx--
		if p.idx >= 0 {
			br := p.n.(*branch[K, V])
			it.descendRight(br.children[p.idx])
			return
		}
		it.path = it.path[:len(it.path)-1]
	}
	panic("intervalmap: Prev before the first interval")
}

// Equal reports whether two iterators reference the same position of the
// same map.
func (it *Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.m != other.m || len(it.path) != len(other.path) {
		return false
	}
	for i := range it.path {
		if it.path[i] != other.path[i] {
			return false
		}
	}
	return true
}

func (it *Iterator[K, V]) descendLeft(n node[K, V]) {
	for {
		switch t := n.(type) {
		case *leaf[K, V]:
			it.path = append(it.path, pathEntry[K, V]{n: t})
			return
		case *branch[K, V]:
			it.path = append(it.path, pathEntry[K, V]{n: t})
			n = t.children[0]
		}
	}
}

func (it *Iterator[K, V]) descendRight(n node[K, V]) {
	for {
		switch t := n.(type) {
		case *leaf[K, V]:
			it.path = append(it.path, pathEntry[K, V]{n: t, idx: t.count - 1})
			return
		case *branch[K, V]:
			it.path = append(it.path, pathEntry[K, V]{n: t, idx: t.count - 1})
			n = t.children[t.count-1]
		}
	}
}

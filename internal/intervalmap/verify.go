package intervalmap

import (
	"cmp"
	"fmt"
)

// Verify runs a full structural self-check: key ordering within and across
// nodes, cached aggregates, fill bounds, and uniform height. Meant for
// tests, not the hot path.
func (m *Map[K, V]) Verify() error {
	if m.root == nil {
		if m.size != 0 {
			return fmt.Errorf("nil root with size %d", m.size)
		}
		return nil
	}

	st, err := verifyNode[K, V](m.root, m.height, true)
	if err != nil {
		return err
	}
	if st.count != m.size {
		return fmt.Errorf("stored size %d, counted %d", m.size, st.count)
	}
	if st.minKey.left != m.bounds.left {
		return fmt.Errorf("bounds left %v, tree min left %v", m.bounds.left, st.minKey.left)
	}
	if st.maxRight != m.bounds.right {
		return fmt.Errorf("bounds right %v, tree max right %v", m.bounds.right, st.maxRight)
	}
	return nil
}

type subtreeStats[K cmp.Ordered] struct {
	count    int
	minKey   interval[K]
	maxKey   interval[K]
	maxRight K
}

func verifyNode[K cmp.Ordered, V any](n node[K, V], level int, isRoot bool) (subtreeStats[K], error) {
	var st subtreeStats[K]

	switch t := n.(type) {
	case *leaf[K, V]:
		if level != 0 {
			return st, fmt.Errorf("leaf at branch level %d", level)
		}
		if t.count < 1 || t.count > leafCapacity {
			return st, fmt.Errorf("leaf count %d out of range", t.count)
		}
		if !isRoot && t.count < leafCapacity/2 {
			return st, fmt.Errorf("non-root leaf underfull: %d", t.count)
		}
		for i := 0; i < t.count; i++ {
			k := t.keys[i]
			if k.left > k.right {
				return st, fmt.Errorf("inverted interval (%v, %v)", k.left, k.right)
			}
			if i > 0 && t.keys[i-1].compare(k) > 0 {
				return st, fmt.Errorf("leaf keys out of order at %d", i)
			}
		}
		mk, mr := t.summarize()
		st = subtreeStats[K]{count: t.count, minKey: t.keys[0], maxKey: mk, maxRight: mr}
		return st, nil

	case *branch[K, V]:
		if level == 0 {
			return st, fmt.Errorf("branch at leaf level")
		}
		minFill := branchCapacity / 2
		if isRoot {
			minFill = 2
		}
		if t.count < minFill || t.count > branchCapacity {
			return st, fmt.Errorf("branch count %d out of range [%d, %d]", t.count, minFill, branchCapacity)
		}
		for i := 0; i < t.count; i++ {
			child, err := verifyNode[K, V](t.children[i], level-1, false)
			if err != nil {
				return st, err
			}
			if child.maxKey != t.maxKey[i] {
				return st, fmt.Errorf("stale max key for child %d: cached %v, actual %v", i, t.maxKey[i], child.maxKey)
			}
			if child.maxRight != t.maxRight[i] {
				return st, fmt.Errorf("stale max right for child %d: cached %v, actual %v", i, t.maxRight[i], child.maxRight)
			}
			if i == 0 {
				st.minKey = child.minKey
				st.maxRight = child.maxRight
			} else {
				if t.maxKey[i-1].compare(child.minKey) > 0 {
					return st, fmt.Errorf("children %d and %d out of order", i-1, i)
				}
				if child.maxRight > st.maxRight {
					st.maxRight = child.maxRight
				}
			}
			st.count += child.count
			st.maxKey = child.maxKey
		}
		return st, nil

	default:
		return st, fmt.Errorf("unknown node type %T", n)
	}
}

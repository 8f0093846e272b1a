package intervalmap

import (
	"math/rand"
	"testing"
)

func TestMap_Empty(t *testing.T) {
	var m Map[int32, int32]

	if !m.Empty() {
		t.Fatal("new map should be empty")
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}

	begin := m.Begin()
	end := m.End()
	if begin.Valid() {
		t.Fatal("Begin() of an empty map should be invalid")
	}
	if !begin.Equal(end) {
		t.Fatal("Begin() should equal End() on an empty map")
	}
	if err := m.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestMap_SmallRootLeaf(t *testing.T) {
	var m Map[int32, int32]
	alloc := NewAllocator[int32, int32]()

	m.Insert(1, 10, 1, alloc)
	m.Insert(3, 7, 2, alloc)
	m.Insert(2, 12, 3, alloc)
	m.Insert(32, 42, 4, alloc)
	m.Insert(3, 6, 5, alloc)

	want := []struct {
		left, right, value int32
	}{
		{1, 10, 1},
		{2, 12, 3},
		{3, 6, 5},
		{3, 7, 2},
		{32, 42, 4},
	}

	it := m.Begin()
	for i, w := range want {
		if !it.Valid() {
			t.Fatalf("iterator exhausted at %d", i)
		}
		if it.Left() != w.left || it.Right() != w.right || it.Value() != w.value {
			t.Fatalf("entry %d = (%d, %d, %d), want (%d, %d, %d)",
				i, it.Left(), it.Right(), it.Value(), w.left, w.right, w.value)
		}
		it.Next()
	}
	if it.Valid() {
		t.Fatal("iterator should be at end")
	}

	// Step back over the tail.
	it.Prev()
	if it.Left() != 32 || it.Value() != 4 {
		t.Fatalf("Prev from end = (%d, %d), want (32, 42)", it.Left(), it.Right())
	}
	it.Prev()
	if it.Right() != 7 {
		t.Fatalf("Right() = %d, want 7", it.Right())
	}

	lo, hi := m.Bounds()
	if lo != 1 || hi != 42 {
		t.Fatalf("Bounds() = (%d, %d), want (1, 42)", lo, hi)
	}
	if err := m.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestMap_BranchingInserts(t *testing.T) {
	var m Map[int32, int32]
	alloc := NewAllocator[int32, int32]()

	// Enough ascending inserts to force multiple levels of branching.
	for i := int32(1); i < 1000; i++ {
		m.Insert(10*i, 10*i+5, i, alloc)
		if err := m.Verify(); err != nil {
			t.Fatalf("Verify after insert %d: %v", i, err)
		}
		lo, hi := m.Bounds()
		if lo != 10 || hi != 10*i+5 {
			t.Fatalf("Bounds after insert %d = (%d, %d), want (10, %d)", i, lo, hi, 10*i+5)
		}
	}

	if m.Empty() {
		t.Fatal("map should not be empty")
	}
	if m.Len() != 999 {
		t.Fatalf("Len() = %d, want 999", m.Len())
	}

	it := m.Begin()
	for i := int32(1); i < 1000; i++ {
		if !it.Valid() {
			t.Fatalf("iterator exhausted at %d", i)
		}
		if it.Left() != 10*i || it.Right() != 10*i+5 || it.Value() != i {
			t.Fatalf("entry %d = (%d, %d, %d), want (%d, %d, %d)",
				i, it.Left(), it.Right(), it.Value(), 10*i, 10*i+5, i)
		}
		it.Next()
	}
	if it.Valid() {
		t.Fatal("iterator should be at end")
	}

	// Walk the whole sequence back from the end sentinel.
	for i := int32(999); i >= 1; i-- {
		it.Prev()
		if !it.Valid() {
			t.Fatalf("iterator invalid at %d going backward", i)
		}
		if it.Left() != 10*i || it.Right() != 10*i+5 || it.Value() != i {
			t.Fatalf("backward entry %d = (%d, %d, %d)", i, it.Left(), it.Right(), it.Value())
		}
	}
	if !it.Equal(m.Begin()) {
		t.Fatal("full backward walk should end at Begin()")
	}

	// Pile intervals into the middle, then pseudo-random ones.
	for i := int32(0); i < 100; i++ {
		m.Insert(11*i, 11*i+i, i, alloc)
	}
	rng := rand.New(rand.NewSource(42))
	for i := int32(0); i < 1000; i++ {
		left := int32(rng.Intn(10000)) + 1
		right := left + int32(rng.Intn(int(10001-left)))
		m.Insert(left, right, i, alloc)
	}
	if err := m.Verify(); err != nil {
		t.Fatalf("Verify after random inserts: %v", err)
	}
	if m.Len() != 999+100+1000 {
		t.Fatalf("Len() = %d, want %d", m.Len(), 999+100+1000)
	}
}

func TestMap_DuplicatesAndPoints(t *testing.T) {
	var m Map[int, string]
	alloc := NewAllocator[int, string]()

	m.Insert(5, 5, "point-a", alloc)
	m.Insert(5, 5, "point-b", alloc)
	m.Insert(5, 5, "point-c", alloc)

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (duplicates retained)", m.Len())
	}

	// Multiset semantics: all three survive, insertion order preserved
	// among fully equal keys.
	want := []string{"point-a", "point-b", "point-c"}
	it := m.Begin()
	for i, w := range want {
		if it.Left() != 5 || it.Right() != 5 {
			t.Fatalf("entry %d = (%d, %d), want (5, 5)", i, it.Left(), it.Right())
		}
		if it.Value() != w {
			t.Fatalf("entry %d = %q, want %q", i, it.Value(), w)
		}
		it.Next()
	}

	lo, hi := m.Bounds()
	if lo != 5 || hi != 5 {
		t.Fatalf("Bounds() = (%d, %d), want (5, 5)", lo, hi)
	}
	if err := m.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestMap_IteratorRoundTrip(t *testing.T) {
	var m Map[int32, int32]
	alloc := NewAllocator[int32, int32]()
	for i := int32(0); i < 50; i++ {
		m.Insert(i, i+3, i, alloc)
	}

	// ++ then -- (and the reverse) must return to the same position
	// everywhere except the sequence boundaries.
	it := m.Begin()
	it.Next()
	for it.Valid() {
		l, r, v := it.Left(), it.Right(), it.Value()
		it.Next()
		if !it.Valid() {
			break
		}
		it.Prev()
		if it.Left() != l || it.Right() != r || it.Value() != v {
			t.Fatalf("++/-- landed on (%d, %d), want (%d, %d)", it.Left(), it.Right(), l, r)
		}
		it.Prev()
		it.Next()
		if it.Left() != l || it.Right() != r || it.Value() != v {
			t.Fatalf("--/++ landed on (%d, %d), want (%d, %d)", it.Left(), it.Right(), l, r)
		}
		it.Next()
	}
}

func TestMap_Overlaps(t *testing.T) {
	var m Map[int32, int32]
	alloc := NewAllocator[int32, int32]()
	for i := int32(1); i < 500; i++ {
		m.Insert(10*i, 10*i+5, i, alloc)
	}

	var got []int32
	m.Overlaps(108, 131, func(l, r, v int32) bool {
		got = append(got, v)
		return true
	})
	// [108, 131] touches (110,115), (120,125), (130,135).
	want := []int32{11, 12, 13}
	if len(got) != len(want) {
		t.Fatalf("Overlaps found %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Overlaps found %v, want %v", got, want)
		}
	}

	// A gap between stored intervals yields nothing.
	count := 0
	m.Overlaps(16, 19, func(l, r, v int32) bool {
		count++
		return true
	})
	if count != 0 {
		t.Fatalf("Overlaps in a gap found %d entries, want 0", count)
	}

	// Early stop.
	count = 0
	m.Overlaps(10, 5000, func(l, r, v int32) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("early-stopped walk visited %d entries, want 3", count)
	}
}

func TestMap_InsertPreconditions(t *testing.T) {
	var m Map[int32, int32]
	alloc := NewAllocator[int32, int32]()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Insert(10, 5) should panic")
			}
		}()
		m.Insert(10, 5, 0, alloc)
	}()

	m.Insert(1, 2, 0, alloc)
	other := NewAllocator[int32, int32]()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Insert with a different allocator should panic")
			}
		}()
		m.Insert(3, 4, 0, other)
	}()
}

func TestMap_BoundsOnEmptyPanics(t *testing.T) {
	var m Map[int, int]
	defer func() {
		if recover() == nil {
			t.Fatal("Bounds on an empty map should panic")
		}
	}()
	m.Bounds()
}

package arena

import (
	"testing"
)

func TestPool_StablePointers(t *testing.T) {
	p := NewPool[int](4)

	ptrs := make([]*int, 0, 100)
	for i := 0; i < 100; i++ {
		ptrs = append(ptrs, p.New(i))
	}

	for i, ptr := range ptrs {
		if *ptr != i {
			t.Fatalf("ptrs[%d] = %d, want %d", i, *ptr, i)
		}
	}
	if p.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", p.Len())
	}
}

func TestPool_NewSlice(t *testing.T) {
	p := NewPool[string](8)

	src := []string{"a", "b", "c"}
	got := p.NewSlice(src)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// The copy must not alias the caller's backing array.
	src[0] = "mutated"
	if got[0] != "a" {
		t.Fatalf("got[0] = %q, want %q", got[0], "a")
	}

	if p.NewSlice(nil) != nil {
		t.Fatal("NewSlice(nil) should be nil")
	}
}

func TestPool_OversizedSlice(t *testing.T) {
	p := NewPool[byte](4)

	big := make([]byte, 100)
	for i := range big {
		big[i] = byte(i)
	}
	got := p.NewSlice(big)
	for i := range big {
		if got[i] != byte(i) {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], i)
		}
	}
}

func TestPool_SliceDoesNotOverlapLaterAllocs(t *testing.T) {
	p := NewPool[int](16)

	a := p.NewSlice([]int{1, 2, 3})
	b := p.NewSlice([]int{4, 5, 6})

	// Appending to a full-capacity sub-slice must not clobber b.
	_ = append(a, 99)
	if b[0] != 4 {
		t.Fatalf("b[0] = %d, want 4", b[0])
	}
}

// Package arena provides bump allocation scoped to one parse session.
// Nothing is freed individually; dropping the pool releases everything
// it handed out at once.
package arena

// DefaultChunkSize is the per-chunk element count used when NewPool gets 0.
const DefaultChunkSize = 1 << 10

// Pool is a typed bump allocator. Storage grows in fixed-capacity chunks
// that are never reallocated, so pointers returned by New and slices
// returned by NewSlice stay valid for the pool's whole lifetime.
type Pool[T any] struct {
	chunks    [][]T
	chunkSize int
	allocated int
}

// NewPool creates a pool whose chunks hold chunkSize elements each.
// chunkSize 0 selects DefaultChunkSize.
func NewPool[T any](chunkSize int) *Pool[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Pool[T]{chunkSize: chunkSize}
}

// New copies value into the pool and returns a stable pointer to it.
func (p *Pool[T]) New(value T) *T {
	s := p.carve(1)
	s[0] = value
	return &s[0]
}

// NewSlice copies src into contiguous pool storage and returns the copy.
// A nil or empty src yields nil.
func (p *Pool[T]) NewSlice(src []T) []T {
	if len(src) == 0 {
		return nil
	}
	s := p.carve(len(src))
	copy(s, src)
	return s
}

// Len reports how many elements the pool has allocated in total.
func (p *Pool[T]) Len() int {
	return p.allocated
}

// carve reserves n contiguous elements from the current chunk, opening a
// new chunk when the remainder is too small. Oversized requests get a
// dedicated exact-fit chunk.
func (p *Pool[T]) carve(n int) []T {
	i := len(p.chunks) - 1
	if i < 0 || cap(p.chunks[i])-len(p.chunks[i]) < n {
		size := p.chunkSize
		if n > size {
			size = n
		}
		p.chunks = append(p.chunks, make([]T, 0, size))
		i = len(p.chunks) - 1
	}
	chunk := p.chunks[i]
	start := len(chunk)
	p.chunks[i] = chunk[:start+n]
	p.allocated += n
	return p.chunks[i][start : start+n : start+n]
}

package source

type (
	// BufferID uniquely identifies a source buffer owned by the external
	// source manager. The zero value is invalid.
	BufferID uint32
)

const NoBufferID BufferID = 0

// IsValid reports whether the buffer ID refers to a real buffer.
func (id BufferID) IsValid() bool { return id != NoBufferID }

// Location is a point in the buffer-id + byte-offset coordinate space.
// The syntax layer treats it opaquely; only ordering matters here.
type Location struct {
	Buffer BufferID
	Offset uint32
}

// Compare orders locations by buffer, then by offset.
func (l Location) Compare(other Location) int {
	switch {
	case l.Buffer < other.Buffer:
		return -1
	case l.Buffer > other.Buffer:
		return 1
	case l.Offset < other.Offset:
		return -1
	case l.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// Advance returns the location n bytes further into the same buffer.
func (l Location) Advance(n uint32) Location {
	return Location{Buffer: l.Buffer, Offset: l.Offset + n}
}

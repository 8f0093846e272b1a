package source

import (
	"fmt"
)

// Range is a half-open byte range [Start, End) within one buffer.
type Range struct {
	Buffer BufferID
	Start  uint32
	End    uint32
}

// NewRange builds a range from a start location and a byte length.
func NewRange(start Location, length uint32) Range {
	return Range{
		Buffer: start.Buffer,
		Start:  start.Offset,
		End:    start.Offset + length,
	}
}

// Location returns the start point of the range.
func (r Range) Location() Location {
	return Location{Buffer: r.Buffer, Offset: r.Start}
}

func (r Range) Empty() bool {
	return r.Start == r.End
}

func (r Range) Len() uint32 {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d", r.Buffer, r.Start, r.End)
}

// Contains reports whether the byte offset falls inside the range.
func (r Range) Contains(offset uint32) bool {
	return offset >= r.Start && offset < r.End
}

// Cover extends the range to include other. Ranges from different buffers
// do not combine; the receiver wins.
func (r Range) Cover(other Range) Range {
	if r.Buffer != other.Buffer {
		return r
	}
	if other.Start < r.Start {
		r.Start = other.Start
	}
	if other.End > r.End {
		r.End = other.End
	}
	return r
}

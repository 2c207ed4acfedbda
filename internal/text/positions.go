// Package text defines source offsets, file handles, and span/position types
// shared by the lexer, parser, and diagnostic renderer.
package text

import "fmt"

// ByteOffset is a byte index into a UTF-8 source buffer.
type ByteOffset uint32

// IsValid reports whether the offset is non-negative. ByteOffset is unsigned,
// so this always holds; the method exists so call sites that historically
// guarded against negative offsets keep reading the same way.
func (o ByteOffset) IsValid() bool {
	return true
}

// FileID is an opaque handle into the virtual file store. The zero value
// never denotes a real file.
type FileID uint32

// NoFile is the sentinel FileID used by spans that do not reference a
// concrete file (none arise from correct producers, but the zero value
// must still print and compare sensibly).
const NoFile FileID = 0

// Span is a byte range [Start, End) within a single file. Construction
// treats the range as half-open; Clamp brings it back in-bounds before
// rendering, which is the only place an out-of-range Span is tolerated.
type Span struct {
	File  FileID
	Start ByteOffset
	End   ByteOffset
}

// NewSpan constructs a validated span.
func NewSpan(file FileID, start, end ByteOffset) (Span, error) {
	s := Span{File: file, Start: start, End: end}
	if err := s.Validate(); err != nil {
		return Span{}, err
	}
	return s, nil
}

// Validate reports an error if the span bounds are malformed.
func (s Span) Validate() error {
	if s.End < s.Start {
		return fmt.Errorf("invalid span bounds: end (%d) < start (%d)", s.End, s.Start)
	}
	return nil
}

// IsValid reports whether the span bounds are well-formed.
func (s Span) IsValid() bool {
	return s.End >= s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// Contains reports whether off is within the half-open span [Start, End).
func (s Span) Contains(off ByteOffset) bool {
	return s.Start <= off && off < s.End
}

// ContainsSpan reports whether other is fully contained within s.
func (s Span) ContainsSpan(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Intersects reports whether two spans overlap by at least one byte. Spans
// that only touch at a boundary do not intersect.
func (s Span) Intersects(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Clamp returns a copy of s with Start floored at 0 and End capped at
// contentLen, per the diagnostic renderer's bounds-clamping contract.
func (s Span) Clamp(contentLen ByteOffset) Span {
	out := s
	if out.End > contentLen {
		out.End = contentLen
	}
	if out.Start > out.End {
		out.Start = out.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.File, s.Start, s.End)
}

// Point is a 1-based line/column source location used by the diagnostic
// renderer. Column is a byte column, not a rune column.
type Point struct {
	Line   int
	Column int
}

// Range is a source range expressed as a pair of 1-based Points.
type Range struct {
	Start Point
	End   Point
}

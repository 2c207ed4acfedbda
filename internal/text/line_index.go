package text

import (
	"errors"
	"fmt"
	"slices"
)

// LineIndex maps byte offsets to 1-based line/column locations over a
// UTF-8 source buffer. Columns are byte columns: the diagnostic renderer
// only needs to slice the original bytes back out, never to reason about
// rune widths.
type LineIndex struct {
	src        []byte
	lineStarts []ByteOffset
}

var errNilLineIndex = errors.New("nil LineIndex")

// NewLineIndex builds an index over src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []ByteOffset{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &LineIndex{
		src:        src,
		lineStarts: starts,
	}
}

// SourceLen returns the source length in bytes.
func (li *LineIndex) SourceLen() ByteOffset {
	if li == nil {
		return 0
	}
	return ByteOffset(len(li.src))
}

// LineCount returns the number of logical lines in the source.
func (li *LineIndex) LineCount() int {
	if li == nil {
		return 0
	}
	return len(li.lineStarts)
}

// OffsetToPoint converts a byte offset to a 1-based line/column point.
func (li *LineIndex) OffsetToPoint(off ByteOffset) (Point, error) {
	if li == nil {
		return Point{}, errNilLineIndex
	}
	if off > ByteOffset(len(li.src)) {
		return Point{}, fmt.Errorf("offset out of range: %d > %d", off, len(li.src))
	}

	line := li.lineForOffset(off)
	start := li.lineStarts[line]
	return Point{
		Line:   line + 1,
		Column: int(off-start) + 1,
	}, nil
}

// LineContent returns the raw bytes of the given 1-based line, excluding
// its terminating newline (and the preceding '\r' for CRLF sources).
func (li *LineIndex) LineContent(line int) []byte {
	if li == nil || line < 1 || line > len(li.lineStarts) {
		return nil
	}
	start, _, contentEnd := li.lineBounds(line - 1)
	return li.src[start:contentEnd]
}

func (li *LineIndex) lineForOffset(off ByteOffset) int {
	// largest i such that lineStarts[i] <= off
	i, found := slices.BinarySearch(li.lineStarts, off)
	if found {
		return i
	}
	return i - 1
}

func (li *LineIndex) lineBounds(line int) (start ByteOffset, nextStart ByteOffset, contentEnd ByteOffset) {
	start = li.lineStarts[line]
	if line+1 < len(li.lineStarts) {
		nextStart = li.lineStarts[line+1]
	} else {
		nextStart = ByteOffset(len(li.src))
	}
	contentEnd = nextStart
	if contentEnd > start && li.src[contentEnd-1] == '\n' {
		contentEnd--
		if contentEnd > start && li.src[contentEnd-1] == '\r' {
			contentEnd--
		}
	}
	return start, nextStart, contentEnd
}

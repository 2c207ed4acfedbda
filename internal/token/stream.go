package token

import (
	"github.com/wave-lang/wavec/internal/text"
)

// Stream is the structure-of-arrays token stream: one Kind and one start
// offset per token, two words wide. Lengths are not stored; they are
// recomputed from the kind and the source bytes on demand. A well-formed
// stream ends with exactly one EOF token whose start is the source length.
type Stream struct {
	kinds  []Kind
	starts []text.ByteOffset
}

// NewStream returns a stream with capacity for roughly the token count a
// source of srcLen bytes produces.
func NewStream(srcLen int) Stream {
	capHint := srcLen / 8
	if capHint < 8 {
		capHint = 8
	}
	return Stream{
		kinds:  make([]Kind, 0, capHint),
		starts: make([]text.ByteOffset, 0, capHint),
	}
}

// Append adds one token to the stream.
func (s *Stream) Append(k Kind, start text.ByteOffset) {
	s.kinds = append(s.kinds, k)
	s.starts = append(s.starts, start)
}

// Len returns the number of tokens, including the trailing EOF.
func (s *Stream) Len() int {
	return len(s.kinds)
}

// Kind returns the kind of token i. Out-of-range indices read as EOF so
// the parser can look ahead without bounds bookkeeping.
func (s *Stream) Kind(i uint32) Kind {
	if int(i) >= len(s.kinds) {
		return EOF
	}
	return s.kinds[i]
}

// Start returns the byte offset of token i. Out-of-range indices read as
// the EOF offset.
func (s *Stream) Start(i uint32) text.ByteOffset {
	if int(i) >= len(s.starts) {
		if len(s.starts) == 0 {
			return 0
		}
		return s.starts[len(s.starts)-1]
	}
	return s.starts[i]
}

// At returns the kind and start offset of token i.
func (s *Stream) At(i uint32) (Kind, text.ByteOffset) {
	return s.Kind(i), s.Start(i)
}

package token

import "testing"

func TestLookupKeywordFindsEveryReservedWord(t *testing.T) {
	t.Parallel()

	for _, kw := range keywords {
		kind, ok := LookupKeyword([]byte(kw.name))
		if !ok || kind != kw.kind {
			t.Fatalf("LookupKeyword(%q) = %v, %v, want %v, true", kw.name, kind, ok, kw.kind)
		}
	}
}

func TestLookupKeywordRejectsNonKeywords(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"", "notakeyword", "fallthroughs", "Struct", "_", "zzz", "strucT"} {
		if kind, ok := LookupKeyword([]byte(word)); ok {
			t.Fatalf("LookupKeyword(%q) = %v, true, want miss", word, kind)
		}
	}
}

func TestKeywordLexemesMatchTable(t *testing.T) {
	t.Parallel()

	for _, kw := range keywords {
		if got := kw.kind.Lexeme(); got != kw.name {
			t.Fatalf("Lexeme(%v) = %q, want %q", kw.kind, got, kw.name)
		}
		if len(kw.name) > maxKeywordLen {
			t.Fatalf("keyword %q exceeds maxKeywordLen", kw.name)
		}
	}
}

func TestKindStringAndLexemeCoverage(t *testing.T) {
	t.Parallel()

	for k := Kind(0); k < kindCount; k++ {
		if k.String() == "" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Fatalf("out-of-range String() = %q", got)
	}

	// Variable-length kinds must not claim a fixed spelling.
	for _, k := range []Kind{EOF, Bad, Identifier, Int, Float, Char, String, MultilineString, Comment, DocComment, MultilineComment} {
		if k.Lexeme() != "" {
			t.Fatalf("variable-length kind %v has fixed lexeme %q", k, k.Lexeme())
		}
	}
	if ShrAssign.Lexeme() != ">>=" {
		t.Fatalf("ShrAssign lexeme = %q", ShrAssign.Lexeme())
	}
}

func TestStreamOutOfRangeReadsAsEOF(t *testing.T) {
	t.Parallel()

	s := NewStream(0)
	s.Append(Identifier, 0)
	s.Append(EOF, 3)

	if got := s.Kind(5); got != EOF {
		t.Fatalf("Kind(5) = %v, want EOF", got)
	}
	if got := s.Start(5); got != 3 {
		t.Fatalf("Start(5) = %d, want 3", got)
	}

	empty := NewStream(0)
	if got := empty.Start(0); got != 0 {
		t.Fatalf("empty Start(0) = %d, want 0", got)
	}
}

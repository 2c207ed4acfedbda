package lexer

import (
	"testing"

	"github.com/wave-lang/wavec/internal/token"
)

func FuzzLex(f *testing.F) {
	for _, seed := range []string{
		"",
		"main :: () {\n}",
		"foo :: struct {bar: int, baz: [5]int\n}",
		"import foo { baz, fizzbuzz } as bar",
		"hello :: 2 * 1 - 2 * 3",
		"0x1.2p2 0b1.0 1_000 'a' '\\x41' \"s\" \"\"\"m\"\"\"",
		"$ unknown \x00",
		"// c\n/// d\n/* e /* f */ g */",
		">>= << <= |> ... :: :=",
	} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, src []byte) {
		t.Helper()

		// Keep the target responsive; fuzzing should explore shape, not
		// spend cycles on huge blobs.
		if len(src) > 512*1024 {
			t.Skip()
		}

		res := Lex(1, src)
		n := res.Tokens.Len()
		if n == 0 {
			t.Fatal("lexer returned no tokens")
		}
		if k := res.Tokens.Kind(uint32(n - 1)); k != token.EOF {
			t.Fatalf("last token kind = %v, want EOF", k)
		}
		if start := res.Tokens.Start(uint32(n - 1)); int(start) != len(src) {
			t.Fatalf("EOF start = %d, want %d", start, len(src))
		}

		for i := 0; i < n-1; i++ {
			k, start := res.Tokens.At(uint32(i))
			if int(start) > len(src) {
				t.Fatalf("token[%d] start %d out of bounds (len=%d)", i, start, len(src))
			}
			length := Length(src, k, start)
			if length < 0 || int(start)+length > len(src) {
				t.Fatalf("token[%d] (%v@%d) length %d out of bounds", i, k, start, length)
			}
			if next := res.Tokens.Start(uint32(i + 1)); start > next {
				t.Fatalf("token starts out of order at %d: %d > %d", i, start, next)
			}
		}

		for _, d := range res.Diagnostics {
			if err := d.Location.Validate(); err != nil {
				t.Fatalf("diagnostic span %s: %v", d.Location, err)
			}
		}
	})
}

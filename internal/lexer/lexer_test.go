package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/wave-lang/wavec/internal/text"
	"github.com/wave-lang/wavec/internal/token"
)

// renderTokens prints one "Kind(text)@start" per line for golden comparisons.
func renderTokens(src []byte, res LexedSrc) string {
	var sb strings.Builder
	for i := 0; i < res.Tokens.Len(); i++ {
		k, start := res.Tokens.At(uint32(i))
		fmt.Fprintf(&sb, "%s(%q)@%d\n", k, Text(src, k, start), start)
	}
	return strings.TrimSpace(sb.String())
}

func kindsOf(res LexedSrc) []token.Kind {
	out := make([]token.Kind, res.Tokens.Len())
	for i := range out {
		out[i] = res.Tokens.Kind(uint32(i))
	}
	return out
}

func TestLexGoldenRepresentativeDeclaration(t *testing.T) {
	t.Parallel()

	src := []byte("main :: () {\n}\n")
	res := Lex(1, src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}

	got := renderTokens(src, res)
	want := strings.TrimSpace(`
Identifier("main")@0
ColonColon("::")@5
LParen("(")@8
RParen(")")@9
LBrace("{")@11
Newline("\n")@12
RBrace("}")@13
Newline("\n")@14
EOF("")@15
`)
	if got != want {
		t.Fatalf("golden mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestLexEOFInvariants(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "x", "x :: 1\n", "$", "'unterminated", "\"open", "0b12", "a\r\nb"} {
		res := Lex(1, []byte(src))
		n := res.Tokens.Len()
		if n < 1 {
			t.Fatalf("%q: no tokens", src)
		}
		if k := res.Tokens.Kind(uint32(n - 1)); k != token.EOF {
			t.Fatalf("%q: last kind = %v, want EOF", src, k)
		}
		if start := res.Tokens.Start(uint32(n - 1)); int(start) != len(src) {
			t.Fatalf("%q: EOF start = %d, want %d", src, start, len(src))
		}
		for i := 1; i < n; i++ {
			if res.Tokens.Start(uint32(i-1)) > res.Tokens.Start(uint32(i)) {
				t.Fatalf("%q: starts not monotonic at %d", src, i)
			}
		}
	}
}

func TestLexOperatorsLongestMatchWins(t *testing.T) {
	t.Parallel()

	tests := map[string][]token.Kind{
		">>= >> > >=":   {token.ShrAssign, token.Shr, token.Gt, token.GtEq, token.EOF},
		"<<= << < <=":   {token.ShlAssign, token.Shl, token.Lt, token.LtEq, token.EOF},
		"... .. .":      {token.Ellipsis, token.DotDot, token.Dot, token.EOF},
		":: := :":       {token.ColonColon, token.ColonAssign, token.Colon, token.EOF},
		"== => =":       {token.EqEq, token.FatArrow, token.Assign, token.EOF},
		"|| |> |= |":    {token.PipePipe, token.PipeGt, token.PipeAssign, token.Pipe, token.EOF},
		"&& &= &":       {token.AmpAmp, token.AmpAssign, token.Amp, token.EOF},
		"-> -= -":       {token.Arrow, token.MinusAssign, token.Minus, token.EOF},
		"!= !":          {token.NotEq, token.Bang, token.EOF},
		"+= *= /= %= ^": {token.PlusAssign, token.StarAssign, token.SlashAssign, token.PercentAssign, token.Caret, token.EOF},
		"~ ? @ ; ,":     {token.Tilde, token.Question, token.At, token.Semi, token.Comma, token.EOF},
		"( ) [ ] { }":   {token.LParen, token.RParen, token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.EOF},
	}

	for src, want := range tests {
		src, want := src, want
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			res := Lex(1, []byte(src))
			if diff := deep.Equal(kindsOf(res), want); diff != nil {
				t.Fatalf("kind mismatch: %v", diff)
			}
			if len(res.Diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
			}
		})
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	t.Parallel()

	src := []byte("struct structs foreign _x héllo mut mutable fallthrough")
	res := Lex(1, src)

	want := []token.Kind{
		token.KwStruct, token.Identifier, token.KwForeign, token.Identifier,
		token.Identifier, token.KwMut, token.Identifier, token.KwFallthrough,
		token.EOF,
	}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
}

func TestLexNumericLiterals(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind      token.Kind
		wantDiags int
	}{
		"0":          {kind: token.Int},
		"42":         {kind: token.Int},
		"1_000_000":  {kind: token.Int},
		"0b1010":     {kind: token.Int},
		"0o777":      {kind: token.Int},
		"0xDEAD_bee": {kind: token.Int},
		"1.5":        {kind: token.Float},
		"1.":         {kind: token.Float},
		"1e9":        {kind: token.Float},
		"1E+9":       {kind: token.Float},
		"2.5e-3":     {kind: token.Float},
		"0x1.2p2":    {kind: token.Float},
		"0x1p4":      {kind: token.Float},
		"0b12":       {kind: token.Int, wantDiags: 1},
		"0o9":        {kind: token.Int, wantDiags: 1},
		"0b1.0":      {kind: token.Float, wantDiags: 1},
		"0x12.p2":    {kind: token.Float, wantDiags: 1},
		"0x1.2":      {kind: token.Float, wantDiags: 1},
		"12p2":       {kind: token.Float, wantDiags: 1},
	}

	for src, tc := range tests {
		src, tc := src, tc
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			res := Lex(1, []byte(src))
			if got := res.Tokens.Kind(0); got != tc.kind {
				t.Fatalf("kind = %v, want %v", got, tc.kind)
			}
			if res.Tokens.Len() != 2 {
				t.Fatalf("token count = %d, want literal+EOF", res.Tokens.Len())
			}
			if len(res.Diagnostics) != tc.wantDiags {
				t.Fatalf("diagnostics = %+v, want %d", res.Diagnostics, tc.wantDiags)
			}
		})
	}
}

func TestLexCharLiterals(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		wantDiags int
	}{
		`'a'`:    {},
		`'\n'`:   {},
		`'\''`:   {},
		`'\x41'`: {},
		`'\x4'`:  {},
		`'\q'`:   {wantDiags: 1},
		`'c`:     {wantDiags: 1},
	}

	for src, tc := range tests {
		src, tc := src, tc
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			res := Lex(1, []byte(src))
			if got := res.Tokens.Kind(0); got != token.Char {
				t.Fatalf("kind = %v, want Char", got)
			}
			if len(res.Diagnostics) != tc.wantDiags {
				t.Fatalf("diagnostics = %+v, want %d", res.Diagnostics, tc.wantDiags)
			}
		})
	}
}

func TestLexUnterminatedCharResumesAtEndOfLine(t *testing.T) {
	t.Parallel()

	src := []byte("'c zz\nnext")
	res := Lex(1, src)

	want := []token.Kind{token.Char, token.Newline, token.Identifier, token.EOF}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want 1", res.Diagnostics)
	}
}

func TestLexStringLiterals(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind      token.Kind
		wantDiags int
	}{
		`"hello"`:          {kind: token.String},
		`"a\"b"`:           {kind: token.String},
		`"a\n\t\x41"`:      {kind: token.String},
		`""`:               {kind: token.String},
		`"""multi
line"""`: {kind: token.MultilineString},
		`"""open`: {kind: token.MultilineString, wantDiags: 1},
		`"open`:   {kind: token.String, wantDiags: 1},
	}

	for src, tc := range tests {
		src, tc := src, tc
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			res := Lex(1, []byte(src))
			if got := res.Tokens.Kind(0); got != tc.kind {
				t.Fatalf("kind = %v, want %v", got, tc.kind)
			}
			if len(res.Diagnostics) != tc.wantDiags {
				t.Fatalf("diagnostics = %+v, want %d", res.Diagnostics, tc.wantDiags)
			}
		})
	}
}

func TestLexUnterminatedStringConsumesNewline(t *testing.T) {
	t.Parallel()

	src := []byte("\"open\nnext")
	res := Lex(1, src)

	// The newline is consumed by the unterminated string; no Newline token.
	want := []token.Kind{token.String, token.Identifier, token.EOF}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
}

func TestLexUnknownByteProducesSingleBadToken(t *testing.T) {
	t.Parallel()

	res := Lex(1, []byte("$"))
	want := []token.Kind{token.Bad, token.EOF}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
	if len(res.Diagnostics) != 1 || !res.Diagnostics[0].IsError {
		t.Fatalf("diagnostics = %+v, want one error", res.Diagnostics)
	}

	res = Lex(1, []byte("$$"))
	want = []token.Kind{token.Bad, token.Bad, token.EOF}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
}

func TestLexCommentsAreTokens(t *testing.T) {
	t.Parallel()

	src := []byte("// line\n/// doc\n/* a /* nested */ b */ x")
	res := Lex(1, src)

	want := []token.Kind{
		token.Comment, token.Newline,
		token.DocComment, token.Newline,
		token.MultilineComment, token.Identifier,
		token.EOF,
	}
	if diff := deep.Equal(kindsOf(res), want); diff != nil {
		t.Fatalf("kind mismatch: %v", diff)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}
}

func TestLexNewlineAnchoredAtNewlineByte(t *testing.T) {
	t.Parallel()

	src := []byte("a\r\nb\nc")
	res := Lex(1, src)

	got := renderTokens(src, Lex(1, src))
	want := strings.TrimSpace(`
Identifier("a")@0
Newline("\n")@2
Identifier("b")@3
Newline("\n")@4
Identifier("c")@5
EOF("")@6
`)
	if got != want {
		t.Fatalf("golden mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}
}

func TestLexDiagnosticSpansCarryFileID(t *testing.T) {
	t.Parallel()

	res := Lex(7, []byte("0b13"))
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v, want 1", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Location.File != text.FileID(7) {
		t.Fatalf("diagnostic file = %d, want 7", d.Location.File)
	}
	if d.Location.Start != 3 || d.Location.End != 4 {
		t.Fatalf("diagnostic span = %s, want [3,4)", d.Location)
	}
}

// TestLexCorpusInvariants is the seed-corpus cousin of a fuzz target: every
// input must terminate with EOF at the source length with monotonic starts.
func TestLexCorpusInvariants(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"",
		"\n\n\n",
		"main :: () {\n}",
		"foo :: struct {bar: int, baz: [5]int\n}",
		"foo :: enum {hello(int)\n world}",
		"import foo { baz, fizzbuzz } as bar",
		"hello :: 2 * 1 - 2 * 3",
		"x := 'a' + \"str\" |> f",
		"bad $$$ bytes \x00\x01",
		"\"unterminated\nnext :: 1",
		"0x1.2p2 0x12.p2 0b1.0 12p2",
		"/* unclosed comment",
		"'\\x4G'",
		"&mut x & y && z",
		strings.Repeat("((((", 64),
		strings.Repeat("a ", 1024),
	}

	for _, src := range corpus {
		res := Lex(1, []byte(src))
		n := res.Tokens.Len()
		if n < 1 {
			t.Fatalf("%q: no tokens", src)
		}
		if k := res.Tokens.Kind(uint32(n - 1)); k != token.EOF {
			t.Fatalf("%q: last kind = %v", src, k)
		}
		if start := res.Tokens.Start(uint32(n - 1)); int(start) != len(src) {
			t.Fatalf("%q: EOF start = %d, want %d", src, start, len(src))
		}
		for i := 0; i < n-1; i++ {
			k, start := res.Tokens.At(uint32(i))
			length := Length([]byte(src), k, start)
			if length < 0 || int(start)+length > len(src) {
				t.Fatalf("%q: token %d (%v@%d) length %d out of bounds", src, i, k, start, length)
			}
			if next := res.Tokens.Start(uint32(i + 1)); start > next {
				t.Fatalf("%q: starts not monotonic at %d", src, i)
			}
		}
	}
}

func TestTokenLengthMatchesScan(t *testing.T) {
	t.Parallel()

	src := []byte("foo :: 0x1Fp2 + 'a' /* c */ \"s\" |> bar\n")
	res := Lex(1, src)

	// Each token's recomputed end must not cross the next token's start.
	for i := 0; i < res.Tokens.Len()-1; i++ {
		k, start := res.Tokens.At(uint32(i))
		end := int(start) + Length(src, k, start)
		if next := int(res.Tokens.Start(uint32(i + 1))); end > next {
			t.Fatalf("token %d (%v@%d) end %d crosses next start %d", i, k, start, end, next)
		}
	}
}

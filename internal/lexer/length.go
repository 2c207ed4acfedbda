package lexer

import (
	"fmt"

	"github.com/wave-lang/wavec/internal/text"
	"github.com/wave-lang/wavec/internal/token"
)

// Length recomputes the byte length of a token from its kind and start
// offset. Constant-length kinds come from the lexeme table; variable-length
// kinds re-run the kind's scanner over the source without emitting
// diagnostics.
func Length(src []byte, k token.Kind, start text.ByteOffset) int {
	if lex := k.Lexeme(); lex != "" {
		return len(lex)
	}

	switch k {
	case token.EOF:
		return 0
	case token.Bad:
		return 1
	}

	s := scanner{src: src, i: int(start), quiet: true}
	if s.eof() {
		return 0
	}
	switch k {
	case token.Identifier:
		s.scanIdent(s.i)
	case token.Int, token.Float:
		s.scanNumber()
	case token.Char:
		s.scanChar()
	case token.String, token.MultilineString:
		s.scanString()
	case token.Comment, token.DocComment, token.MultilineComment:
		s.scanComment()
	default:
		panic(fmt.Sprintf("lexer: no length rule for kind %v", k))
	}
	return s.i - int(start)
}

// Text returns the source bytes of a token.
func Text(src []byte, k token.Kind, start text.ByteOffset) []byte {
	end := int(start) + Length(src, k, start)
	if end > len(src) {
		end = len(src)
	}
	if int(start) > len(src) {
		return nil
	}
	return src[start:end]
}

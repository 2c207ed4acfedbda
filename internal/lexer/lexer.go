// Package lexer turns wave source bytes into the structure-of-arrays token
// stream. Lexical errors become diagnostics inside the returned stream and
// never abort the scan.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/wave-lang/wavec/internal/diag"
	"github.com/wave-lang/wavec/internal/text"
	"github.com/wave-lang/wavec/internal/token"
)

// LexedSrc is the lexer output: the token stream plus every lexical
// diagnostic, in source order. The stream always ends with EOF anchored at
// the source length.
type LexedSrc struct {
	Tokens      token.Stream
	Diagnostics []diag.Diagnostic
}

// Lex tokenizes src. It always succeeds; offending bytes become Bad tokens
// and scanning continues.
func Lex(file text.FileID, src []byte) LexedSrc {
	s := scanner{
		file: file,
		src:  src,
		toks: token.NewStream(len(src)),
	}
	s.run()
	return LexedSrc{
		Tokens:      s.toks,
		Diagnostics: s.diags,
	}
}

type scanner struct {
	file  text.FileID
	src   []byte
	i     int
	toks  token.Stream
	diags []diag.Diagnostic
	quiet bool // set when re-scanning for token lengths
}

func (s *scanner) run() {
	for !s.eof() {
		switch b := s.src[s.i]; {
		case b == ' ' || b == '\t':
			s.i++
		case b == '\n':
			s.emit(token.Newline, s.i)
			s.i++
		case b == '\r':
			if s.peek(1) == '\n' {
				// CRLF collapses to one Newline anchored at the '\n' byte.
				s.emit(token.Newline, s.i+1)
				s.i += 2
			} else {
				s.errorAt(s.i, s.i+1, "unknown character '\\r'", "stray carriage return", "")
				s.emit(token.Bad, s.i)
				s.i++
			}
		case b == '/' && (s.peek(1) == '/' || s.peek(1) == '*'):
			start := s.i
			s.emit(s.scanComment(), start)
		case isDigit(b):
			start := s.i
			s.emit(s.scanNumber(), start)
		case b == '\'':
			start := s.i
			s.scanChar()
			s.emit(token.Char, start)
		case b == '"':
			start := s.i
			s.emit(s.scanString(), start)
		case isIdentStart(b):
			start := s.i
			s.emit(s.scanIdent(start), start)
		default:
			start := s.i
			if kind, ok := s.scanOperator(); ok {
				s.emit(kind, start)
			} else {
				s.i++
				s.errorAt(start, s.i, fmt.Sprintf("unknown character %q", b), "unrecognized byte", "")
				s.emit(token.Bad, start)
			}
		}
	}
	s.emit(token.EOF, len(s.src))
}

func (s *scanner) scanIdent(start int) token.Kind {
	s.i++
	for !s.eof() && isIdentPart(s.src[s.i]) {
		s.i++
	}
	word := s.src[start:s.i]
	if kind, ok := token.LookupKeyword(word); ok {
		return kind
	}
	return token.Identifier
}

// scanComment handles '//', '///', and nestable '/*' comments; the caller
// guarantees the two-byte lookahead.
func (s *scanner) scanComment() token.Kind {
	if s.peek(1) == '*' {
		s.i += 2
		depth := 1
		for !s.eof() && depth > 0 {
			switch {
			case s.src[s.i] == '/' && s.peek(1) == '*':
				depth++
				s.i += 2
			case s.src[s.i] == '*' && s.peek(1) == '/':
				depth--
				s.i += 2
			default:
				s.i++
			}
		}
		return token.MultilineComment
	}

	kind := token.Comment
	if s.peek(2) == '/' {
		kind = token.DocComment
	}
	for !s.eof() && s.src[s.i] != '\n' && s.src[s.i] != '\r' {
		s.i++
	}
	return kind
}

func (s *scanner) scanOperator() (token.Kind, bool) {
	b := s.src[s.i]
	s.i++
	switch b {
	case '+':
		return s.pick1('=', token.PlusAssign, token.Plus), true
	case '-':
		if s.eatByte('=') {
			return token.MinusAssign, true
		}
		if s.eatByte('>') {
			return token.Arrow, true
		}
		return token.Minus, true
	case '*':
		return s.pick1('=', token.StarAssign, token.Star), true
	case '/':
		return s.pick1('=', token.SlashAssign, token.Slash), true
	case '%':
		return s.pick1('=', token.PercentAssign, token.Percent), true
	case '&':
		if s.eatByte('&') {
			return token.AmpAmp, true
		}
		return s.pick1('=', token.AmpAssign, token.Amp), true
	case '|':
		if s.eatByte('|') {
			return token.PipePipe, true
		}
		if s.eatByte('>') {
			return token.PipeGt, true
		}
		return s.pick1('=', token.PipeAssign, token.Pipe), true
	case '^':
		return s.pick1('=', token.CaretAssign, token.Caret), true
	case '~':
		return token.Tilde, true
	case '!':
		return s.pick1('=', token.NotEq, token.Bang), true
	case '?':
		return token.Question, true
	case '=':
		if s.eatByte('=') {
			return token.EqEq, true
		}
		if s.eatByte('>') {
			return token.FatArrow, true
		}
		return token.Assign, true
	case '<':
		if s.eatByte('<') {
			return s.pick1('=', token.ShlAssign, token.Shl), true
		}
		return s.pick1('=', token.LtEq, token.Lt), true
	case '>':
		if s.eatByte('>') {
			return s.pick1('=', token.ShrAssign, token.Shr), true
		}
		return s.pick1('=', token.GtEq, token.Gt), true
	case ':':
		if s.eatByte(':') {
			return token.ColonColon, true
		}
		return s.pick1('=', token.ColonAssign, token.Colon), true
	case '.':
		if s.eatByte('.') {
			return s.pick1('.', token.Ellipsis, token.DotDot), true
		}
		return token.Dot, true
	case ',':
		return token.Comma, true
	case ';':
		return token.Semi, true
	case '@':
		return token.At, true
	case '(':
		return token.LParen, true
	case ')':
		return token.RParen, true
	case '[':
		return token.LBracket, true
	case ']':
		return token.RBracket, true
	case '{':
		return token.LBrace, true
	case '}':
		return token.RBrace, true
	default:
		s.i--
		return 0, false
	}
}

// pick1 resolves a two-byte operator: next byte b gives then, anything
// else gives els.
func (s *scanner) pick1(b byte, then, els token.Kind) token.Kind {
	if s.eatByte(b) {
		return then
	}
	return els
}

func (s *scanner) emit(k token.Kind, start int) {
	off, err := safecast.Convert[uint32](start)
	if err != nil {
		panic(fmt.Sprintf("lexer: token offset overflow: %d", start))
	}
	s.toks.Append(k, text.ByteOffset(off))
}

func (s *scanner) errorAt(start, end int, message, label, hint string) {
	if s.quiet {
		return
	}
	s.diags = append(s.diags, diag.Error(s.span(start, end), message, label, hint))
}

func (s *scanner) span(start, end int) text.Span {
	return text.Span{
		File:  s.file,
		Start: text.ByteOffset(start),
		End:   text.ByteOffset(end),
	}
}

func (s *scanner) eof() bool {
	return s.i >= len(s.src)
}

func (s *scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.i]
}

func (s *scanner) peek(delta int) byte {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return 0
	}
	return s.src[j]
}

func (s *scanner) eatByte(b byte) bool {
	if s.eof() || s.src[s.i] != b {
		return false
	}
	s.i++
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isIdentStart admits ASCII letters, '_', and any UTF-8 lead byte.
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

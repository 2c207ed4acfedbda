// Package token defines the token vocabulary of the wave language and the
// structure-of-arrays token stream the lexer produces.
package token

import "fmt"

// Kind identifies the syntactic category of a token.
type Kind uint16

// Kind values produced by the lexer.
const (
	EOF Kind = iota
	Bad
	Newline
	Comment
	DocComment
	MultilineComment
	Identifier
	Int
	Float
	Char
	String
	MultilineString

	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Bang
	Question
	Assign
	Lt
	Gt
	Comma
	Semi
	Colon
	Dot
	At

	EqEq
	NotEq
	LtEq
	GtEq
	AmpAmp
	PipePipe
	PipeGt
	Shl
	Shr
	Arrow
	FatArrow
	DotDot
	Ellipsis
	ColonColon
	ColonAssign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAssign
	PipeAssign
	CaretAssign
	ShlAssign
	ShrAssign

	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	KwAs
	KwAlignof
	KwAsm
	KwBreak
	KwContinue
	KwContext
	KwDefer
	KwDistinct
	KwElse
	KwEnum
	KwFallthrough
	KwFor
	KwForeign
	KwIf
	KwImport
	KwIn
	KwMap
	KwMatch
	KwMut
	KwNew
	KwOffsetof
	KwOr
	KwOwn
	KwReturn
	KwSizeof
	KwStruct
	KwTypeof
	KwUndef
	KwUnion
	KwUsing
	KwWhen
	KwWhere

	kindCount
)

var kindNames = [kindCount]string{
	EOF:              "EOF",
	Bad:              "Bad",
	Newline:          "Newline",
	Comment:          "Comment",
	DocComment:       "DocComment",
	MultilineComment: "MultilineComment",
	Identifier:       "Identifier",
	Int:              "Int",
	Float:            "Float",
	Char:             "Char",
	String:           "String",
	MultilineString:  "MultilineString",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Bang:             "Bang",
	Question:         "Question",
	Assign:           "Assign",
	Lt:               "Lt",
	Gt:               "Gt",
	Comma:            "Comma",
	Semi:             "Semi",
	Colon:            "Colon",
	Dot:              "Dot",
	At:               "At",
	EqEq:             "EqEq",
	NotEq:            "NotEq",
	LtEq:             "LtEq",
	GtEq:             "GtEq",
	AmpAmp:           "AmpAmp",
	PipePipe:         "PipePipe",
	PipeGt:           "PipeGt",
	Shl:              "Shl",
	Shr:              "Shr",
	Arrow:            "Arrow",
	FatArrow:         "FatArrow",
	DotDot:           "DotDot",
	Ellipsis:         "Ellipsis",
	ColonColon:       "ColonColon",
	ColonAssign:      "ColonAssign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PercentAssign:    "PercentAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	KwAs:             "KwAs",
	KwAlignof:        "KwAlignof",
	KwAsm:            "KwAsm",
	KwBreak:          "KwBreak",
	KwContinue:       "KwContinue",
	KwContext:        "KwContext",
	KwDefer:          "KwDefer",
	KwDistinct:       "KwDistinct",
	KwElse:           "KwElse",
	KwEnum:           "KwEnum",
	KwFallthrough:    "KwFallthrough",
	KwFor:            "KwFor",
	KwForeign:        "KwForeign",
	KwIf:             "KwIf",
	KwImport:         "KwImport",
	KwIn:             "KwIn",
	KwMap:            "KwMap",
	KwMatch:          "KwMatch",
	KwMut:            "KwMut",
	KwNew:            "KwNew",
	KwOffsetof:       "KwOffsetof",
	KwOr:             "KwOr",
	KwOwn:            "KwOwn",
	KwReturn:         "KwReturn",
	KwSizeof:         "KwSizeof",
	KwStruct:         "KwStruct",
	KwTypeof:         "KwTypeof",
	KwUndef:          "KwUndef",
	KwUnion:          "KwUnion",
	KwUsing:          "KwUsing",
	KwWhen:           "KwWhen",
	KwWhere:          "KwWhere",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// lexemes holds the fixed spelling of constant-length kinds. Variable-length
// kinds (identifiers, literals, comments, Bad) stay empty; their length is
// recomputed from the source by the lexer.
var lexemes = [kindCount]string{
	Newline:       "\n",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Bang:          "!",
	Question:      "?",
	Assign:        "=",
	Lt:            "<",
	Gt:            ">",
	Comma:         ",",
	Semi:          ";",
	Colon:         ":",
	Dot:           ".",
	At:            "@",
	EqEq:          "==",
	NotEq:         "!=",
	LtEq:          "<=",
	GtEq:          ">=",
	AmpAmp:        "&&",
	PipePipe:      "||",
	PipeGt:        "|>",
	Shl:           "<<",
	Shr:           ">>",
	Arrow:         "->",
	FatArrow:      "=>",
	DotDot:        "..",
	Ellipsis:      "...",
	ColonColon:    "::",
	ColonAssign:   ":=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	LParen:        "(",
	RParen:        ")",
	LBracket:      "[",
	RBracket:      "]",
	LBrace:        "{",
	RBrace:        "}",
	KwAs:          "as",
	KwAlignof:     "alignof",
	KwAsm:         "asm",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwContext:     "context",
	KwDefer:       "defer",
	KwDistinct:    "distinct",
	KwElse:        "else",
	KwEnum:        "enum",
	KwFallthrough: "fallthrough",
	KwFor:         "for",
	KwForeign:     "foreign",
	KwIf:          "if",
	KwImport:      "import",
	KwIn:          "in",
	KwMap:         "map",
	KwMatch:       "match",
	KwMut:         "mut",
	KwNew:         "new",
	KwOffsetof:    "offsetof",
	KwOr:          "or",
	KwOwn:         "own",
	KwReturn:      "return",
	KwSizeof:      "sizeof",
	KwStruct:      "struct",
	KwTypeof:      "typeof",
	KwUndef:       "undef",
	KwUnion:       "union",
	KwUsing:       "using",
	KwWhen:        "when",
	KwWhere:       "where",
}

// Lexeme returns the fixed spelling of k, or "" for variable-length kinds.
func (k Kind) Lexeme() string {
	if k < kindCount {
		return lexemes[k]
	}
	return ""
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwAs && k <= KwWhere
}

// IsComment reports whether k is one of the comment kinds the parser skips.
func (k Kind) IsComment() bool {
	switch k {
	case Comment, DocComment, MultilineComment:
		return true
	default:
		return false
	}
}

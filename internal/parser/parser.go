// Package parser builds the structure-of-arrays syntax tree from a token
// stream. Syntax errors accumulate as diagnostics and the parser
// re-synchronises to the next likely declaration; it never aborts the
// translation unit.
package parser

import (
	"fmt"

	"github.com/wave-lang/wavec/internal/ast"
	"github.com/wave-lang/wavec/internal/diag"
	"github.com/wave-lang/wavec/internal/lexer"
	"github.com/wave-lang/wavec/internal/text"
	"github.com/wave-lang/wavec/internal/token"
)

// Ast is the parse result: the source, its token stream, the node arrays,
// the indices of the top-level declarations, and every diagnostic from
// lexing and parsing in source order.
type Ast struct {
	File        text.FileID
	Src         []byte
	Tokens      token.Stream
	Nodes       *ast.NodeList
	Decls       []ast.Index
	Diagnostics []diag.Diagnostic
}

// Parse lexes and parses src. It always returns a structurally sound tree;
// node 0 is the root and Decls lists the surviving top-level declarations.
func Parse(file text.FileID, src []byte) *Ast {
	lexed := lexer.Lex(file, src)

	p := parser{
		file:  file,
		src:   src,
		toks:  lexed.Tokens,
		nodes: ast.NewNodeList(lexed.Tokens.Len()),
		diags: lexed.Diagnostics,
	}
	p.nodes.Append(ast.Node{Kind: ast.NodeRoot})
	p.skipComments()
	p.parseTopLevel()

	return &Ast{
		File:        file,
		Src:         src,
		Tokens:      p.toks,
		Nodes:       p.nodes,
		Decls:       p.decls,
		Diagnostics: p.diags,
	}
}

type parser struct {
	file    text.FileID
	src     []byte
	toks    token.Stream
	tok     uint32 // current token index; comments are skipped on advance
	nodes   *ast.NodeList
	scratch []ast.Node
	decls   []ast.Index
	diags   []diag.Diagnostic
}

func (p *parser) parseTopLevel() {
	p.skipNewlines()
	for !p.at(token.EOF) {
		before := p.tok
		n, ok := p.parseDecl()
		if ok {
			p.decls = append(p.decls, p.nodes.Append(n))
		} else {
			p.nextDecl(false)
			if p.tok == before {
				p.advance()
			}
		}
		p.skipNewlines()
	}
}

// parseDecl parses one declaration and returns its provisional root node.
// On failure the cursor is left for nextDecl to re-synchronise.
func (p *parser) parseDecl() (ast.Node, bool) {
	switch p.kind() {
	case token.Identifier:
		return p.parseInit()
	case token.KwImport:
		return p.parseImport(false)
	case token.KwForeign:
		return p.parseForeign()
	case token.At, token.KwWhen, token.KwUsing:
		p.diags = append(p.diags, diag.Warn(p.tokenSpan(p.tok),
			fmt.Sprintf("'%s' declarations are not supported yet", p.tokenText(p.tok)),
			"ignored", ""))
		p.advance()
		return ast.Node{}, false
	case token.Bad:
		p.advance()
		return ast.Node{}, false
	default:
		p.errorHere("invalid declaration",
			fmt.Sprintf("found %s", p.describe(p.tok)),
			"declarations look like 'name :: value', 'name := value', or 'import name'")
		return ast.Node{}, false
	}
}

// parseInit parses a named initialiser with the cursor at the name.
func (p *parser) parseInit() (ast.Node, bool) {
	nameTok := p.tok
	p.nodes.Append(ast.Node{Kind: ast.NodeIdentifier, Token: nameTok})
	p.advance()

	switch p.kind() {
	case token.ColonColon:
		p.advance()
		expr := p.parseExpr()
		return ast.Node{Kind: ast.NodeConstDecl, Token: nameTok, Data: ast.VariableData(ast.Nil, expr)}, true
	case token.ColonAssign:
		p.advance()
		expr := p.parseExpr()
		return ast.Node{Kind: ast.NodeVarDecl, Token: nameTok, Data: ast.VariableData(ast.Nil, expr)}, true
	case token.Colon:
		p.advance()
		typ := p.parseType()
		switch p.kind() {
		case token.Colon:
			p.advance()
			expr := p.parseExpr()
			return ast.Node{Kind: ast.NodeConstDecl, Token: nameTok, Data: ast.VariableData(typ, expr)}, true
		case token.Assign:
			p.advance()
			expr := p.parseExpr()
			return ast.Node{Kind: ast.NodeVarDecl, Token: nameTok, Data: ast.VariableData(typ, expr)}, true
		default:
			p.errorHere("expected one of ':' or '='",
				fmt.Sprintf("found %s", p.describe(p.tok)), "")
			return ast.Node{}, false
		}
	default:
		p.errorHere("expected one of ':', '::' or ':='",
			fmt.Sprintf("found %s", p.describe(p.tok)), "")
		return ast.Node{}, false
	}
}

// parseImport parses an import with the cursor at the 'import' keyword.
// The module name token anchors the node; the alias node sits in the
// payload's first slot and the symbol list in the second.
func (p *parser) parseImport(foreign bool) (ast.Node, bool) {
	p.advance()
	if !p.at(token.Identifier) {
		p.errExpected("module name")
		return ast.Node{}, false
	}
	nameTok := p.tok
	p.advance()

	complex := false
	symbols := ast.Nil
	if p.at(token.LBrace) {
		complex = true
		symbols = p.parseSymbolList()
	}

	alias := ast.Nil
	if p.eat(token.KwAs) {
		if p.at(token.Identifier) {
			alias = p.nodes.Append(ast.Node{Kind: ast.NodeIdentifier, Token: p.tok})
			p.advance()
		} else {
			p.errExpected("alias name")
		}
	}

	kind := ast.NodeImport
	switch {
	case foreign && complex:
		kind = ast.NodeForeignImportComplex
	case foreign:
		kind = ast.NodeForeignImport
	case complex:
		kind = ast.NodeImportComplex
	}
	return ast.Node{Kind: kind, Token: nameTok, Data: ast.BinaryData(alias, symbols)}, true
}

// parseSymbolList parses '{ name, ... }' or '{ ... }' with the cursor at
// the opening brace, returning a Range of identifiers or an AllSymbols
// marker.
func (p *parser) parseSymbolList() ast.Index {
	braceTok := p.tok
	p.advance()
	p.skipNewlines()

	if p.at(token.Ellipsis) {
		n := p.nodes.Append(ast.Node{Kind: ast.NodeAllSymbols, Token: p.tok})
		p.advance()
		p.skipNewlines()
		if !p.eat(token.RBrace) {
			p.errExpected("'}'")
		}
		return n
	}

	mark := len(p.scratch)
	for {
		p.skipNewlines()
		if p.eat(token.RBrace) {
			break
		}
		if p.at(token.EOF) {
			p.errExpected("'}'")
			break
		}
		if p.at(token.Identifier) {
			p.scratch = append(p.scratch, ast.Node{Kind: ast.NodeIdentifier, Token: p.tok})
			p.advance()
		} else {
			p.errorHere("invalid import symbol",
				fmt.Sprintf("expected an identifier or '...', found %s", p.describe(p.tok)), "")
			p.advance()
			continue
		}
		p.skipNewlines()
		if p.eat(token.Comma) {
			continue
		}
		if p.at(token.RBrace) || p.at(token.EOF) {
			continue
		}
		p.errExpected("',' or '}'")
		p.advance()
	}

	start, end := p.materialize(mark)
	return p.nodes.Append(ast.Node{Kind: ast.NodeRange, Token: braceTok, Data: ast.RangeData(start, end)})
}

// parseForeign dispatches 'foreign import ...' or a 'foreign { decls }'
// block with the cursor at the 'foreign' keyword.
func (p *parser) parseForeign() (ast.Node, bool) {
	foreignTok := p.tok
	p.advance()

	if p.at(token.KwImport) {
		return p.parseImport(true)
	}
	if !p.at(token.LBrace) {
		p.errExpected("'import' or '{' after 'foreign'")
		return ast.Node{}, false
	}
	p.advance()

	mark := len(p.scratch)
	p.skipNewlines()
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.tok
		n, ok := p.parseDecl()
		if ok {
			p.scratch = append(p.scratch, n)
		} else {
			p.nextDecl(true)
			if p.tok == before {
				p.advance()
			}
		}
		p.skipNewlines()
	}
	if !p.eat(token.RBrace) {
		p.errExpected("'}'")
	}

	start, end := p.materialize(mark)
	return ast.Node{Kind: ast.NodeForeignBlock, Token: foreignTok, Data: ast.RangeData(start, end)}, true
}

// nextDecl consumes tokens until the cursor sits on something that can
// start a declaration: EOF, a declaration keyword, or an identifier whose
// next token introduces an initialiser. Inside a foreign block the closing
// brace also stops the scan.
func (p *parser) nextDecl(stopAtBrace bool) {
	for {
		switch p.kind() {
		case token.EOF, token.KwForeign, token.KwImport, token.KwWhen, token.KwUsing, token.At:
			return
		case token.RBrace:
			if stopAtBrace {
				return
			}
		case token.Identifier:
			switch p.peekKind() {
			case token.Colon, token.ColonColon, token.ColonAssign:
				return
			}
		}
		p.advance()
	}
}

// materialize moves the scratch entries above mark into the node array as
// one contiguous burst and returns their inclusive index range, or {0,0}
// when the list is empty.
func (p *parser) materialize(mark int) (ast.Index, ast.Index) {
	items := p.scratch[mark:]
	if len(items) == 0 {
		p.scratch = p.scratch[:mark]
		return ast.Nil, ast.Nil
	}
	start := p.nodes.Append(items[0])
	end := start
	for _, n := range items[1:] {
		end = p.nodes.Append(n)
	}
	p.scratch = p.scratch[:mark]
	return start, end
}

// ---- token cursor ----

func (p *parser) kind() token.Kind {
	return p.toks.Kind(p.tok)
}

func (p *parser) at(k token.Kind) bool {
	return p.kind() == k
}

// advance moves to the next non-comment token.
func (p *parser) advance() {
	if int(p.tok) < p.toks.Len()-1 {
		p.tok++
	}
	p.skipComments()
}

func (p *parser) skipComments() {
	for p.kind().IsComment() && int(p.tok) < p.toks.Len()-1 {
		p.tok++
	}
}

func (p *parser) eat(k token.Kind) bool {
	if !p.at(k) {
		return false
	}
	p.advance()
	return true
}

// peekKind returns the kind of the next non-comment token after the cursor.
func (p *parser) peekKind() token.Kind {
	for i := p.tok + 1; int(i) < p.toks.Len(); i++ {
		if k := p.toks.Kind(i); !k.IsComment() {
			return k
		}
	}
	return token.EOF
}

func (p *parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// ---- diagnostics ----

func (p *parser) tokenSpan(i uint32) text.Span {
	k, start := p.toks.At(i)
	length := lexer.Length(p.src, k, start)
	return text.Span{
		File:  p.file,
		Start: start,
		End:   start + text.ByteOffset(length), //nolint:gosec // length is bounded by the source size
	}
}

func (p *parser) tokenText(i uint32) string {
	k, start := p.toks.At(i)
	return string(lexer.Text(p.src, k, start))
}

// describe renders a token for "found ..." messages.
func (p *parser) describe(i uint32) string {
	switch p.toks.Kind(i) {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "newline"
	default:
		return fmt.Sprintf("'%s'", p.tokenText(i))
	}
}

func (p *parser) errorHere(message, label, hint string) {
	p.errorAt(p.tokenSpan(p.tok), message, label, hint)
}

func (p *parser) errorAt(span text.Span, message, label, hint string) {
	p.diags = append(p.diags, diag.Error(span, message, label, hint))
}

func (p *parser) errExpected(what string) {
	p.errorHere(
		fmt.Sprintf("expected %s, found %s", what, p.describe(p.tok)),
		fmt.Sprintf("expected %s", what), "")
}

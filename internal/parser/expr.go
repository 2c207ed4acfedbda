package parser

import (
	"fmt"

	"github.com/wave-lang/wavec/internal/ast"
	"github.com/wave-lang/wavec/internal/token"
)

// Binding powers, low to high. Binary operators at a level are
// left-associative: the right operand parses one level tighter.
const (
	precPipe = 1 + iota
	precOr
	precLogicalOr
	precLogicalAnd
	precComparison
	precTerm
	precFactor
	precAs
	precUnary
	precCall
	precPrimary
)

// binaryOp maps an operator token to its node kind and binding power;
// kind NodeInvalid means the token does not continue an expression.
func binaryOp(k token.Kind) (ast.NodeKind, int) {
	switch k {
	case token.PipeGt:
		return ast.NodePipeExpr, precPipe
	case token.KwOr:
		return ast.NodeOrExpr, precOr
	case token.PipePipe:
		return ast.NodeLogicalOrExpr, precLogicalOr
	case token.AmpAmp:
		return ast.NodeLogicalAndExpr, precLogicalAnd
	case token.EqEq:
		return ast.NodeEqExpr, precComparison
	case token.NotEq:
		return ast.NodeNeExpr, precComparison
	case token.Lt:
		return ast.NodeLtExpr, precComparison
	case token.Gt:
		return ast.NodeGtExpr, precComparison
	case token.LtEq:
		return ast.NodeLeExpr, precComparison
	case token.GtEq:
		return ast.NodeGeExpr, precComparison
	case token.Plus:
		return ast.NodeAddExpr, precTerm
	case token.Minus:
		return ast.NodeSubExpr, precTerm
	case token.Caret:
		return ast.NodeBitXorExpr, precTerm
	case token.Pipe:
		return ast.NodeBitOrExpr, precTerm
	case token.Star:
		return ast.NodeMulExpr, precFactor
	case token.Slash:
		return ast.NodeDivExpr, precFactor
	case token.Percent:
		return ast.NodeModExpr, precFactor
	case token.Amp:
		return ast.NodeBitAndExpr, precFactor
	case token.Shl:
		return ast.NodeShlExpr, precFactor
	case token.Shr:
		return ast.NodeShrExpr, precFactor
	case token.KwAs:
		return ast.NodeAsExpr, precAs
	default:
		return ast.NodeInvalid, 0
	}
}

func unaryOp(k token.Kind) (ast.NodeKind, bool) {
	switch k {
	case token.Plus:
		return ast.NodeUnaryPlus, true
	case token.Minus:
		return ast.NodeUnaryMinus, true
	case token.Star:
		return ast.NodeDeref, true
	case token.Bang:
		return ast.NodeUnaryNot, true
	case token.Tilde:
		return ast.NodeBitNot, true
	case token.Amp:
		return ast.NodeRef, true
	default:
		return ast.NodeInvalid, false
	}
}

func (p *parser) parseExpr() ast.Index {
	return p.parseExprPrec(precPipe)
}

// parseExprPrec is the precedence climber: parse a left-hand side, then
// fold in binary operators at or above min.
func (p *parser) parseExprPrec(min int) ast.Index {
	lhs := p.parseLhs()
	if lhs == ast.Nil {
		return ast.Nil
	}
	for {
		kind, prec := binaryOp(p.kind())
		if kind == ast.NodeInvalid || prec < min {
			return lhs
		}
		opTok := p.tok
		p.advance()
		rhs := p.parseExprPrec(prec + 1)
		lhs = p.nodes.Append(ast.Node{Kind: kind, Token: opTok, Data: ast.BinaryData(lhs, rhs)})
	}
}

// parseLhs parses a chain of unary prefixes over a postfix expression.
// '&' followed by 'mut' fuses into a single mutable-reference operator.
func (p *parser) parseLhs() ast.Index {
	if kind, ok := unaryOp(p.kind()); ok {
		opTok := p.tok
		p.advance()
		if kind == ast.NodeRef && p.eat(token.KwMut) {
			kind = ast.NodeMutRef
		}
		expr := p.parseLhs()
		return p.nodes.Append(ast.Node{Kind: kind, Token: opTok, Data: ast.UnaryData(expr)})
	}

	lhs := p.parsePrimary()
	if lhs == ast.Nil {
		return ast.Nil
	}
	return p.parsePostfix(lhs)
}

// parsePostfix folds '.' member accesses onto lhs.
func (p *parser) parsePostfix(lhs ast.Index) ast.Index {
	for p.at(token.Dot) {
		opTok := p.tok
		p.advance()
		if !p.at(token.Identifier) {
			p.errExpected("field name after '.'")
			return lhs
		}
		field := p.nodes.Append(ast.Node{Kind: ast.NodeIdentifier, Token: p.tok})
		p.advance()
		lhs = p.nodes.Append(ast.Node{Kind: ast.NodeFieldExpr, Token: opTok, Data: ast.BinaryData(lhs, field)})
	}
	return lhs
}

func (p *parser) parsePrimary() ast.Index {
	switch p.kind() {
	case token.Identifier:
		n := p.nodes.Append(ast.Node{Kind: ast.NodeIdentifier, Token: p.tok})
		p.advance()
		return n
	case token.Int:
		return p.literal(ast.NodeIntLit)
	case token.Float:
		return p.literal(ast.NodeFloatLit)
	case token.Char:
		return p.literal(ast.NodeCharLit)
	case token.String, token.MultilineString:
		return p.literal(ast.NodeStringLit)
	case token.LParen:
		return p.parseParenOrFunction()
	case token.KwStruct:
		return p.parseStructLiteral()
	case token.KwEnum:
		return p.parseEnumLiteral()
	case token.RBracket:
		// Early exit for the empty length slot of an array type.
		return ast.Nil
	default:
		p.errorHere("expected expression",
			fmt.Sprintf("found %s", p.describe(p.tok)), "")
		return ast.Nil
	}
}

func (p *parser) literal(kind ast.NodeKind) ast.Index {
	n := p.nodes.Append(ast.Node{Kind: kind, Token: p.tok})
	p.advance()
	return n
}

// parseParenOrFunction resolves the '(' ambiguity: try a function literal
// first; when the attempt fails, roll everything back to the '(' and parse
// a parenthesised expression.
func (p *parser) parseParenOrFunction() ast.Index {
	savedTok := p.tok
	savedNodes := p.nodes.Len()
	savedExtra := p.nodes.ExtraLen()
	savedDiags := len(p.diags)
	savedScratch := len(p.scratch)

	if fn, ok := p.parseFunction(); ok {
		return fn
	}

	p.tok = savedTok
	p.nodes.Truncate(savedNodes)
	p.nodes.TruncateExtra(savedExtra)
	p.diags = p.diags[:savedDiags]
	p.scratch = p.scratch[:savedScratch]

	p.advance() // '('
	inner := p.parseExpr()
	if !p.eat(token.RParen) {
		p.errExpected("')'")
	}
	return inner
}

// parseType parses a type position: reference types, array types, or any
// expression denoting a type.
func (p *parser) parseType() ast.Index {
	switch p.kind() {
	case token.Amp:
		ampTok := p.tok
		p.advance()
		kind := ast.NodeRefType
		if p.eat(token.KwMut) {
			kind = ast.NodeRefMutType
		} else if p.eat(token.KwOwn) {
			kind = ast.NodeRefOwnType
		}
		inner := p.parseType()
		return p.nodes.Append(ast.Node{Kind: kind, Token: ampTok, Data: ast.UnaryData(inner)})
	case token.LBracket:
		bracketTok := p.tok
		p.advance()
		length := p.parseExpr()
		if !p.eat(token.RBracket) {
			p.errExpected("']'")
		}
		elem := p.parseType()
		return p.nodes.Append(ast.Node{Kind: ast.NodeArrayType, Token: bracketTok, Data: ast.BinaryData(length, elem)})
	default:
		return p.parseExpr()
	}
}

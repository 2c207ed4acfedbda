package parser

import (
	"fmt"

	"github.com/wave-lang/wavec/internal/ast"
	"github.com/wave-lang/wavec/internal/token"
)

// parseStructLiteral parses 'struct { fields }' with the cursor at the
// keyword. Fields are comma-separated with an optional trailing newline;
// newline-only separation is diagnosed but the field is kept.
func (p *parser) parseStructLiteral() ast.Index {
	structTok := p.tok
	p.advance()
	if !p.at(token.LBrace) {
		p.errExpected("'{' after 'struct'")
		return ast.Nil
	}
	p.advance()

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
		if !p.at(token.Identifier) {
			p.errorHere("expected field name",
				fmt.Sprintf("found %s", p.describe(p.tok)), "")
			p.skipListGarbage(token.RBrace)
			continue
		}
		nameTok := p.tok
		p.advance()

		typ, def := ast.Nil, ast.Nil
		switch {
		case p.eat(token.ColonAssign):
			def = p.parseExpr()
		case p.eat(token.Colon):
			typ = p.parseType()
			if p.eat(token.Assign) {
				def = p.parseExpr()
			}
		default:
			p.errExpected("':' or ':=' after field name")
		}
		p.scratch = append(p.scratch, ast.Node{Kind: ast.NodeField, Token: nameTok, Data: ast.BinaryData(typ, def)})

		if p.eat(token.Comma) {
			continue
		}
		if p.at(token.Newline) {
			p.skipNewlines()
			if p.at(token.RBrace) || p.at(token.EOF) {
				continue
			}
			p.errorHere("expected ',' between fields",
				"fields are comma-separated", "add a ',' after the previous field")
			continue
		}
	}

	start, end := p.materialize(mark)
	kind := ast.NodeStructTwo
	if ast.RangeData(start, end).RangeLen() > 2 {
		kind = ast.NodeStruct
	}
	return p.nodes.Append(ast.Node{Kind: kind, Token: structTok, Data: ast.RangeData(start, end)})
}

// parseEnumLiteral parses 'enum [name] { variants }' with the cursor at
// the keyword. Variants separate on commas or newlines.
func (p *parser) parseEnumLiteral() ast.Index {
	anchor := p.tok
	p.advance()
	if p.at(token.Identifier) {
		anchor = p.tok
		p.advance()
	}
	if !p.at(token.LBrace) {
		p.errExpected("'{' after 'enum'")
		return ast.Nil
	}
	p.advance()

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
		if !p.at(token.Identifier) {
			p.errorHere("expected variant name",
				fmt.Sprintf("found %s", p.describe(p.tok)), "")
			p.skipListGarbage(token.RBrace)
			continue
		}
		nameTok := p.tok
		p.advance()

		if p.at(token.LParen) {
			p.parseVariantFields(nameTok)
		} else {
			value := ast.Nil
			if p.eat(token.Assign) {
				value = p.parseExpr()
			}
			p.scratch = append(p.scratch, ast.Node{Kind: ast.NodeVariantSimple, Token: nameTok, Data: ast.UnaryData(value)})
		}

		if p.eat(token.Comma) {
			continue
		}
		if !p.at(token.Newline) && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.errExpected("',' or '}'")
			p.advance()
		}
	}

	start, end := p.materialize(mark)
	kind := ast.NodeEnumTwo
	if ast.RangeData(start, end).RangeLen() > 2 {
		kind = ast.NodeEnum
	}
	return p.nodes.Append(ast.Node{Kind: kind, Token: anchor, Data: ast.RangeData(start, end)})
}

// parseVariantFields parses '(field, ...)' after a variant name and pushes
// the resulting variant node. Empty parentheses are diagnosed and the
// variant decays to a simple one. Fields are positional types or
// 'name: type' pairs.
func (p *parser) parseVariantFields(nameTok uint32) {
	lparenTok := p.tok
	p.advance()

	if p.eat(token.RParen) {
		p.errorAt(p.tokenSpan(lparenTok), "enum variant with empty parentheses",
			"remove the parentheses", "write the variant as a bare name")
		p.scratch = append(p.scratch, ast.Node{Kind: ast.NodeVariantSimple, Token: nameTok, Data: ast.UnaryData(ast.Nil)})
		return
	}

	mark := len(p.scratch)
	for {
		p.skipNewlines()
		if p.eat(token.RParen) {
			break
		}
		if p.at(token.EOF) {
			p.errExpected("')'")
			break
		}

		fieldTok := p.tok
		typ := ast.Nil
		if p.at(token.Identifier) && p.peekKind() == token.Colon {
			p.advance() // name
			p.advance() // ':'
			typ = p.parseType()
		} else {
			typ = p.parseType()
		}
		if typ == ast.Nil {
			p.skipListGarbage(token.RParen)
			continue
		}
		p.scratch = append(p.scratch, ast.Node{Kind: ast.NodeField, Token: fieldTok, Data: ast.BinaryData(typ, ast.Nil)})

		p.skipNewlines()
		if p.eat(token.Comma) {
			continue
		}
		if p.at(token.RParen) || p.at(token.EOF) {
			continue
		}
		p.errExpected("',' or ')'")
		p.advance()
	}

	start, end := p.materialize(mark)
	kind := ast.NodeVariantTwo
	if ast.RangeData(start, end).RangeLen() > 2 {
		kind = ast.NodeVariant
	}
	p.scratch = append(p.scratch, ast.Node{Kind: kind, Token: nameTok, Data: ast.RangeData(start, end)})
}

// skipListGarbage advances to the next list boundary: a comma, a newline,
// the given closer, or EOF.
func (p *parser) skipListGarbage(closer token.Kind) {
	for {
		switch p.kind() {
		case token.Comma:
			p.advance()
			return
		case token.Newline, closer, token.EOF:
			return
		}
		p.advance()
	}
}

// parseFunction attempts a function literal with the cursor at '('. Two
// nodes are reserved up front so the function precedes its subtree; on
// failure the caller rolls the arrays back and reparses as a
// parenthesised expression.
func (p *parser) parseFunction() (ast.Index, bool) {
	fnTok := p.tok
	fn := p.nodes.Reserve()
	proto := p.nodes.Reserve()

	paramsStart, paramsEnd, ok := p.parseParams()
	if !ok {
		return ast.Nil, false
	}

	returnType := ast.Nil
	if p.eat(token.Arrow) {
		returnType = p.parseType()
	}

	var callingConvention uint32
	if p.at(token.String) {
		callingConvention = p.tok
		p.advance()
	}

	var body ast.Index
	switch {
	case p.eat(token.FatArrow):
		body = p.parseExpr()
	case p.at(token.LBrace):
		body = p.parseBlock()
	default:
		return ast.Nil, false
	}

	count := ast.RangeData(paramsStart, paramsEnd).RangeLen()
	var protoNode ast.Node
	if count <= 1 {
		param := ast.Nil
		if count == 1 {
			param = paramsStart
		}
		off := p.nodes.AddFuncProtoOne(ast.FuncProtoOne{Param: param, CallingConvention: callingConvention})
		protoNode = ast.Node{Kind: ast.NodeFuncProtoOne, Token: fnTok, Data: ast.ProtoData(off, returnType)}
	} else {
		off := p.nodes.AddFuncProto(ast.FuncProto{
			ParamsStart:       paramsStart,
			ParamsEnd:         paramsEnd,
			CallingConvention: callingConvention,
		})
		protoNode = ast.Node{Kind: ast.NodeFuncProto, Token: fnTok, Data: ast.ProtoData(off, returnType)}
	}

	p.nodes.SetNode(proto, protoNode)
	p.nodes.SetNode(fn, ast.Node{Kind: ast.NodeFunc, Token: fnTok, Data: ast.FuncData(proto, body)})
	return fn, true
}

// parseParams parses '(name: [...] type [= default], ...)' with the cursor
// at '('. Any structural mismatch fails the whole attempt so the caller
// can fall back to a parenthesised expression. A parameter after a vararg
// is diagnosed but kept.
func (p *parser) parseParams() (ast.Index, ast.Index, bool) {
	p.advance() // '('
	mark := len(p.scratch)
	fail := func() (ast.Index, ast.Index, bool) {
		p.scratch = p.scratch[:mark]
		return ast.Nil, ast.Nil, false
	}

	prevVararg := false
	for {
		p.skipNewlines()
		if p.eat(token.RParen) {
			break
		}
		if !p.at(token.Identifier) {
			return fail()
		}
		nameTok := p.tok
		p.advance()
		if !p.eat(token.Colon) {
			return fail()
		}

		isVararg := p.eat(token.Ellipsis)
		typ := p.parseType()
		if typ == ast.Nil {
			p.errorAt(p.tokenSpan(nameTok), "parameter missing type",
				"this parameter needs a type after ':'", "")
		}
		def := ast.Nil
		if p.eat(token.Assign) {
			def = p.parseExpr()
		}

		if prevVararg {
			p.errorAt(p.tokenSpan(nameTok), "parameter after variadic parameter",
				"the '...' parameter must come last", "")
		}
		prevVararg = isVararg

		kind := ast.NodeParam
		if isVararg {
			kind = ast.NodeVarParam
		}
		p.scratch = append(p.scratch, ast.Node{Kind: kind, Token: nameTok, Data: ast.VariableData(typ, def)})

		p.skipNewlines()
		if p.eat(token.Comma) {
			continue
		}
		if p.eat(token.RParen) {
			break
		}
		return fail()
	}

	start, end := p.materialize(mark)
	return start, end, true
}

// parseBlock parses '{ statements }' with the cursor at '{'. Statements
// accumulate on the scratch stack and land contiguously after the closing
// brace.
func (p *parser) parseBlock() ast.Index {
	braceTok := p.tok
	p.advance()

	mark := len(p.scratch)
	for {
		p.skipNewlines()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.tok
		n, ok := p.parseStatement()
		if ok {
			p.scratch = append(p.scratch, n)
		}
		if p.tok == before {
			p.advance()
		}
	}
	if !p.eat(token.RBrace) {
		p.errExpected("'}'")
	}

	start, end := p.materialize(mark)
	return p.nodes.Append(ast.Node{Kind: ast.NodeBlock, Token: braceTok, Data: ast.RangeData(start, end)})
}

// parseStatement parses one block statement: a named initialiser when the
// lookahead shows one, otherwise an expression statement.
func (p *parser) parseStatement() (ast.Node, bool) {
	if p.at(token.Identifier) {
		switch p.peekKind() {
		case token.Colon, token.ColonColon, token.ColonAssign:
			return p.parseInit()
		}
	}

	exprTok := p.tok
	expr := p.parseExpr()
	if expr == ast.Nil {
		return ast.Node{}, false
	}
	return ast.Node{Kind: ast.NodeExprStmt, Token: exprTok, Data: ast.UnaryData(expr)}, true
}

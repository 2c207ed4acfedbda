// Package printer stringifies parsed declarations as S-expressions. It is
// a consumer of the tree, not part of the core pipeline; output is meant
// for tests and debugging.
package printer

import (
	"strings"

	"github.com/wave-lang/wavec/internal/ast"
	"github.com/wave-lang/wavec/internal/lexer"
	"github.com/wave-lang/wavec/internal/parser"
)

// Print renders every top-level declaration, one per line.
func Print(a *parser.Ast) string {
	out := make([]string, 0, len(a.Decls))
	for _, d := range a.Decls {
		out = append(out, Decl(a, d))
	}
	return strings.Join(out, "\n")
}

// Decl renders the declaration rooted at idx.
func Decl(a *parser.Ast, idx ast.Index) string {
	var sb strings.Builder
	write(&sb, a, idx)
	return sb.String()
}

var operatorHeads = map[ast.NodeKind]string{
	ast.NodeAddExpr:        "+",
	ast.NodeSubExpr:        "-",
	ast.NodeMulExpr:        "*",
	ast.NodeDivExpr:        "/",
	ast.NodeModExpr:        "%",
	ast.NodeBitAndExpr:     "&",
	ast.NodeBitOrExpr:      "|",
	ast.NodeBitXorExpr:     "^",
	ast.NodeShlExpr:        "<<",
	ast.NodeShrExpr:        ">>",
	ast.NodeEqExpr:         "==",
	ast.NodeNeExpr:         "!=",
	ast.NodeLtExpr:         "<",
	ast.NodeGtExpr:         ">",
	ast.NodeLeExpr:         "<=",
	ast.NodeGeExpr:         ">=",
	ast.NodeLogicalAndExpr: "&&",
	ast.NodeLogicalOrExpr:  "||",
	ast.NodeOrExpr:         "or",
	ast.NodePipeExpr:       "|>",
	ast.NodeAsExpr:         "as",
	ast.NodeFieldExpr:      ".",
}

var unaryHeads = map[ast.NodeKind]string{
	ast.NodeUnaryPlus:  "+",
	ast.NodeUnaryMinus: "-",
	ast.NodeDeref:      "*",
	ast.NodeUnaryNot:   "!",
	ast.NodeBitNot:     "~",
	ast.NodeRef:        "&",
	ast.NodeMutRef:     "&mut",
	ast.NodeRefType:    "&",
	ast.NodeRefMutType: "&mut",
	ast.NodeRefOwnType: "&own",
}

func write(sb *strings.Builder, a *parser.Ast, idx ast.Index) {
	if idx == ast.Nil {
		sb.WriteString("_")
		return
	}

	n := a.Nodes.Get(idx)
	switch n.Kind {
	case ast.NodeIdentifier, ast.NodeIntLit, ast.NodeFloatLit, ast.NodeCharLit, ast.NodeStringLit:
		sb.WriteString(tokenText(a, n.Token))

	case ast.NodeConstDecl, ast.NodeVarDecl:
		head := "def"
		if n.Kind == ast.NodeVarDecl {
			head = "var"
		}
		typ, expr := n.Data.Variable()
		sb.WriteString("(" + head + " " + tokenText(a, n.Token))
		if typ != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, typ)
		}
		sb.WriteString(" ")
		write(sb, a, expr)
		sb.WriteString(")")

	case ast.NodeImport, ast.NodeImportComplex, ast.NodeForeignImport, ast.NodeForeignImportComplex:
		head := "import"
		if n.Kind == ast.NodeForeignImport || n.Kind == ast.NodeForeignImportComplex {
			head = "foreign-import"
		}
		alias, symbols := n.Data.Binary()
		sb.WriteString("(" + head + " " + tokenText(a, n.Token))
		if symbols != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, symbols)
		}
		if alias != ast.Nil {
			sb.WriteString(" (as ")
			write(sb, a, alias)
			sb.WriteString(")")
		}
		sb.WriteString(")")

	case ast.NodeForeignBlock:
		sb.WriteString("(foreign")
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeRange:
		sb.WriteString("(symbols")
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeAllSymbols:
		sb.WriteString("(symbols ...)")

	case ast.NodeRefType, ast.NodeRefMutType, ast.NodeRefOwnType:
		sb.WriteString("(" + unaryHeads[n.Kind] + " ")
		write(sb, a, n.Data.Unary())
		sb.WriteString(")")

	case ast.NodeArrayType:
		length, elem := n.Data.Binary()
		sb.WriteString("(array ")
		write(sb, a, length)
		sb.WriteString(" ")
		write(sb, a, elem)
		sb.WriteString(")")

	case ast.NodeUnaryPlus, ast.NodeUnaryMinus, ast.NodeDeref, ast.NodeUnaryNot, ast.NodeBitNot, ast.NodeRef, ast.NodeMutRef:
		sb.WriteString("(" + unaryHeads[n.Kind] + " ")
		write(sb, a, n.Data.Unary())
		sb.WriteString(")")

	case ast.NodeStructTwo, ast.NodeStruct:
		sb.WriteString("(struct")
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeField:
		typ, def := n.Data.Binary()
		sb.WriteString("(field " + tokenText(a, n.Token))
		sb.WriteString(" ")
		write(sb, a, typ)
		if def != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, def)
		}
		sb.WriteString(")")

	case ast.NodeEnumTwo, ast.NodeEnum:
		sb.WriteString("(enum")
		if name := tokenText(a, n.Token); name != "enum" {
			sb.WriteString(" " + name)
		}
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeVariantSimple:
		sb.WriteString("(variant " + tokenText(a, n.Token))
		if value := n.Data.Unary(); value != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, value)
		}
		sb.WriteString(")")

	case ast.NodeVariantTwo, ast.NodeVariant:
		sb.WriteString("(variant " + tokenText(a, n.Token))
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeFunc:
		proto, body := n.Data.Func()
		sb.WriteString("(fn ")
		write(sb, a, proto)
		sb.WriteString(" ")
		write(sb, a, body)
		sb.WriteString(")")

	case ast.NodeFuncProtoOne:
		extra, returnType := n.Data.Proto()
		payload := a.Nodes.FuncProtoOneAt(extra)
		sb.WriteString("(proto (params")
		if payload.Param != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, payload.Param)
		}
		sb.WriteString(")")
		writeProtoTail(sb, a, returnType, payload.CallingConvention)
		sb.WriteString(")")

	case ast.NodeFuncProto:
		extra, returnType := n.Data.Proto()
		payload := a.Nodes.FuncProtoAt(extra)
		sb.WriteString("(proto (params")
		writeRange(sb, a, ast.RangeData(payload.ParamsStart, payload.ParamsEnd))
		sb.WriteString(")")
		writeProtoTail(sb, a, returnType, payload.CallingConvention)
		sb.WriteString(")")

	case ast.NodeParam, ast.NodeVarParam:
		head := "param"
		if n.Kind == ast.NodeVarParam {
			head = "varparam"
		}
		typ, def := n.Data.Variable()
		sb.WriteString("(" + head + " " + tokenText(a, n.Token) + " ")
		write(sb, a, typ)
		if def != ast.Nil {
			sb.WriteString(" ")
			write(sb, a, def)
		}
		sb.WriteString(")")

	case ast.NodeBlock:
		sb.WriteString("(block")
		writeRange(sb, a, n.Data)
		sb.WriteString(")")

	case ast.NodeExprStmt:
		write(sb, a, n.Data.Unary())

	default:
		if head, ok := operatorHeads[n.Kind]; ok {
			lhs, rhs := n.Data.Binary()
			sb.WriteString("(" + head + " ")
			write(sb, a, lhs)
			sb.WriteString(" ")
			write(sb, a, rhs)
			sb.WriteString(")")
			return
		}
		sb.WriteString("_")
	}
}

func writeProtoTail(sb *strings.Builder, a *parser.Ast, returnType ast.Index, callingConvention uint32) {
	if returnType != ast.Nil {
		sb.WriteString(" (ret ")
		write(sb, a, returnType)
		sb.WriteString(")")
	}
	if callingConvention != 0 {
		sb.WriteString(" (cc " + tokenText(a, callingConvention) + ")")
	}
}

func writeRange(sb *strings.Builder, a *parser.Ast, d ast.Data) {
	start, end := d.Range()
	if start == ast.Nil && end == ast.Nil {
		return
	}
	for i := start; i <= end; i++ {
		sb.WriteString(" ")
		write(sb, a, i)
	}
}

func tokenText(a *parser.Ast, tok uint32) string {
	k, start := a.Tokens.At(tok)
	return string(lexer.Text(a.Src, k, start))
}

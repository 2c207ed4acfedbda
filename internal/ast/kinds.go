// Package ast defines the structure-of-arrays syntax tree: a pre-order
// node array addressed by 32-bit indices, a per-node tagged payload, and a
// byte-granular extra buffer for payloads that do not fit in a node.
package ast

import "fmt"

// NodeKind identifies the syntactic category of a node. The kind also
// fixes how the node's Data payload and any extra-buffer entry are read.
type NodeKind uint8

// NodeKind values produced by the parser.
const (
	NodeInvalid NodeKind = iota
	NodeRoot

	NodeIdentifier
	NodeIntLit
	NodeFloatLit
	NodeCharLit
	NodeStringLit

	NodeConstDecl
	NodeVarDecl

	NodeImport
	NodeImportComplex
	NodeForeignImport
	NodeForeignImportComplex
	NodeForeignBlock
	NodeRange
	NodeAllSymbols

	NodeRefType
	NodeRefMutType
	NodeRefOwnType
	NodeArrayType

	NodeAddExpr
	NodeSubExpr
	NodeMulExpr
	NodeDivExpr
	NodeModExpr
	NodeBitAndExpr
	NodeBitOrExpr
	NodeBitXorExpr
	NodeShlExpr
	NodeShrExpr
	NodeEqExpr
	NodeNeExpr
	NodeLtExpr
	NodeGtExpr
	NodeLeExpr
	NodeGeExpr
	NodeLogicalAndExpr
	NodeLogicalOrExpr
	NodeOrExpr
	NodePipeExpr
	NodeAsExpr
	NodeFieldExpr

	NodeUnaryPlus
	NodeUnaryMinus
	NodeDeref
	NodeUnaryNot
	NodeBitNot
	NodeRef
	NodeMutRef

	NodeStructTwo
	NodeStruct
	NodeField
	NodeEnumTwo
	NodeEnum
	NodeVariantSimple
	NodeVariantTwo
	NodeVariant

	NodeFunc
	NodeFuncProtoOne
	NodeFuncProto
	NodeParam
	NodeVarParam
	NodeBlock
	NodeExprStmt

	nodeKindCount
)

var nodeKindNames = [nodeKindCount]string{
	NodeInvalid:              "Invalid",
	NodeRoot:                 "Root",
	NodeIdentifier:           "Identifier",
	NodeIntLit:               "IntLit",
	NodeFloatLit:             "FloatLit",
	NodeCharLit:              "CharLit",
	NodeStringLit:            "StringLit",
	NodeConstDecl:            "ConstDecl",
	NodeVarDecl:              "VarDecl",
	NodeImport:               "Import",
	NodeImportComplex:        "ImportComplex",
	NodeForeignImport:        "ForeignImport",
	NodeForeignImportComplex: "ForeignImportComplex",
	NodeForeignBlock:         "ForeignBlock",
	NodeRange:                "Range",
	NodeAllSymbols:           "AllSymbols",
	NodeRefType:              "RefType",
	NodeRefMutType:           "RefMutType",
	NodeRefOwnType:           "RefOwnType",
	NodeArrayType:            "ArrayType",
	NodeAddExpr:              "AddExpr",
	NodeSubExpr:              "SubExpr",
	NodeMulExpr:              "MulExpr",
	NodeDivExpr:              "DivExpr",
	NodeModExpr:              "ModExpr",
	NodeBitAndExpr:           "BitAndExpr",
	NodeBitOrExpr:            "BitOrExpr",
	NodeBitXorExpr:           "BitXorExpr",
	NodeShlExpr:              "ShlExpr",
	NodeShrExpr:              "ShrExpr",
	NodeEqExpr:               "EqExpr",
	NodeNeExpr:               "NeExpr",
	NodeLtExpr:               "LtExpr",
	NodeGtExpr:               "GtExpr",
	NodeLeExpr:               "LeExpr",
	NodeGeExpr:               "GeExpr",
	NodeLogicalAndExpr:       "LogicalAndExpr",
	NodeLogicalOrExpr:        "LogicalOrExpr",
	NodeOrExpr:               "OrExpr",
	NodePipeExpr:             "PipeExpr",
	NodeAsExpr:               "AsExpr",
	NodeFieldExpr:            "FieldExpr",
	NodeUnaryPlus:            "UnaryPlus",
	NodeUnaryMinus:           "UnaryMinus",
	NodeDeref:                "Deref",
	NodeUnaryNot:             "UnaryNot",
	NodeBitNot:               "BitNot",
	NodeRef:                  "Ref",
	NodeMutRef:               "MutRef",
	NodeStructTwo:            "StructTwo",
	NodeStruct:               "Struct",
	NodeField:                "Field",
	NodeEnumTwo:              "EnumTwo",
	NodeEnum:                 "Enum",
	NodeVariantSimple:        "VariantSimple",
	NodeVariantTwo:           "VariantTwo",
	NodeVariant:              "Variant",
	NodeFunc:                 "Func",
	NodeFuncProtoOne:         "FuncProtoOne",
	NodeFuncProto:            "FuncProto",
	NodeParam:                "Param",
	NodeVarParam:             "VarParam",
	NodeBlock:                "Block",
	NodeExprStmt:             "ExprStmt",
}

func (k NodeKind) String() string {
	if k < nodeKindCount {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}

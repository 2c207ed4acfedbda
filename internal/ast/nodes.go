package ast

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
)

// Index addresses a node in the node array. Index 0 is the mandatory root
// node, so Nil doubles as "invalid/absent".
type Index uint32

// Nil marks an absent or failed child.
const Nil Index = 0

// ExtraIndex is a byte offset into the extra buffer.
type ExtraIndex uint32

// Data is the fixed-size tagged payload of a node. The two slots are read
// through the shape the node's kind prescribes: two children, one child, a
// sibling range, a prototype reference, and so on.
type Data struct {
	A, B Index
}

// BinaryData payloads carry two children (binary operators, array types,
// fields, imports).
func BinaryData(lhs, rhs Index) Data { return Data{A: lhs, B: rhs} }

// Binary reads a two-child payload.
func (d Data) Binary() (lhs, rhs Index) { return d.A, d.B }

// UnaryData payloads carry one child.
func UnaryData(expr Index) Data { return Data{A: expr} }

// Unary reads a one-child payload.
func (d Data) Unary() Index { return d.A }

// RangeData payloads carry an inclusive range of contiguous sibling nodes;
// {0,0} means empty. Aggregate bodies and blocks share this shape.
func RangeData(start, end Index) Data { return Data{A: start, B: end} }

// Range reads a sibling-range payload.
func (d Data) Range() (start, end Index) { return d.A, d.B }

// RangeLen returns the number of siblings a range payload covers.
func (d Data) RangeLen() int {
	if d.A == Nil && d.B == Nil {
		return 0
	}
	return int(d.B-d.A) + 1
}

// FuncData payloads carry a prototype node and a body.
func FuncData(proto, body Index) Data { return Data{A: proto, B: body} }

// Func reads a function payload.
func (d Data) Func() (proto, body Index) { return d.A, d.B }

// ProtoData payloads carry an extra-buffer offset and a return type.
func ProtoData(extra ExtraIndex, returnType Index) Data {
	return Data{A: Index(extra), B: returnType}
}

// Proto reads a prototype payload.
func (d Data) Proto() (extra ExtraIndex, returnType Index) {
	return ExtraIndex(d.A), d.B
}

// VariableData payloads carry a type and an initial value, either of which
// may be Nil. Parameters reuse the shape for type and default value.
func VariableData(typ, expr Index) Data { return Data{A: typ, B: expr} }

// Variable reads a variable payload.
func (d Data) Variable() (typ, expr Index) { return d.A, d.B }

// Node is one provisional or stored node. Provisional values circulate
// through the parser's scratch stack before they are appended.
type Node struct {
	Kind  NodeKind
	Token uint32 // anchor token index in the token stream
	Data  Data
}

// NodeList is the structure-of-arrays node storage: parallel kind, anchor,
// and payload arrays plus the extra byte buffer. Appends are the only way
// indices are handed out; removal is restricted to the array tail.
type NodeList struct {
	kinds  []NodeKind
	tokens []uint32
	data   []Data
	extra  []byte
}

// NewNodeList returns node storage pre-sized for a stream of numTokens
// tokens.
func NewNodeList(numTokens int) *NodeList {
	capHint := numTokens / 3
	if capHint < 4 {
		capHint = 4
	}
	return &NodeList{
		kinds:  make([]NodeKind, 0, capHint),
		tokens: make([]uint32, 0, capHint),
		data:   make([]Data, 0, capHint),
	}
}

// Len returns the number of nodes.
func (l *NodeList) Len() int {
	return len(l.kinds)
}

// Append adds a node and returns its index.
func (l *NodeList) Append(n Node) Index {
	idx, err := safecast.Convert[uint32](len(l.kinds))
	if err != nil {
		panic("ast: node index overflow")
	}
	l.kinds = append(l.kinds, n.Kind)
	l.tokens = append(l.tokens, n.Token)
	l.data = append(l.data, n.Data)
	return Index(idx)
}

// Reserve appends a placeholder to stabilise an index before the node's
// children exist. The caller must SetNode it later.
func (l *NodeList) Reserve() Index {
	return l.Append(Node{})
}

// SetNode overwrites a previously reserved (or appended) node.
func (l *NodeList) SetNode(i Index, n Node) {
	if int(i) >= len(l.kinds) {
		panic(fmt.Sprintf("ast: SetNode(%d) out of range (len %d)", i, len(l.kinds)))
	}
	l.kinds[i] = n.Kind
	l.tokens[i] = n.Token
	l.data[i] = n.Data
}

// Get returns a copy of node i.
func (l *NodeList) Get(i Index) Node {
	return Node{Kind: l.kinds[i], Token: l.tokens[i], Data: l.data[i]}
}

// Kind returns the kind of node i.
func (l *NodeList) Kind(i Index) NodeKind { return l.kinds[i] }

// Token returns the anchor token index of node i.
func (l *NodeList) Token(i Index) uint32 { return l.tokens[i] }

// Data returns the payload of node i.
func (l *NodeList) Data(i Index) Data { return l.data[i] }

// Truncate rolls the node array back to length n. Only tail nodes may be
// discarded; anything else is a bug in the caller.
func (l *NodeList) Truncate(n int) {
	if n > len(l.kinds) {
		panic(fmt.Sprintf("ast: Truncate(%d) beyond length %d", n, len(l.kinds)))
	}
	l.kinds = l.kinds[:n]
	l.tokens = l.tokens[:n]
	l.data = l.data[:n]
}

// ExtraLen returns the extra buffer length in bytes.
func (l *NodeList) ExtraLen() int {
	return len(l.extra)
}

// TruncateExtra rolls the extra buffer back to n bytes.
func (l *NodeList) TruncateExtra(n int) {
	if n > len(l.extra) {
		panic(fmt.Sprintf("ast: TruncateExtra(%d) beyond length %d", n, len(l.extra)))
	}
	l.extra = l.extra[:n]
}

// FuncProtoOne is the extra payload of a NodeFuncProtoOne prototype: at
// most one parameter and an optional calling-convention string token.
// Zero values mean absent.
type FuncProtoOne struct {
	Param             Index
	CallingConvention uint32 // token index of the convention string
}

// FuncProto is the extra payload of a NodeFuncProto prototype: an
// inclusive parameter node range plus the calling convention.
type FuncProto struct {
	ParamsStart       Index
	ParamsEnd         Index
	CallingConvention uint32
}

// AddFuncProtoOne appends p to the extra buffer and returns its offset.
func (l *NodeList) AddFuncProtoOne(p FuncProtoOne) ExtraIndex {
	off := l.extraOffset()
	l.appendExtraU32(uint32(p.Param))
	l.appendExtraU32(p.CallingConvention)
	return off
}

// FuncProtoOneAt reads a FuncProtoOne written at off. The caller must know
// the shape from the parent node kind.
func (l *NodeList) FuncProtoOneAt(off ExtraIndex) FuncProtoOne {
	return FuncProtoOne{
		Param:             Index(l.extraU32(off)),
		CallingConvention: l.extraU32(off + 4),
	}
}

// AddFuncProto appends p to the extra buffer and returns its offset.
func (l *NodeList) AddFuncProto(p FuncProto) ExtraIndex {
	off := l.extraOffset()
	l.appendExtraU32(uint32(p.ParamsStart))
	l.appendExtraU32(uint32(p.ParamsEnd))
	l.appendExtraU32(p.CallingConvention)
	return off
}

// FuncProtoAt reads a FuncProto written at off.
func (l *NodeList) FuncProtoAt(off ExtraIndex) FuncProto {
	return FuncProto{
		ParamsStart:       Index(l.extraU32(off)),
		ParamsEnd:         Index(l.extraU32(off + 4)),
		CallingConvention: l.extraU32(off + 8),
	}
}

func (l *NodeList) extraOffset() ExtraIndex {
	off, err := safecast.Convert[uint32](len(l.extra))
	if err != nil {
		panic("ast: extra buffer offset overflow")
	}
	return ExtraIndex(off)
}

func (l *NodeList) appendExtraU32(v uint32) {
	l.extra = binary.LittleEndian.AppendUint32(l.extra, v)
}

func (l *NodeList) extraU32(off ExtraIndex) uint32 {
	if int(off)+4 > len(l.extra) {
		panic(fmt.Sprintf("ast: extra read at %d beyond length %d", off, len(l.extra)))
	}
	return binary.LittleEndian.Uint32(l.extra[off : off+4])
}

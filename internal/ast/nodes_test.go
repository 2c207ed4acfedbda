package ast

import "testing"

func TestReserveThenSetStabilisesIndices(t *testing.T) {
	t.Parallel()

	l := NewNodeList(0)
	root := l.Append(Node{Kind: NodeRoot})
	if root != 0 {
		t.Fatalf("root index = %d, want 0", root)
	}

	parent := l.Reserve()
	child := l.Append(Node{Kind: NodeIntLit, Token: 3})
	l.SetNode(parent, Node{Kind: NodeUnaryMinus, Token: 2, Data: UnaryData(child)})

	if got := l.Kind(parent); got != NodeUnaryMinus {
		t.Fatalf("kind = %v, want UnaryMinus", got)
	}
	if got := l.Data(parent).Unary(); got != child {
		t.Fatalf("child = %d, want %d", got, child)
	}
	if parent >= child {
		t.Fatal("reserved parent must precede its child")
	}
}

func TestTruncateOnlyPopsTail(t *testing.T) {
	t.Parallel()

	l := NewNodeList(0)
	l.Append(Node{Kind: NodeRoot})
	a := l.Append(Node{Kind: NodeIdentifier})
	l.Append(Node{Kind: NodeIntLit})

	l.Truncate(int(a) + 1)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := l.Kind(a); got != NodeIdentifier {
		t.Fatalf("kind after truncate = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic growing via Truncate")
		}
	}()
	l.Truncate(10)
}

func TestExtraBufferFuncProtoRoundTrip(t *testing.T) {
	t.Parallel()

	l := NewNodeList(0)

	one := FuncProtoOne{Param: 7, CallingConvention: 12}
	offOne := l.AddFuncProtoOne(one)
	many := FuncProto{ParamsStart: 3, ParamsEnd: 6, CallingConvention: 0}
	offMany := l.AddFuncProto(many)

	if got := l.FuncProtoOneAt(offOne); got != one {
		t.Fatalf("FuncProtoOneAt = %+v, want %+v", got, one)
	}
	if got := l.FuncProtoAt(offMany); got != many {
		t.Fatalf("FuncProtoAt = %+v, want %+v", got, many)
	}
	if offMany != 8 {
		t.Fatalf("second entry offset = %d, want byte offset 8", offMany)
	}

	// Offsets are stable across later appends.
	l.AddFuncProtoOne(FuncProtoOne{Param: 99})
	if got := l.FuncProtoOneAt(offOne); got != one {
		t.Fatalf("entry moved after append: %+v", got)
	}
}

func TestTruncateExtraRollsBackSpeculativeWrites(t *testing.T) {
	t.Parallel()

	l := NewNodeList(0)
	mark := l.ExtraLen()
	l.AddFuncProtoOne(FuncProtoOne{Param: 1})
	l.TruncateExtra(mark)
	if l.ExtraLen() != 0 {
		t.Fatalf("ExtraLen() = %d, want 0", l.ExtraLen())
	}
}

func TestRangeDataLen(t *testing.T) {
	t.Parallel()

	if got := RangeData(0, 0).RangeLen(); got != 0 {
		t.Fatalf("empty range len = %d", got)
	}
	if got := RangeData(4, 4).RangeLen(); got != 1 {
		t.Fatalf("singleton range len = %d", got)
	}
	if got := RangeData(4, 7).RangeLen(); got != 4 {
		t.Fatalf("range len = %d", got)
	}
}

package parser

import (
	"testing"

	"github.com/wave-lang/wavec/internal/ast"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"",
		"main :: () {\n}",
		"foo :: struct {bar: int, baz: [5]int\n}",
		"foo :: enum {hello(int)\n world}",
		"import foo { baz, fizzbuzz } as bar",
		"foreign {\n f :: () {\n }\n}",
		"f :: (x: int, rest: ...int) -> int \"c\" => x",
		"x :: (1 + 2) * 3 |> g",
		"}{)( garbage\nsecond :: 2",
		"when os {}\nusing foo\n@attr",
	} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, src []byte) {
		t.Helper()

		if len(src) > 256*1024 {
			t.Skip()
		}

		a := Parse(1, src)

		if a.Nodes.Len() < 1 || a.Nodes.Kind(0) != ast.NodeRoot {
			t.Fatalf("node 0 kind = %v, want Root", a.Nodes.Kind(0))
		}
		for _, d := range a.Decls {
			if d == ast.Nil || int(d) >= a.Nodes.Len() {
				t.Fatalf("decl index %d out of range (len %d)", d, a.Nodes.Len())
			}
		}
		for i := 1; i < a.Nodes.Len(); i++ {
			idx := ast.Index(i)
			if a.Nodes.Kind(idx) == ast.NodeInvalid {
				t.Fatalf("reserved node %d leaked into the final tree", i)
			}
			switch a.Nodes.Kind(idx) {
			case ast.NodeStructTwo, ast.NodeStruct, ast.NodeEnumTwo, ast.NodeEnum,
				ast.NodeBlock, ast.NodeRange, ast.NodeForeignBlock,
				ast.NodeVariantTwo, ast.NodeVariant:
				start, end := a.Nodes.Data(idx).Range()
				if start == ast.Nil && end == ast.Nil {
					continue
				}
				if start == ast.Nil || start > end || int(end) >= a.Nodes.Len() {
					t.Fatalf("node %d (%v) has invalid range {%d,%d}", i, a.Nodes.Kind(idx), start, end)
				}
			}
		}
	})
}

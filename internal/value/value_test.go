package value

import "testing"

func TestPrintAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{MakeNumber(Int64(5)), "5"},
		{StringValue{Text: "hi\n"}, `"hi\n"`},
		{True, "#t"},
		{False, "#f"},
		{Sym("foo"), "foo"},
		{Nil, "()"},
		{Void, ""},
	}
	for _, c := range cases {
		if got := Print(c.v); got != c.want {
			t.Errorf("Print(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	if IsTruthy(False) {
		t.Error("#f should be falsy")
	}
	if !IsTruthy(Nil) {
		t.Error("() should be truthy")
	}
	if !IsTruthy(MakeNumber(Int64(0))) {
		t.Error("0 should be truthy")
	}
}

func TestListPrinting(t *testing.T) {
	l := List(MakeNumber(Int64(1)), MakeNumber(Int64(2)), MakeNumber(Int64(3)))
	if got := Print(l); got != "(1 2 3)" {
		t.Errorf("got %q", got)
	}
}

func TestDottedPairPrinting(t *testing.T) {
	p := Cons(MakeNumber(Int64(1)), MakeNumber(Int64(2)))
	if got := Print(p); got != "(1 . 2)" {
		t.Errorf("got %q", got)
	}
}

func TestListWithTailPrinting(t *testing.T) {
	l := ListWithTail([]Value{MakeNumber(Int64(1)), MakeNumber(Int64(2))}, MakeNumber(Int64(3)))
	if got := Print(l); got != "(1 2 . 3)" {
		t.Errorf("got %q", got)
	}
}

func TestToSliceAndLength(t *testing.T) {
	l := List(MakeNumber(Int64(1)), MakeNumber(Int64(2)))
	items, tail := ToSlice(l)
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if _, ok := tail.(NilValue); !ok {
		t.Fatalf("expected proper list tail, got %#v", tail)
	}
	n, ok := Length(l)
	if !ok || n != 2 {
		t.Fatalf("Length = %d, %v", n, ok)
	}

	improper := Cons(MakeNumber(Int64(1)), MakeNumber(Int64(2)))
	if _, ok := Length(improper); ok {
		t.Fatal("Length should reject an improper list")
	}
}

func TestVectorPrinting(t *testing.T) {
	v := VectorValue{Items: []Value{MakeNumber(Int64(1)), True}}
	if got := Print(v); got != "#(1 #t)" {
		t.Errorf("got %q", got)
	}
}

func TestEnvironmentLookupAndShadowing(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", MakeNumber(Int64(1)))
	child := NewChildEnvironment(root)
	child.Define("x", MakeNumber(Int64(2)))

	v, ok := child.Lookup("x")
	if !ok || v.(NumberValue).N.Int != 2 {
		t.Fatalf("expected shadowed binding, got %#v, %v", v, ok)
	}
	rv, ok := root.Lookup("x")
	if !ok || rv.(NumberValue).N.Int != 1 {
		t.Fatalf("expected outer binding unaffected, got %#v, %v", rv, ok)
	}
}

func TestEnvironmentSetWalksChain(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", MakeNumber(Int64(1)))
	child := NewChildEnvironment(root)

	if err := child.Set("x", MakeNumber(Int64(9))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := root.Lookup("x")
	if v.(NumberValue).N.Int != 9 {
		t.Fatalf("expected root binding mutated, got %#v", v)
	}

	if err := child.Set("undefined", Void); err == nil {
		t.Fatal("expected error setting an unbound name")
	}
}

package builtins

import (
	"bytes"
	"sort"
	"testing"

	"github.com/maruel/natural"

	"github.com/cwbudde/goscm/internal/canvas"
	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/parser"
	"github.com/cwbudde/goscm/internal/value"
)

func newTestEnv(out *bytes.Buffer) *value.Environment {
	env := value.NewEnvironment()
	Register(env, nil, out)
	return env
}

func run(t *testing.T, env *value.Environment, src string) value.Value {
	t.Helper()
	forms, err := parser.Parse(src, "")
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	var last value.Value = value.Void
	for _, form := range forms {
		v, err := eval.Eval(form, env)
		if err != nil {
			t.Fatalf("Eval(%q): unexpected error: %v", src, err)
		}
		last = v
	}
	return last
}

func runErr(t *testing.T, env *value.Environment, src string) error {
	t.Helper()
	forms, err := parser.Parse(src, "")
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	for _, form := range forms {
		if _, err := eval.Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}

func TestArithmeticBuiltins(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	cases := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(- 10 3 2)", "5"},
		{"(* 2 3 4)", "24"},
		{"(/ 10 2)", "5"},
		{"(abs -5)", "5"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		{"(quotient 7 2)", "3"},
		{"(remainder 7 2)", "1"},
		{"(modulo -7 2)", "1"},
		{"(expt 2 10)", "1024"},
		{"(= 1 1 1)", "#t"},
		{"(< 1 2 3)", "#t"},
		{"(> 3 2 1)", "#t"},
	}
	for _, c := range cases {
		if got := value.Print(run(t, env, c.src)); got != c.want {
			t.Errorf("%s = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	if err := runErr(t, env, "(/ 1 0)"); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestPairsAndLists(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	cases := []struct{ src, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
		{"(pair? (cons 1 2))", "#t"},
		{"(null? '())", "#t"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list? (list 1 2))", "#t"},
		{"(length (list 1 2 3))", "3"},
		{"(append (list 1 2) (list 3 4))", "(1 2 3 4)"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
		{"(list-ref (list 1 2 3) 1)", "2"},
		{"(list-tail (list 1 2 3) 1)", "(2 3)"},
		{"(map (lambda (x) (* x x)) (list 1 2 3))", "(1 4 9)"},
	}
	for _, c := range cases {
		if got := value.Print(run(t, env, c.src)); got != c.want {
			t.Errorf("%s = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestForEachSideEffect(t *testing.T) {
	var out bytes.Buffer
	env := newTestEnv(&out)
	run(t, env, "(for-each (lambda (x) (display x)) (list 1 2 3))")
	if out.String() != "123" {
		t.Fatalf("got %q", out.String())
	}
}

func TestPredicates(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	cases := []struct{ src, want string }{
		{"(number? 1)", "#t"},
		{"(number? 'a)", "#f"},
		{"(integer? 1)", "#t"},
		{"(integer? 1.5)", "#f"},
		{"(symbol? 'a)", "#t"},
		{"(string? \"a\")", "#t"},
		{"(boolean? #t)", "#t"},
		{"(procedure? car)", "#t"},
		{"(vector? (vector 1 2))", "#t"},
		{"(eq? 'a 'a)", "#t"},
		{"(eqv? 1 1)", "#t"},
		{"(equal? (list 1 2) (list 1 2))", "#t"},
		{"(eq? (list 1 2) (list 1 2))", "#f"},
	}
	for _, c := range cases {
		if got := value.Print(run(t, env, c.src)); got != c.want {
			t.Errorf("%s = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestStrings(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	cases := []struct{ src, want string }{
		{`(string-length "hello")`, "5"},
		{`(string-ref "hello" 1)`, `"e"`},
		{`(substring "hello" 1 3)`, `"el"`},
		{`(string-append "foo" "bar")`, `"foobar"`},
		{`(string->symbol "foo")`, "foo"},
		{`(symbol->string 'foo)`, `"foo"`},
	}
	for _, c := range cases {
		if got := value.Print(run(t, env, c.src)); got != c.want {
			t.Errorf("%s = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestVectors(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	cases := []struct{ src, want string }{
		{"(vector 1 2 3)", "#(1 2 3)"},
		{"(vector-length (vector 1 2 3))", "3"},
		{"(vector-ref (vector 1 2 3) 1)", "2"},
		{"(vector->list (vector 1 2 3))", "(1 2 3)"},
		{"(list->vector (list 1 2 3))", "#(1 2 3)"},
	}
	for _, c := range cases {
		if got := value.Print(run(t, env, c.src)); got != c.want {
			t.Errorf("%s = %q, want %q", c.src, got, c.want)
		}
	}
	run(t, env, "(define v (make-vector 3 0)) (vector-set! v 1 9)")
	if got := value.Print(run(t, env, "v")); got != "#(0 9 0)" {
		t.Fatalf("got %q", got)
	}
}

func TestNotAndForce(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	if got := value.Print(run(t, env, "(not #f)")); got != "#t" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(run(t, env, "(not 1)")); got != "#f" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(run(t, env, "(force (delay (+ 1 2)))")); got != "3" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayAndNewline(t *testing.T) {
	var out bytes.Buffer
	env := newTestEnv(&out)
	run(t, env, `(display "hi") (newline) (display 42)`)
	if out.String() != "hi\n42" {
		t.Fatalf("got %q", out.String())
	}
}

func newGraphicsTestEnv(out *bytes.Buffer) *value.Environment {
	env := value.NewEnvironment()
	Register(env, canvas.New(), out)
	return env
}

func TestGraphicsCanonicalNames(t *testing.T) {
	env := newGraphicsTestEnv(&bytes.Buffer{})
	run(t, env, "(forward 10) (right 90) (backward 5) (left 45)")
	run(t, env, "(setposition 1 2) (setheading 30)")
	if got := value.Print(run(t, env, "(position)")); got != "(1.0 . 2.0)" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(run(t, env, "(heading)")); got != "30.0" {
		t.Fatalf("got %q", got)
	}
	run(t, env, "(begin-fill) (end-fill) (penup) (pendown) (reset)")
	run(t, env, "(showturtle)")
	if got := value.Print(run(t, env, "(visible?)")); got != "#t" {
		t.Fatalf("got %q", got)
	}
	run(t, env, "(hideturtle)")
	if got := value.Print(run(t, env, "(visible?)")); got != "#f" {
		t.Fatalf("got %q", got)
	}
}

func TestGraphicsAliasNames(t *testing.T) {
	env := newGraphicsTestEnv(&bytes.Buffer{})
	run(t, env, "(fd 10) (bk 5) (back 5) (rt 90) (lt 45)")
	run(t, env, "(setpos 1 2) (goto 3 4) (seth 10)")
	if got := value.Print(run(t, env, "(pos)")); got != "(3.0 . 4.0)" {
		t.Fatalf("got %q", got)
	}
	run(t, env, "(pu) (up) (pd) (down)")
	run(t, env, "(st)")
	if got := value.Print(run(t, env, "(visible?)")); got != "#t" {
		t.Fatalf("got %q", got)
	}
	run(t, env, "(ht)")
	if got := value.Print(run(t, env, "(visible?)")); got != "#f" {
		t.Fatalf("got %q", got)
	}
}

func TestGraphicsAbsentCanvasFailsGracefully(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	if err := runErr(t, env, "(forward 10)"); err == nil {
		t.Fatal("expected an error binding graphics against a nil canvas")
	}
}

func TestRegistryNamesAreSortedAndFilterable(t *testing.T) {
	env := newTestEnv(&bytes.Buffer{})
	names := Names(env)
	if len(names) == 0 {
		t.Fatal("expected at least one registered procedure name")
	}
	if !sort.SliceIsSorted(names, func(i, j int) bool { return natural.Less(names[i], names[j]) }) {
		t.Errorf("Names returned an unsorted list: %v", names)
	}
	matches := Match(names, "string*")
	for _, m := range matches {
		if len(m) < 6 || m[:6] != "string" {
			t.Errorf("Match(%q) returned non-matching name %q", "string*", m)
		}
	}
}

package eval_test

import (
	"io"
	"testing"

	"github.com/cwbudde/goscm/internal/builtins"
	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/parser"
	"github.com/cwbudde/goscm/internal/value"
)

func evalSrc(t *testing.T, src string) value.Value {
	t.Helper()
	forms, err := parser.Parse(src, "")
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	env := value.NewEnvironment()
	builtins.Register(env, nil, io.Discard)
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

func evalSrcErr(t *testing.T, src string) error {
	t.Helper()
	forms, err := parser.Parse(src, "")
	if err != nil {
		return err
	}
	env := value.NewEnvironment()
	builtins.Register(env, nil, io.Discard)
	for _, form := range forms {
		if _, err := eval.Eval(form, env); err != nil {
			return err
		}
	}
	return nil
}

func TestEvalSelfEvaluating(t *testing.T) {
	if got := value.Print(evalSrc(t, "42")); got != "42" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalQuote(t *testing.T) {
	if got := value.Print(evalSrc(t, "(quote (1 2 3))")); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(evalSrc(t, "'(1 2 3)")); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalIf(t *testing.T) {
	if got := value.Print(evalSrc(t, "(if #t 1 2)")); got != "1" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(evalSrc(t, "(if #f 1 2)")); got != "2" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(evalSrc(t, "(if #f 1)")); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalDefineAndLookup(t *testing.T) {
	if got := value.Print(evalSrc(t, "(define x 10) x")); got != "10" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalLambdaAndApply(t *testing.T) {
	src := "(define (square x) (* x x)) (square 6)"
	if got := value.Print(evalSrc(t, src)); got != "36" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalClosureCapture(t *testing.T) {
	src := `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)
	`
	if got := value.Print(evalSrc(t, src)); got != "15" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalSetBang(t *testing.T) {
	src := "(define x 1) (set! x 2) x"
	if got := value.Print(evalSrc(t, src)); got != "2" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalLet(t *testing.T) {
	if got := value.Print(evalSrc(t, "(let ((x 1) (y 2)) (+ x y))")); got != "3" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalLetStarSequential(t *testing.T) {
	if got := value.Print(evalSrc(t, "(let* ((x 1) (y (+ x 1))) y)")); got != "2" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalLetrecMutualRecursion(t *testing.T) {
	src := `
		(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
		         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
		  (even? 10))
	`
	if got := value.Print(evalSrc(t, src)); got != "#t" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalNamedLetTailRecursion(t *testing.T) {
	src := `
		(let loop ((i 0) (acc 0))
		  (if (= i 100000)
		      acc
		      (loop (+ i 1) (+ acc i))))
	`
	if got := value.Print(evalSrc(t, src)); got != "4999950000" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalCond(t *testing.T) {
	src := `(cond (#f 1) (#t 2) (else 3))`
	if got := value.Print(evalSrc(t, src)); got != "2" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalCase(t *testing.T) {
	src := `(case 2 ((1) 'one) ((2 3) 'two-or-three) (else 'other))`
	if got := value.Print(evalSrc(t, src)); got != "two-or-three" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalAndOr(t *testing.T) {
	if got := value.Print(evalSrc(t, "(and 1 2 3)")); got != "3" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(evalSrc(t, "(and 1 #f 3)")); got != "#f" {
		t.Fatalf("got %q", got)
	}
	if got := value.Print(evalSrc(t, "(or #f #f 5)")); got != "5" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalDo(t *testing.T) {
	src := `(do ((i 0 (+ i 1)) (sum 0 (+ sum i))) ((= i 5) sum))`
	if got := value.Print(evalSrc(t, src)); got != "10" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalQuasiquote(t *testing.T) {
	src := "(define x 5) `(a ,x ,@(list 1 2) b)"
	if got := value.Print(evalSrc(t, src)); got != "(a 5 1 2 b)" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalVariadicLambda(t *testing.T) {
	src := "(define (f . args) args) (f 1 2 3)"
	if got := value.Print(evalSrc(t, src)); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalUnknownIdentifier(t *testing.T) {
	if err := evalSrcErr(t, "undefined-name"); err == nil {
		t.Fatal("expected an unknown-identifier error")
	}
}

func TestEvalNotAProcedure(t *testing.T) {
	if err := evalSrcErr(t, "(1 2 3)"); err == nil {
		t.Fatal("expected a not-a-procedure error")
	}
}

func TestEvalArityMismatch(t *testing.T) {
	if err := evalSrcErr(t, "(define (f x y) (+ x y)) (f 1)"); err == nil {
		t.Fatal("expected an arity error")
	}
}

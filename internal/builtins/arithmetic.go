// Package builtins registers the standard procedures spec.md §5 lists
// (arithmetic, pairs, predicates, strings, vectors, control) plus the
// turtle-graphics procedures in graphics.go, grounded on
// original_source/src/builtin/*.rs for argument order and error
// behavior, adapted to Go's []value.Value/error calling convention.
package builtins

import (
	"math"

	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

func numberArg(name string, args []value.Value, i int) (value.Num, error) {
	n, ok := args[i].(value.NumberValue)
	if !ok {
		return value.Num{}, diagnostics.NotATypeError(value.Print(args[i]), "number")
	}
	return n.N, nil
}

func numbers(name string, args []value.Value) ([]value.Num, error) {
	out := make([]value.Num, len(args))
	for i := range args {
		n, err := numberArg(name, args, i)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// add implements `+`, folding left over its arguments from exact zero
// (original_source/src/builtin/math.rs ADD).
func add(args []value.Value) (value.Value, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := value.Int64(0)
	for _, n := range nums {
		sum = value.Add(sum, n)
	}
	return value.MakeNumber(sum), nil
}

// sub implements `-`: unary negation with one argument, left fold with
// more than one.
func sub(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("-", 1, -1, len(args)); err != nil {
		return nil, err
	}
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return value.MakeNumber(value.Neg(nums[0])), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = value.Sub(acc, n)
	}
	return value.MakeNumber(acc), nil
}

func mul(args []value.Value) (value.Value, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	prod := value.Int64(1)
	for _, n := range nums {
		prod = value.Mul(prod, n)
	}
	return value.MakeNumber(prod), nil
}

// div implements `/`: reciprocal with one argument, left fold with more
// than one. A zero divisor at any step signals ZeroDivisorError
// regardless of operand kind (spec.md §4.1).
func div(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("/", 1, -1, len(args)); err != nil {
		return nil, err
	}
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		if nums[0].IsZero() {
			return nil, diagnostics.ZeroDivisorError()
		}
		return value.MakeNumber(value.Div(value.Int64(1), nums[0])), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if n.IsZero() {
			return nil, diagnostics.ZeroDivisorError()
		}
		acc = value.Div(acc, n)
	}
	return value.MakeNumber(acc), nil
}

func compareChain(name string, args []value.Value, ok func(a, b value.Num) bool) (value.Value, error) {
	if err := diagnostics.ArityError(name, 1, -1, len(args)); err != nil {
		return nil, err
	}
	nums, err := numbers(name, args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(nums); i++ {
		if !ok(nums[i-1], nums[i]) {
			return value.False, nil
		}
	}
	return value.True, nil
}

func numEqual(args []value.Value) (value.Value, error) {
	return compareChain("=", args, value.Equal)
}

func numLess(args []value.Value) (value.Value, error) {
	return compareChain("<", args, func(a, b value.Num) bool {
		return a.IsReal() && b.IsReal() && value.Less(a, b)
	})
}

func numLessEqual(args []value.Value) (value.Value, error) {
	return compareChain("<=", args, func(a, b value.Num) bool {
		return a.IsReal() && b.IsReal() && value.LessEqual(a, b)
	})
}

func numGreater(args []value.Value) (value.Value, error) {
	return compareChain(">", args, func(a, b value.Num) bool {
		return a.IsReal() && b.IsReal() && value.Less(b, a)
	})
}

func numGreaterEqual(args []value.Value) (value.Value, error) {
	return compareChain(">=", args, func(a, b value.Num) bool {
		return a.IsReal() && b.IsReal() && value.LessEqual(b, a)
	})
}

func abs(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("abs", 1, 1, len(args)); err != nil {
		return nil, err
	}
	n, err := numberArg("abs", args, 0)
	if err != nil {
		return nil, err
	}
	if value.Less(n, value.Int64(0)) {
		return value.MakeNumber(value.Neg(n)), nil
	}
	return value.MakeNumber(n), nil
}

func minMax(name string, args []value.Value, pick func(a, b value.Num) bool) (value.Value, error) {
	if err := diagnostics.ArityError(name, 1, -1, len(args)); err != nil {
		return nil, err
	}
	nums, err := numbers(name, args)
	if err != nil {
		return nil, err
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if pick(n, best) {
			best = n
		}
	}
	return value.MakeNumber(best), nil
}

func minProc(args []value.Value) (value.Value, error) {
	return minMax("min", args, value.Less)
}

func maxProc(args []value.Value) (value.Value, error) {
	return minMax("max", args, func(a, b value.Num) bool { return value.Less(b, a) })
}

// quotient, remainder, and modulo are defined on exact integers per
// spec.md §4.1; remainder follows Go's truncating `%`, and modulo
// additionally corrects the sign to match the divisor.
func quotient(args []value.Value) (value.Value, error) {
	a, b, err := intPair("quotient", args)
	if err != nil {
		return nil, err
	}
	return value.MakeNumber(value.Int64(a / b)), nil
}

func remainder(args []value.Value) (value.Value, error) {
	a, b, err := intPair("remainder", args)
	if err != nil {
		return nil, err
	}
	return value.MakeNumber(value.Int64(a % b)), nil
}

func modulo(args []value.Value) (value.Value, error) {
	a, b, err := intPair("modulo", args)
	if err != nil {
		return nil, err
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return value.MakeNumber(value.Int64(m)), nil
}

func intPair(name string, args []value.Value) (int64, int64, error) {
	if err := diagnostics.ArityError(name, 2, 2, len(args)); err != nil {
		return 0, 0, err
	}
	a, err := numberArg(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := numberArg(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	if a.Kind != value.KindInteger || b.Kind != value.KindInteger {
		return 0, 0, diagnostics.NotATypeError(name, "integer")
	}
	if b.Int == 0 {
		return 0, 0, diagnostics.ZeroDivisorError()
	}
	return a.Int, b.Int, nil
}

func expt(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("expt", 2, 2, len(args)); err != nil {
		return nil, err
	}
	base, err := numberArg("expt", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := numberArg("expt", args, 1)
	if err != nil {
		return nil, err
	}
	if base.Kind == value.KindInteger && exp.Kind == value.KindInteger && exp.Int >= 0 {
		acc := int64(1)
		for i := int64(0); i < exp.Int; i++ {
			acc *= base.Int
		}
		return value.MakeNumber(value.Int64(acc)), nil
	}
	return value.MakeNumber(value.Real(math.Pow(base.AsFloat(), exp.AsFloat()))), nil
}

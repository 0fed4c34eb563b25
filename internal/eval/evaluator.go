// Package eval implements the tree-walking evaluator described in
// spec.md §4.4 and §9: special-form dispatch, procedure application, and
// a trampoline that turns tail calls into a loop instead of Go stack
// recursion. Grounded on original_source/src/evaluator.rs's eval/apply
// split, adapted to Go's explicit-error-return idiom in place of Rust's
// Result<Value, EvalError>.
package eval

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

// Eval evaluates v in env and returns its value, fully resolving any tail
// calls via the trampoline in trampoline.go before returning.
func Eval(v value.Value, env *value.Environment) (value.Value, error) {
	result, err := eval(v, env, true)
	if err != nil {
		return nil, err
	}
	return run(result)
}

// eval is the core dispatch. tail reports whether v sits in a tail
// position (spec.md §9): when true, a procedure application resolves to
// a *value.ThunkValue instead of recursing, so Eval's trampoline can
// re-enter the loop in constant Go stack space.
func eval(v value.Value, env *value.Environment, tail bool) (value.Value, error) {
	switch v := v.(type) {
	case value.SymbolValue:
		val, ok := env.Lookup(v.Name)
		if !ok {
			return nil, diagnostics.NewUnknownIdentifierError(v.Name)
		}
		return val, nil
	case *value.PairValue:
		if sym, ok := v.Car.(value.SymbolValue); ok {
			if form, ok := specialForms[sym.Name]; ok {
				return form(v.Cdr, env, tail)
			}
		}
		proc, err := eval(v.Car, env, false)
		if err != nil {
			return nil, err
		}
		args, err := evalList(v.Cdr, env)
		if err != nil {
			return nil, err
		}
		return Apply(proc, args, tail)
	default:
		// Numbers, strings, booleans, vectors, the empty list, and void
		// are self-evaluating (spec.md §3).
		return v, nil
	}
}

// evalList evaluates each element of an unevaluated operand list, none
// of them in tail position.
func evalList(v value.Value, env *value.Environment) ([]value.Value, error) {
	items, tail := value.ToSlice(v)
	if _, ok := tail.(value.NilValue); !ok {
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("improper argument list"))
	}
	out := make([]value.Value, len(items))
	for i, item := range items {
		val, err := eval(item, env, false)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// evalBody evaluates a procedure or let-family body (spec.md §4.4
// "sequence of body forms evaluated with begin semantics"): every form
// but the last is evaluated for effect, and the last is evaluated in
// whatever tail position the caller is in.
//
// When tail is true, the last form is handed back unevaluated as a
// *value.ThunkValue rather than passed to eval directly: the Go call
// evaluating this body returns immediately, and it's the trampoline in
// trampoline.go that performs the actual evaluation on its next
// iteration. Evaluating it here instead would recurse straight through
// eval→Apply→evalBody for every tail call in a loop, defeating the
// trampoline the same way ordinary recursion would.
func evalBody(body []value.Value, env *value.Environment, tail bool) (value.Value, error) {
	if len(body) == 0 {
		return value.Void, nil
	}
	for _, form := range body[:len(body)-1] {
		if _, err := eval(form, env, false); err != nil {
			return nil, err
		}
	}
	last := body[len(body)-1]
	if tail {
		return &value.ThunkValue{Expr: last, Env: env}, nil
	}
	return eval(last, env, false)
}

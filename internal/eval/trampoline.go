package eval

import "github.com/cwbudde/goscm/internal/value"

// run drives the tail-call trampoline (spec.md §9): as long as eval
// returns a *value.ThunkValue, re-enter eval on its captured
// (expression, environment) pair instead of growing the Go call stack,
// so tail-recursive Scheme procedures run in constant stack space.
func run(v value.Value) (value.Value, error) {
	for {
		thunk, ok := v.(*value.ThunkValue)
		if !ok {
			return v, nil
		}
		next, err := eval(thunk.Expr, thunk.Env, true)
		if err != nil {
			return nil, err
		}
		v = next
	}
}

package builtins

import (
	"fmt"
	"io"

	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/value"
)

func not(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("not", 1, 1, len(args)); err != nil {
		return nil, err
	}
	return value.Bool(!value.IsTruthy(args[0])), nil
}

// display writes a string's raw text (no quotes, no escapes) and any
// other Value's printed representation; out is bound at registration
// time to the session's configured writer (spec.md §5
// `display`/`newline`).
func display(out io.Writer) value.BuiltinFunc {
	return func(args []value.Value) (value.Value, error) {
		if err := diagnostics.ArityError("display", 1, 1, len(args)); err != nil {
			return nil, err
		}
		if s, ok := args[0].(value.StringValue); ok {
			fmt.Fprint(out, s.Text)
		} else {
			fmt.Fprint(out, value.Print(args[0]))
		}
		return value.Void, nil
	}
}

func newline(out io.Writer) value.BuiltinFunc {
	return func(args []value.Value) (value.Value, error) {
		if err := diagnostics.ArityError("newline", 0, 0, len(args)); err != nil {
			return nil, err
		}
		fmt.Fprintln(out)
		return value.Void, nil
	}
}

// force evaluates a delay'd promise the first time it's forced and
// caches the result for every subsequent force (spec.md §4.4 `delay`,
// Open Question decision in SPEC_FULL.md §4: memoize on first force).
func force(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("force", 1, 1, len(args)); err != nil {
		return nil, err
	}
	p, ok := args[0].(*value.PromiseValue)
	if !ok {
		return args[0], nil
	}
	if !p.Forced {
		v, err := eval.Eval(p.Expr, p.Env)
		if err != nil {
			return nil, err
		}
		p.Cached = v
		p.Forced = true
	}
	return p.Cached, nil
}

package builtins

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

func pairArg(name string, args []value.Value, i int) (*value.PairValue, error) {
	p, ok := args[i].(*value.PairValue)
	if !ok {
		return nil, diagnostics.NotATypeError(value.Print(args[i]), "pair")
	}
	return p, nil
}

func cons(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("cons", 2, 2, len(args)); err != nil {
		return nil, err
	}
	return value.Cons(args[0], args[1]), nil
}

func car(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("car", 1, 1, len(args)); err != nil {
		return nil, err
	}
	p, err := pairArg("car", args, 0)
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

func cdr(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("cdr", 1, 1, len(args)); err != nil {
		return nil, err
	}
	p, err := pairArg("cdr", args, 0)
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}

func isPair(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("pair?", 1, 1, len(args)); err != nil {
		return nil, err
	}
	_, ok := args[0].(*value.PairValue)
	return value.Bool(ok), nil
}

func isNull(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("null?", 1, 1, len(args)); err != nil {
		return nil, err
	}
	_, ok := args[0].(value.NilValue)
	return value.Bool(ok), nil
}

func listProc(args []value.Value) (value.Value, error) {
	return value.List(args...), nil
}

func isListProc(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("list?", 1, 1, len(args)); err != nil {
		return nil, err
	}
	return value.Bool(value.IsList(args[0])), nil
}

func length(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("length", 1, 1, len(args)); err != nil {
		return nil, err
	}
	n, ok := value.Length(args[0])
	if !ok {
		return nil, diagnostics.NotATypeError(value.Print(args[0]), "list")
	}
	return value.MakeNumber(value.Int64(int64(n))), nil
}

func appendProc(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Nil, nil
	}
	var items []value.Value
	for _, a := range args[:len(args)-1] {
		elems, tail := value.ToSlice(a)
		if _, ok := tail.(value.NilValue); !ok {
			return nil, diagnostics.NotATypeError(value.Print(a), "list")
		}
		items = append(items, elems...)
	}
	return value.ListWithTail(items, args[len(args)-1]), nil
}

func reverse(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("reverse", 1, 1, len(args)); err != nil {
		return nil, err
	}
	items, tail := value.ToSlice(args[0])
	if _, ok := tail.(value.NilValue); !ok {
		return nil, diagnostics.NotATypeError(value.Print(args[0]), "list")
	}
	reversed := make([]value.Value, len(items))
	for i, v := range items {
		reversed[len(items)-1-i] = v
	}
	return value.List(reversed...), nil
}

func listRef(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("list-ref", 2, 2, len(args)); err != nil {
		return nil, err
	}
	items, _ := value.ToSlice(args[0])
	idx, err := intIndex("list-ref", args, 1, len(items))
	if err != nil {
		return nil, err
	}
	return items[idx], nil
}

func listTail(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("list-tail", 2, 2, len(args)); err != nil {
		return nil, err
	}
	v := args[0]
	k, err := numberArg("list-tail", args, 1)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < k.Int; i++ {
		p, ok := v.(*value.PairValue)
		if !ok {
			return nil, diagnostics.NotATypeError(value.Print(args[0]), "list")
		}
		v = p.Cdr
	}
	return v, nil
}

func intIndex(name string, args []value.Value, i, length int) (int64, error) {
	n, err := numberArg(name, args, i)
	if err != nil {
		return 0, err
	}
	if n.Kind != value.KindInteger || n.Int < 0 || int(n.Int) >= length {
		return 0, diagnostics.NewApplyError(diagnostics.Invalid("index out of range"))
	}
	return n.Int, nil
}

// mapBuiltin and forEachBuiltin evaluate proc against each argument in
// lock step across one or more lists (spec.md §5 `map`/`for-each`); proc
// is invoked through the applier supplied at registration time, which
// wraps the evaluator's Apply so both builtin and lambda procedures work
// identically.
type applier func(proc value.Value, args []value.Value) (value.Value, error)

func mapBuiltin(apply applier) value.BuiltinFunc {
	return func(args []value.Value) (value.Value, error) {
		if err := diagnostics.ArityError("map", 2, -1, len(args)); err != nil {
			return nil, err
		}
		lists := make([][]value.Value, len(args)-1)
		shortest := -1
		for i, a := range args[1:] {
			items, _ := value.ToSlice(a)
			lists[i] = items
			if shortest < 0 || len(items) < shortest {
				shortest = len(items)
			}
		}
		out := make([]value.Value, shortest)
		for i := 0; i < shortest; i++ {
			callArgs := make([]value.Value, len(lists))
			for j, l := range lists {
				callArgs[j] = l[i]
			}
			v, err := apply(args[0], callArgs)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.List(out...), nil
	}
}

func forEachBuiltin(apply applier) value.BuiltinFunc {
	return func(args []value.Value) (value.Value, error) {
		mapped, err := mapBuiltin(apply)(args)
		if err != nil {
			return nil, err
		}
		_ = mapped
		return value.Void, nil
	}
}

package builtins

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/value"
)

func typePredicate(name string, test func(value.Value) bool) value.BuiltinFunc {
	return func(args []value.Value) (value.Value, error) {
		if err := diagnostics.ArityError(name, 1, 1, len(args)); err != nil {
			return nil, err
		}
		return value.Bool(test(args[0])), nil
	}
}

func isNumber(v value.Value) bool {
	_, ok := v.(value.NumberValue)
	return ok
}

func isInteger(v value.Value) bool {
	n, ok := v.(value.NumberValue)
	return ok && n.N.Kind == value.KindInteger
}

func isReal(v value.Value) bool {
	n, ok := v.(value.NumberValue)
	return ok && n.N.IsReal()
}

func isComplex(v value.Value) bool {
	return isNumber(v)
}

func isSymbol(v value.Value) bool {
	_, ok := v.(value.SymbolValue)
	return ok
}

func isString(v value.Value) bool {
	_, ok := v.(value.StringValue)
	return ok
}

func isBoolean(v value.Value) bool {
	_, ok := v.(value.BooleanValue)
	return ok
}

func isProcedure(v value.Value) bool {
	switch v.(type) {
	case *value.BuiltinProcedure, *value.GraphicProcedure, *value.LambdaProcedure:
		return true
	default:
		return false
	}
}

func isVector(v value.Value) bool {
	_, ok := v.(value.VectorValue)
	return ok
}

func eqProc(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("eq?", 2, 2, len(args)); err != nil {
		return nil, err
	}
	return value.Bool(identical(args[0], args[1])), nil
}

// identical implements eq?: identity for pairs/vectors/procedures,
// value equality for the small immutable atoms (spec.md §5 `eq?`).
func identical(a, b value.Value) bool {
	switch av := a.(type) {
	case *value.PairValue:
		bv, ok := b.(*value.PairValue)
		return ok && av == bv
	case value.VectorValue:
		bv, ok := b.(value.VectorValue)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		if len(av.Items) == 0 {
			return true
		}
		return &av.Items[0] == &bv.Items[0]
	default:
		return eval.Eqv(a, b)
	}
}

func eqvProc(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("eqv?", 2, 2, len(args)); err != nil {
		return nil, err
	}
	return value.Bool(eval.Eqv(args[0], args[1])), nil
}

func equalProc(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("equal?", 2, 2, len(args)); err != nil {
		return nil, err
	}
	return value.Bool(deepEqual(args[0], args[1])), nil
}

// deepEqual implements equal?: structural recursion over pairs and
// vectors, eqv? for everything else (spec.md §5 `equal?`).
func deepEqual(a, b value.Value) bool {
	switch av := a.(type) {
	case *value.PairValue:
		bv, ok := b.(*value.PairValue)
		return ok && deepEqual(av.Car, bv.Car) && deepEqual(av.Cdr, bv.Cdr)
	case value.VectorValue:
		bv, ok := b.(value.VectorValue)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !deepEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return eval.Eqv(a, b)
	}
}

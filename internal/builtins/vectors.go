package builtins

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

func vectorArg(name string, args []value.Value, i int) (value.VectorValue, error) {
	v, ok := args[i].(value.VectorValue)
	if !ok {
		return value.VectorValue{}, diagnostics.NotATypeError(value.Print(args[i]), "vector")
	}
	return v, nil
}

func makeVector(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("make-vector", 1, 2, len(args)); err != nil {
		return nil, err
	}
	n, err := numberArg("make-vector", args, 0)
	if err != nil {
		return nil, err
	}
	fill := value.MakeNumber(value.Int64(0))
	if len(args) == 2 {
		fill = args[1]
	}
	items := make([]value.Value, n.Int)
	for i := range items {
		items[i] = fill
	}
	return value.VectorValue{Items: items}, nil
}

func vectorProc(args []value.Value) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return value.VectorValue{Items: items}, nil
}

func vectorLength(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("vector-length", 1, 1, len(args)); err != nil {
		return nil, err
	}
	v, err := vectorArg("vector-length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.MakeNumber(value.Int64(int64(len(v.Items)))), nil
}

func vectorRef(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("vector-ref", 2, 2, len(args)); err != nil {
		return nil, err
	}
	v, err := vectorArg("vector-ref", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := intIndex("vector-ref", args, 1, len(v.Items))
	if err != nil {
		return nil, err
	}
	return v.Items[idx], nil
}

func vectorSet(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("vector-set!", 3, 3, len(args)); err != nil {
		return nil, err
	}
	v, err := vectorArg("vector-set!", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := intIndex("vector-set!", args, 1, len(v.Items))
	if err != nil {
		return nil, err
	}
	v.Items[idx] = args[2]
	return value.Void, nil
}

func vectorToList(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("vector->list", 1, 1, len(args)); err != nil {
		return nil, err
	}
	v, err := vectorArg("vector->list", args, 0)
	if err != nil {
		return nil, err
	}
	return value.List(v.Items...), nil
}

func listToVector(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("list->vector", 1, 1, len(args)); err != nil {
		return nil, err
	}
	items, tail := value.ToSlice(args[0])
	if _, ok := tail.(value.NilValue); !ok {
		return nil, diagnostics.NotATypeError(value.Print(args[0]), "list")
	}
	return value.VectorValue{Items: items}, nil
}

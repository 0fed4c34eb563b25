package builtins

import (
	"strings"

	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

func stringArg(name string, args []value.Value, i int) (string, error) {
	s, ok := args[i].(value.StringValue)
	if !ok {
		return "", diagnostics.NotATypeError(value.Print(args[i]), "string")
	}
	return s.Text, nil
}

func stringLength(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("string-length", 1, 1, len(args)); err != nil {
		return nil, err
	}
	s, err := stringArg("string-length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.MakeNumber(value.Int64(int64(len([]rune(s))))), nil
}

func stringRef(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("string-ref", 2, 2, len(args)); err != nil {
		return nil, err
	}
	s, err := stringArg("string-ref", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	idx, err := intIndex("string-ref", args, 1, len(runes))
	if err != nil {
		return nil, err
	}
	return value.StringValue{Text: string(runes[idx])}, nil
}

func substring(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("substring", 3, 3, len(args)); err != nil {
		return nil, err
	}
	s, err := stringArg("substring", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	start, err := numberArg("substring", args, 1)
	if err != nil {
		return nil, err
	}
	end, err := numberArg("substring", args, 2)
	if err != nil {
		return nil, err
	}
	if start.Int < 0 || end.Int < start.Int || int(end.Int) > len(runes) {
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("index out of range"))
	}
	return value.StringValue{Text: string(runes[start.Int:end.Int])}, nil
}

func stringAppend(args []value.Value) (value.Value, error) {
	var b strings.Builder
	for i := range args {
		s, err := stringArg("string-append", args, i)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return value.StringValue{Text: b.String()}, nil
}

func stringToSymbol(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("string->symbol", 1, 1, len(args)); err != nil {
		return nil, err
	}
	s, err := stringArg("string->symbol", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Sym(s), nil
}

func symbolToString(args []value.Value) (value.Value, error) {
	if err := diagnostics.ArityError("symbol->string", 1, 1, len(args)); err != nil {
		return nil, err
	}
	sym, ok := args[0].(value.SymbolValue)
	if !ok {
		return nil, diagnostics.NotATypeError(value.Print(args[0]), "symbol")
	}
	return value.StringValue{Text: sym.Name}, nil
}

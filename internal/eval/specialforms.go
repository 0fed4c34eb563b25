package eval

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

// specialForm is the handler signature for a syntactic keyword: args is
// the unevaluated Cdr of the form, i.e. everything after the keyword
// symbol itself.
type specialForm func(args value.Value, env *value.Environment, tail bool) (value.Value, error)

// specialForms is the fixed keyword table spec.md §4.4 names, mirroring
// the dispatch original_source/src/evaluator.rs builds from its
// SpecialForm enum (phf::Map there; an ordinary map suffices here since
// Go has no const-time perfect-hash literal).
var specialForms = map[string]specialForm{
	"quote":            evalQuote,
	"if":               evalIf,
	"define":           evalDefine,
	"set!":             evalSet,
	"lambda":           evalLambda,
	"begin":            evalBegin,
	"let":              evalLet,
	"let*":             evalLetStar,
	"letrec":           evalLetrec,
	"letrec*":          evalLetrec,
	"cond":             evalCond,
	"case":             evalCase,
	"and":              evalAnd,
	"or":               evalOr,
	"when":             evalWhen,
	"unless":           evalUnless,
	"do":               evalDo,
	"delay":            evalDelay,
	"quasiquote":       evalQuasiquote,
	"syntax-rules":     notImplemented("syntax-rules"),
	"let-syntax":       notImplemented("let-syntax"),
	"letrec-syntax":    notImplemented("letrec-syntax"),
}

func notImplemented(name string) specialForm {
	return func(value.Value, *value.Environment, bool) (value.Value, error) {
		return nil, diagnostics.NotImplementedError(name)
	}
}

func listArgs(args value.Value) []value.Value {
	items, _ := value.ToSlice(args)
	return items
}

func evalQuote(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) != 1 {
		return nil, diagnostics.ArityError("quote", 1, 1, len(items))
	}
	return items[0], nil
}

func evalIf(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) != 2 && len(items) != 3 {
		return nil, diagnostics.NewApplyError(diagnostics.MsgWrongArgCount, "if", 2, len(items))
	}
	test, err := eval(items[0], env, false)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(test) {
		return eval(items[1], env, tail)
	}
	if len(items) == 3 {
		return eval(items[2], env, tail)
	}
	return value.Void, nil
}

func evalDefine(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("define", 1, -1, 0)
	}
	switch target := items[0].(type) {
	case value.SymbolValue:
		var initVal value.Value = value.Void
		if len(items) > 1 {
			v, err := eval(items[1], env, false)
			if err != nil {
				return nil, err
			}
			initVal = v
		}
		env.Define(target.Name, initVal)
		return value.Void, nil
	case *value.PairValue:
		name, ok := target.Car.(value.SymbolValue)
		if !ok {
			return nil, diagnostics.NewApplyError(diagnostics.Invalid("define target is not a symbol"))
		}
		params, rest, err := parseFormals(target.Cdr)
		if err != nil {
			return nil, err
		}
		lambda := &value.LambdaProcedure{
			Name:   name.Name,
			Params: params,
			Rest:   rest,
			Body:   items[1:],
			Env:    env,
		}
		env.Define(name.Name, lambda)
		return value.Void, nil
	default:
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("invalid define target"))
	}
}

func evalSet(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) != 2 {
		return nil, diagnostics.ArityError("set!", 2, 2, len(items))
	}
	name, ok := items[0].(value.SymbolValue)
	if !ok {
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("set! target is not a symbol"))
	}
	v, err := eval(items[1], env, false)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name.Name, v); err != nil {
		return nil, diagnostics.NewUnknownIdentifierError(name.Name)
	}
	return value.Void, nil
}

func evalLambda(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("lambda", 1, -1, 0)
	}
	params, rest, err := parseFormals(items[0])
	if err != nil {
		return nil, err
	}
	return &value.LambdaProcedure{Params: params, Rest: rest, Body: items[1:], Env: env}, nil
}

// parseFormals decodes a lambda formals spec: a bare symbol binds every
// argument as a list; a proper list is fixed arity; an improper
// (dotted) list binds its prefix positionally and its tail symbol to the
// residual arguments (spec.md §4.4 `lambda`).
func parseFormals(v value.Value) (params []string, rest string, err error) {
	switch f := v.(type) {
	case value.SymbolValue:
		return nil, f.Name, nil
	case value.NilValue:
		return nil, "", nil
	case *value.PairValue:
		items, tail := value.ToSlice(f)
		for _, item := range items {
			sym, ok := item.(value.SymbolValue)
			if !ok {
				return nil, "", diagnostics.NewApplyError(diagnostics.Invalid("formal is not a symbol"))
			}
			params = append(params, sym.Name)
		}
		switch t := tail.(type) {
		case value.NilValue:
			return params, "", nil
		case value.SymbolValue:
			return params, t.Name, nil
		default:
			return nil, "", diagnostics.NewApplyError(diagnostics.Invalid("invalid formals tail"))
		}
	default:
		return nil, "", diagnostics.NewApplyError(diagnostics.Invalid("invalid formals"))
	}
}

func evalBegin(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	return evalBody(listArgs(args), env, tail)
}

// bindingSpec reads a single "(name init)" let-family binding clause.
func bindingSpec(v value.Value) (name string, initExpr value.Value, err error) {
	items := listArgs(v)
	if len(items) != 2 {
		return "", nil, diagnostics.NewApplyError(diagnostics.Invalid("malformed binding"))
	}
	sym, ok := items[0].(value.SymbolValue)
	if !ok {
		return "", nil, diagnostics.NewApplyError(diagnostics.Invalid("binding name is not a symbol"))
	}
	return sym.Name, items[1], nil
}

func evalLet(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("let", 1, -1, 0)
	}
	// Named let: (let loop ((v init) ...) body ...) desugars to a
	// self-referential lambda (spec.md §4.4 `let`).
	if name, ok := items[0].(value.SymbolValue); ok {
		bindings := listArgs(items[1])
		params := make([]string, len(bindings))
		initVals := make([]value.Value, len(bindings))
		for i, b := range bindings {
			n, initExpr, err := bindingSpec(b)
			if err != nil {
				return nil, err
			}
			v, err := eval(initExpr, env, false)
			if err != nil {
				return nil, err
			}
			params[i] = n
			initVals[i] = v
		}
		loopEnv := value.NewChildEnvironment(env)
		lambda := &value.LambdaProcedure{Name: name.Name, Params: params, Body: items[2:], Env: loopEnv}
		loopEnv.Define(name.Name, lambda)
		return Apply(lambda, initVals, tail)
	}

	bindings := listArgs(items[0])
	child := value.NewChildEnvironment(env)
	for _, b := range bindings {
		n, initExpr, err := bindingSpec(b)
		if err != nil {
			return nil, err
		}
		v, err := eval(initExpr, env, false)
		if err != nil {
			return nil, err
		}
		child.Define(n, v)
	}
	return evalBody(items[1:], child, tail)
}

func evalLetStar(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("let*", 1, -1, 0)
	}
	child := value.NewChildEnvironment(env)
	for _, b := range listArgs(items[0]) {
		n, initExpr, err := bindingSpec(b)
		if err != nil {
			return nil, err
		}
		v, err := eval(initExpr, child, false)
		if err != nil {
			return nil, err
		}
		child = value.NewChildEnvironment(child)
		child.Define(n, v)
	}
	return evalBody(items[1:], child, tail)
}

func evalLetrec(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("letrec", 1, -1, 0)
	}
	bindings := listArgs(items[0])
	child := value.NewChildEnvironment(env)
	names := make([]string, len(bindings))
	inits := make([]value.Value, len(bindings))
	for i, b := range bindings {
		n, initExpr, err := bindingSpec(b)
		if err != nil {
			return nil, err
		}
		names[i] = n
		inits[i] = initExpr
		child.Define(n, value.Void)
	}
	for i, initExpr := range inits {
		v, err := eval(initExpr, child, false)
		if err != nil {
			return nil, err
		}
		child.Define(names[i], v)
	}
	return evalBody(items[1:], child, tail)
}

func evalCond(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	for _, clause := range listArgs(args) {
		parts := listArgs(clause)
		if len(parts) == 0 {
			continue
		}
		if sym, ok := parts[0].(value.SymbolValue); ok && sym.Name == "else" {
			return evalBody(parts[1:], env, tail)
		}
		test, err := eval(parts[0], env, false)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(test) {
			continue
		}
		if len(parts) >= 3 {
			if sym, ok := parts[1].(value.SymbolValue); ok && sym.Name == "=>" {
				proc, err := eval(parts[2], env, false)
				if err != nil {
					return nil, err
				}
				return Apply(proc, []value.Value{test}, tail)
			}
		}
		if len(parts) == 1 {
			return test, nil
		}
		return evalBody(parts[1:], env, tail)
	}
	return value.Void, nil
}

func evalCase(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("case", 1, -1, 0)
	}
	key, err := eval(items[0], env, false)
	if err != nil {
		return nil, err
	}
	for _, clause := range items[1:] {
		parts := listArgs(clause)
		if len(parts) == 0 {
			continue
		}
		if sym, ok := parts[0].(value.SymbolValue); ok && sym.Name == "else" {
			return evalBody(parts[1:], env, tail)
		}
		for _, datum := range listArgs(parts[0]) {
			if Eqv(key, datum) {
				return evalBody(parts[1:], env, tail)
			}
		}
	}
	return value.Void, nil
}

// Eqv implements the eqv? predicate (spec.md §5 `eqv?`), shared between
// `case` clause matching here and internal/builtins' eqv?/equal?:
// numbers compare by mathematical value, symbols/booleans/strings by
// the value they represent, everything else by pointer identity.
func Eqv(a, b value.Value) bool {
	switch av := a.(type) {
	case value.NumberValue:
		bv, ok := b.(value.NumberValue)
		return ok && value.Equal(av.N, bv.N)
	case value.SymbolValue:
		bv, ok := b.(value.SymbolValue)
		return ok && av.Name == bv.Name
	case value.BooleanValue:
		bv, ok := b.(value.BooleanValue)
		return ok && av.B == bv.B
	case value.StringValue:
		bv, ok := b.(value.StringValue)
		return ok && av.Text == bv.Text
	case value.NilValue:
		_, ok := b.(value.NilValue)
		return ok
	case value.VectorValue:
		bv, ok := b.(value.VectorValue)
		return ok && len(av.Items) == len(bv.Items) && (len(av.Items) == 0 || &av.Items[0] == &bv.Items[0])
	default:
		return a == b
	}
}

func evalAnd(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return value.True, nil
	}
	for _, form := range items[:len(items)-1] {
		v, err := eval(form, env, false)
		if err != nil {
			return nil, err
		}
		if !value.IsTruthy(v) {
			return v, nil
		}
	}
	return eval(items[len(items)-1], env, tail)
}

func evalOr(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return value.False, nil
	}
	for _, form := range items[:len(items)-1] {
		v, err := eval(form, env, false)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(v) {
			return v, nil
		}
	}
	return eval(items[len(items)-1], env, tail)
}

func evalWhen(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("when", 1, -1, 0)
	}
	test, err := eval(items[0], env, false)
	if err != nil {
		return nil, err
	}
	if !value.IsTruthy(test) {
		return value.Void, nil
	}
	return evalBody(items[1:], env, tail)
}

func evalUnless(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) == 0 {
		return nil, diagnostics.ArityError("unless", 1, -1, 0)
	}
	test, err := eval(items[0], env, false)
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(test) {
		return value.Void, nil
	}
	return evalBody(items[1:], env, tail)
}

// evalDo implements the iteration form (spec.md §4.4 `do`): each
// variable has an init and an optional step; the test clause's first
// form gates termination and the rest are the result expressions.
func evalDo(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) < 2 {
		return nil, diagnostics.ArityError("do", 2, -1, len(items))
	}
	specs := listArgs(items[0])
	testClause := listArgs(items[1])
	if len(testClause) == 0 {
		return nil, diagnostics.NewApplyError(diagnostics.Invalid("do requires a test clause"))
	}
	body := items[2:]

	names := make([]string, len(specs))
	steps := make([]value.Value, len(specs))
	child := value.NewChildEnvironment(env)
	for i, s := range specs {
		parts := listArgs(s)
		if len(parts) < 2 {
			return nil, diagnostics.NewApplyError(diagnostics.Invalid("malformed do variable spec"))
		}
		sym, ok := parts[0].(value.SymbolValue)
		if !ok {
			return nil, diagnostics.NewApplyError(diagnostics.Invalid("do variable is not a symbol"))
		}
		initVal, err := eval(parts[1], env, false)
		if err != nil {
			return nil, err
		}
		names[i] = sym.Name
		child.Define(sym.Name, initVal)
		if len(parts) >= 3 {
			steps[i] = parts[2]
		} else {
			steps[i] = sym
		}
	}

	for {
		test, err := eval(testClause[0], child, false)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(test) {
			return evalBody(testClause[1:], child, tail)
		}
		for _, form := range body {
			if _, err := eval(form, child, false); err != nil {
				return nil, err
			}
		}
		next := value.NewChildEnvironment(env)
		for i, name := range names {
			v, err := eval(steps[i], child, false)
			if err != nil {
				return nil, err
			}
			next.Define(name, v)
		}
		child = next
	}
}

func evalDelay(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) != 1 {
		return nil, diagnostics.ArityError("delay", 1, 1, len(items))
	}
	return &value.PromiseValue{Expr: items[0], Env: env}, nil
}

func evalQuasiquote(args value.Value, env *value.Environment, tail bool) (value.Value, error) {
	items := listArgs(args)
	if len(items) != 1 {
		return nil, diagnostics.ArityError("quasiquote", 1, 1, len(items))
	}
	return quasiExpand(items[0], env, 1)
}

// quasiExpand walks a quasiquoted template, evaluating unquote/
// unquote-splicing forms at depth 1 and tracking nested quasiquote
// depth so inner quasiquote/unquote pairs pass through literally
// (spec.md §4.4 `quasiquote`).
func quasiExpand(v value.Value, env *value.Environment, depth int) (value.Value, error) {
	pair, ok := v.(*value.PairValue)
	if !ok {
		return v, nil
	}
	if sym, ok := pair.Car.(value.SymbolValue); ok {
		switch sym.Name {
		case "unquote":
			inner := listArgs(pair.Cdr)
			if depth == 1 {
				return eval(inner[0], env, false)
			}
			expanded, err := quasiExpand(inner[0], env, depth-1)
			if err != nil {
				return nil, err
			}
			return value.List(value.Sym("unquote"), expanded), nil
		case "quasiquote":
			inner := listArgs(pair.Cdr)
			expanded, err := quasiExpand(inner[0], env, depth+1)
			if err != nil {
				return nil, err
			}
			return value.List(value.Sym("quasiquote"), expanded), nil
		}
	}

	items, tail := value.ToSlice(pair)
	var out []value.Value
	for _, item := range items {
		if splice, ok := item.(*value.PairValue); ok {
			if sym, ok := splice.Car.(value.SymbolValue); ok && sym.Name == "unquote-splicing" && depth == 1 {
				inner := listArgs(splice.Cdr)
				spliced, err := eval(inner[0], env, false)
				if err != nil {
					return nil, err
				}
				elems, _ := value.ToSlice(spliced)
				out = append(out, elems...)
				continue
			}
		}
		expanded, err := quasiExpand(item, env, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	expandedTail, err := quasiExpand(tail, env, depth)
	if err != nil {
		return nil, err
	}
	return value.ListWithTail(out, expandedTail), nil
}

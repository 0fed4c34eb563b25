package eval

import (
	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/value"
)

// Apply invokes proc with already-evaluated args (spec.md §4.4
// "Procedure application"). tail reports whether the call itself sits in
// a tail position; for a LambdaProcedure this determines whether the
// body's last form is evaluated immediately or deferred as a thunk for
// the trampoline (see evalBody).
func Apply(proc value.Value, args []value.Value, tail bool) (value.Value, error) {
	switch p := proc.(type) {
	case *value.BuiltinProcedure:
		return p.Fn(args)
	case *value.GraphicProcedure:
		return p.Fn(args, p.Canvas)
	case *value.LambdaProcedure:
		env, err := bindParams(p, args)
		if err != nil {
			return nil, err
		}
		return evalBody(p.Body, env, tail)
	default:
		return nil, diagnostics.NotAProcedureError(value.Print(proc))
	}
}

// bindParams creates the frame a LambdaProcedure call runs in, binding
// its fixed formals positionally and, if it has a rest formal, the
// residual arguments as a list (spec.md §4.4 `lambda`).
func bindParams(p *value.LambdaProcedure, args []value.Value) (*value.Environment, error) {
	name := p.Name
	if name == "" {
		name = "lambda"
	}
	if p.Rest == "" {
		if err := diagnostics.ArityError(name, len(p.Params), len(p.Params), len(args)); err != nil {
			return nil, err
		}
	} else if err := diagnostics.ArityError(name, len(p.Params), -1, len(args)); err != nil {
		return nil, err
	}

	env := value.NewChildEnvironment(p.Env)
	for i, param := range p.Params {
		env.Define(param, args[i])
	}
	if p.Rest != "" {
		env.Define(p.Rest, value.List(args[len(p.Params):]...))
	}
	return env, nil
}

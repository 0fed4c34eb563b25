package value

// BuiltinFunc is the signature every ordinary built-in procedure
// implements: operands have already been evaluated (spec.md §4.4
// "Procedure application" / "Built-in").
type BuiltinFunc func(args []Value) (Value, error)

// BuiltinProcedure wraps a registered Go function as a callable Scheme
// procedure. Name is carried for arity/type error messages and for
// printing (spec.md §6: "#[<name>]").
type BuiltinProcedure struct {
	Name string
	Fn   BuiltinFunc
}

func (p *BuiltinProcedure) Kind() string   { return "procedure" }
func (p *BuiltinProcedure) String() string { return "#[" + p.Name + "]" }

// GraphicFunc is a built-in that additionally receives a handle to the
// shared canvas state (spec.md §4.4 "Graphic"). The handle is passed as
// `any` rather than a concrete *canvas.Canvas to avoid an import cycle
// between this package and internal/canvas; each graphic procedure in
// internal/builtins performs the type assertion when it is called.
type GraphicFunc func(args []Value, canvas any) (Value, error)

// GraphicProcedure wraps a turtle-graphics built-in.
type GraphicProcedure struct {
	Name   string
	Fn     GraphicFunc
	Canvas any
}

func (p *GraphicProcedure) Kind() string   { return "procedure" }
func (p *GraphicProcedure) String() string { return "#[" + p.Name + "]" }

// LambdaProcedure is a user-defined procedure: the frame captured at
// `lambda`-evaluation time (spec.md §3 invariant: "carries exactly the
// frame that was current when the lambda evaluated"), its formals, and
// its body forms evaluated with begin semantics.
type LambdaProcedure struct {
	// Name records the binding name when defined via the
	// `(define (name formals…) body…)` sugar, for error messages and
	// printing (spec.md §4.4 `define`, §6 "#[lambda: name]").
	Name   string
	Params []string
	// Rest is the formal bound to the residual argument list for a
	// `. rest` tail, or "" if the formals are a flat list. A Params of
	// length 0 with Rest set models a single-symbol formal that binds
	// all arguments as a list (spec.md §4.4 `lambda`).
	Rest string
	Body []Value
	Env  *Environment
}

func (p *LambdaProcedure) Kind() string { return "procedure" }
func (p *LambdaProcedure) String() string {
	if p.Name != "" {
		return "#[lambda: " + p.Name + "]"
	}
	return "#[lambda]"
}

// PromiseValue is a delayed computation created by `delay` (spec.md §3,
// §4.4). The zero value is never forced; Forced/Cached back the
// memoize-on-first-force Open Question decision recorded in
// SPEC_FULL.md §4.
type PromiseValue struct {
	Expr   Value
	Env    *Environment
	Forced bool
	Cached Value
}

func (p *PromiseValue) Kind() string   { return "promise" }
func (p *PromiseValue) String() string { return "#[promise]" }

// ThunkValue is the tail-call trampoline marker (spec.md §3, §9): an
// unevaluated (expression, environment) pair returned upward from a
// tail-position eval, to be re-entered by the outer eval loop instead of
// recursing. It should never be observed as a normal value — the
// trampoline loop in internal/eval always unwraps it before returning.
type ThunkValue struct {
	Expr Value
	Env  *Environment
}

func (t *ThunkValue) Kind() string   { return "thunk" }
func (t *ThunkValue) String() string { return "" }

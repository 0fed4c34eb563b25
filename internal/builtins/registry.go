package builtins

import (
	"io"
	"sort"

	"github.com/maruel/natural"
	"github.com/tidwall/match"

	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/value"
)

// Register binds every standard procedure spec.md §5 lists into env,
// plus the turtle-graphics procedures bound against canvasHandle (an
// *canvas.Canvas, passed as `any` so internal/value need not import
// internal/canvas — see internal/value/procedure.go). out is where
// `display`/`newline` write.
func Register(env *value.Environment, canvasHandle any, out io.Writer) {
	applyFn := applier(func(proc value.Value, args []value.Value) (value.Value, error) {
		return eval.Apply(proc, args, false)
	})

	for name, fn := range map[string]value.BuiltinFunc{
		"+":              add,
		"-":              sub,
		"*":              mul,
		"/":              div,
		"=":              numEqual,
		"<":              numLess,
		"<=":             numLessEqual,
		">":              numGreater,
		">=":             numGreaterEqual,
		"abs":            abs,
		"min":            minProc,
		"max":            maxProc,
		"quotient":       quotient,
		"remainder":      remainder,
		"modulo":         modulo,
		"expt":           expt,
		"cons":           cons,
		"car":            car,
		"cdr":            cdr,
		"pair?":          isPair,
		"null?":          isNull,
		"list":           listProc,
		"list?":          isListProc,
		"length":         length,
		"append":         appendProc,
		"reverse":        reverse,
		"list-ref":       listRef,
		"list-tail":      listTail,
		"map":            mapBuiltin(applyFn),
		"for-each":       forEachBuiltin(applyFn),
		"number?":        typePredicate("number?", isNumber),
		"integer?":       typePredicate("integer?", isInteger),
		"real?":          typePredicate("real?", isReal),
		"complex?":       typePredicate("complex?", isComplex),
		"symbol?":        typePredicate("symbol?", isSymbol),
		"string?":        typePredicate("string?", isString),
		"boolean?":       typePredicate("boolean?", isBoolean),
		"procedure?":     typePredicate("procedure?", isProcedure),
		"vector?":        typePredicate("vector?", isVector),
		"eq?":            eqProc,
		"eqv?":           eqvProc,
		"equal?":         equalProc,
		"string-length":  stringLength,
		"string-ref":     stringRef,
		"substring":      substring,
		"string-append":  stringAppend,
		"string->symbol": stringToSymbol,
		"symbol->string": symbolToString,
		"make-vector":    makeVector,
		"vector":         vectorProc,
		"vector-length":  vectorLength,
		"vector-ref":     vectorRef,
		"vector-set!":    vectorSet,
		"vector->list":   vectorToList,
		"list->vector":   listToVector,
		"not":            not,
		"force":          force,
		"display":        display(out),
		"newline":        newline(out),
	} {
		env.Define(name, &value.BuiltinProcedure{Name: name, Fn: fn})
	}

	for name, fn := range map[string]value.GraphicFunc{
		"forward":     forward,
		"fd":          forward,
		"backward":    backward,
		"bk":          backward,
		"back":        backward,
		"right":       right,
		"rt":          right,
		"left":        left,
		"lt":          left,
		"setposition": setposition,
		"setpos":      setposition,
		"goto":        setposition,
		"setheading":  setheading,
		"seth":        setheading,
		"position":    position,
		"pos":         position,
		"heading":     heading,
		"begin-fill":  beginFill,
		"end-fill":    endFill,
		"penup":       penup,
		"pu":          penup,
		"up":          penup,
		"pendown":     pendown,
		"pd":          pendown,
		"down":        pendown,
		"reset":       resetCanvas,
		"showturtle":  showTurtle,
		"st":          showTurtle,
		"hideturtle":  hideTurtle,
		"ht":          hideTurtle,
		"visible?":    isVisible,
	} {
		env.Define(name, &value.GraphicProcedure{Name: name, Fn: fn, Canvas: canvasHandle})
	}
}

// Names returns every registered procedure name bound in env's global
// frame, naturally sorted (so "car10" doesn't file before "car2").
func Names(env *value.Environment) []string {
	var names []string
	env.EachLocal(func(name string, v value.Value) {
		if isProcedure(v) {
			names = append(names, name)
		}
	})
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

// Match filters registered procedure names against a glob pattern.
func Match(names []string, pattern string) []string {
	var out []string
	for _, n := range names {
		if match.Match(n, pattern) {
			out = append(out, n)
		}
	}
	return out
}

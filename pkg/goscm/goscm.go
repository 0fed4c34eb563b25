// Package goscm is the embeddable façade over the interpreter: a single
// Interpreter type wires the lexer, parser, evaluator, builtins, and an
// optional canvas together, for callers that want Scheme evaluation
// without touching internal/* directly (mirrors the teacher's pkg/
// dwscript embedding surface).
package goscm

import (
	"bytes"
	"io"

	"github.com/cwbudde/goscm/internal/builtins"
	"github.com/cwbudde/goscm/internal/canvas"
	"github.com/cwbudde/goscm/internal/config"
	"github.com/cwbudde/goscm/internal/eval"
	"github.com/cwbudde/goscm/internal/parser"
	"github.com/cwbudde/goscm/internal/value"
)

// Interpreter is one independent Scheme session: its own global
// environment, its own canvas (if graphics are enabled), and its own
// output sink.
type Interpreter struct {
	env    *value.Environment
	canvas *canvas.Canvas
	out    *bytes.Buffer
	cfg    config.Config
}

// Option configures a new Interpreter.
type Option func(*Interpreter)

// WithConfig seeds the interpreter from a loaded Config instead of
// config.Default().
func WithConfig(cfg config.Config) Option {
	return func(i *Interpreter) { i.cfg = cfg }
}

// New creates an Interpreter with a fresh global environment and, unless
// disabled via config, a canvas bound for the turtle-graphics procedures.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{cfg: config.Default(), out: &bytes.Buffer{}}
	for _, opt := range opts {
		opt(i)
	}
	i.env = value.NewEnvironment()
	var canvasHandle any
	if i.cfg.Graphics {
		i.canvas = canvas.New()
		i.canvas.SetBackground(i.cfg.CanvasBG)
		canvasHandle = i.canvas
	}
	builtins.Register(i.env, canvasHandle, i.out)
	return i
}

// Eval parses and evaluates every top-level form in src, returning the
// printed representation of the last form's value (spec.md §2's
// "evaluate a program" operation) and whatever was written to the
// output port by `display`/`newline` along the way via Drain.
func (i *Interpreter) Eval(src string) (string, error) {
	forms, err := parser.Parse(src, "")
	if err != nil {
		return "", err
	}
	var last value.Value = value.Void
	for _, form := range forms {
		v, err := eval.Eval(form, i.env)
		if err != nil {
			return "", err
		}
		last = v
	}
	return value.Print(last), nil
}

// Drain returns and clears everything written via `display`/`newline`
// since the last Drain call.
func (i *Interpreter) Drain() string {
	s := i.out.String()
	i.out.Reset()
	return s
}

// Output returns the underlying output writer, for embedders that want
// to stream display/newline output instead of draining it in batches.
func (i *Interpreter) Output() io.Writer { return i.out }

// Canvas returns the session's turtle-graphics surface, or nil if
// graphics were disabled via config.
func (i *Interpreter) Canvas() *canvas.Canvas { return i.canvas }

// Env exposes the global environment directly, for embedders that want
// to pre-define host bindings before the first Eval call.
func (i *Interpreter) Env() *value.Environment { return i.env }

package goscm

import (
	"testing"

	"github.com/cwbudde/goscm/internal/config"
)

func TestEvalReturnsLastFormValue(t *testing.T) {
	interp := New()
	got, err := interp.Eval("(define x 10) (+ x 5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "15" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalPersistsStateAcrossCalls(t *testing.T) {
	interp := New()
	if _, err := interp.Eval("(define counter 0)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := interp.Eval("(set! counter (+ counter 1))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := interp.Eval("counter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1" {
		t.Fatalf("got %q", got)
	}
}

func TestDrainCollectsDisplayOutput(t *testing.T) {
	interp := New()
	if _, err := interp.Eval(`(display "hi") (newline)`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := interp.Drain(); got != "hi\n" {
		t.Fatalf("got %q", got)
	}
	if got := interp.Drain(); got != "" {
		t.Fatalf("expected Drain to clear the buffer, got %q", got)
	}
}

func TestEvalPropagatesErrors(t *testing.T) {
	interp := New()
	if _, err := interp.Eval("(undefined-name)"); err == nil {
		t.Fatal("expected an error for an unbound identifier")
	}
}

func TestCanvasPresentWhenGraphicsEnabled(t *testing.T) {
	interp := New(WithConfig(config.Default()))
	if interp.Canvas() == nil {
		t.Fatal("expected a canvas when graphics are enabled by default")
	}
	if _, err := interp.Eval("(forward 10)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCanvasAbsentWhenGraphicsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics = false
	interp := New(WithConfig(cfg))
	if interp.Canvas() != nil {
		t.Fatal("expected no canvas when graphics are disabled")
	}
	// forward is still registered, but with a nil canvas handle: calling
	// it fails the asCanvas type assertion instead of panicking.
	if _, err := interp.Eval("(forward 10)"); err == nil {
		t.Fatal("expected an error calling a graphic procedure with no canvas bound")
	}
}

func TestEnvExposesGlobalBindings(t *testing.T) {
	interp := New()
	if _, ok := interp.Env().Lookup("car"); !ok {
		t.Fatal("expected the global environment to already have builtins registered")
	}
}

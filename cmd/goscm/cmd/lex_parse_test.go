package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLexCommandDumpsTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scm")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := execRoot(t, "lex", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"LPAREN", "IDENT", "NUMBER", "RPAREN"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected lex output to mention %s, got:\n%s", want, out)
		}
	}
}

func TestLexCommandReportsTokenErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.scm")
	if err := os.WriteFile(path, []byte("(a [ b)"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := execRoot(t, "lex", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "Error: invalid character: [" {
		t.Fatalf("expected the catalog wording for an invalid character, got:\n%s", got)
	}
}

func TestParseCommandDumpsDatum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scm")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := execRoot(t, "parse", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("expected a non-empty parse tree dump")
	}
}

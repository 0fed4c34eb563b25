package goscm

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	id := store.Create()

	interp, err := store.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := interp.Eval("(define x 5)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byStr, err := store.GetByString(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := byStr.Eval("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "5" {
		t.Fatalf("got %q, expected the same session's state via GetByString", got)
	}

	store.Close(id)
	if _, err := store.Get(id); err == nil {
		t.Fatal("expected an error looking up a closed session")
	}
}

func TestSessionStoreGetByStringInvalidID(t *testing.T) {
	store := NewSessionStore()
	if _, err := store.GetByString("not-a-uuid"); err == nil {
		t.Fatal("expected an error for a malformed session id")
	}
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	store := NewSessionStore()
	a := store.Create()
	b := store.Create()

	ia, _ := store.Get(a)
	ib, _ := store.Get(b)

	if _, err := ia.Eval("(define x 1)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ib.Eval("x"); err == nil {
		t.Fatal("expected session b to not see session a's bindings")
	}
}

package goscm

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// SessionStore holds multiple independent Interpreters keyed by a
// generated uuid.UUID, for embedders (notably cmd/goscm-wasm) that serve
// more than one REPL session at once from a single process.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Interpreter
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*Interpreter)}
}

// Create starts a new Interpreter and returns the id it was registered
// under.
func (s *SessionStore) Create(opts ...Option) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = New(opts...)
	return id
}

// Get returns the Interpreter for id, or an error if it doesn't exist
// (e.g. was never created or was already Close'd).
func (s *SessionStore) Get(id uuid.UUID) (*Interpreter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("goscm: no session %s", id)
	}
	return i, nil
}

// GetByString parses id and looks up its session, for callers (notably
// cmd/goscm-wasm) that only have the session id as a JS string.
func (s *SessionStore) GetByString(id string) (*Interpreter, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("goscm: invalid session id %q: %w", id, err)
	}
	return s.Get(parsed)
}

// Close discards a session's Interpreter.
func (s *SessionStore) Close(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

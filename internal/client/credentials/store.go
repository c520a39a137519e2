// Package credentials manages the bearer credential of the current client.
//
// A Store holds at most one credential. An absent or empty credential means
// the client is unauthenticated. Set and Clear never fail: durable
// implementations treat persistence as best-effort and keep the in-memory
// value authoritative.
package credentials

import "sync"

// Store is the credential slot the request gateway reads on every call.
type Store interface {
	// Get returns the current credential and whether one is present.
	Get() (string, bool)

	// Set stores the credential, replacing any previous value.
	Set(credential string)

	// Clear removes the credential. Safe to call repeatedly.
	Clear()

	// IsAuthenticated reports whether a non-empty credential is present.
	IsAuthenticated() bool
}

// MemStore keeps the credential in memory only. Used in tests and for
// sessions that should not survive a restart.
type MemStore struct {
	mu    sync.Mutex
	value string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.value != ""
}

func (s *MemStore) Set(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = credential
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
}

func (s *MemStore) IsAuthenticated() bool {
	_, ok := s.Get()
	return ok
}

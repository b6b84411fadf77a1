package session

import "sync"

// memoryStore keeps the token in process memory only. Used by tests and by
// callers that explicitly opt out of persistence.
type memoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates a non-persistent Store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

// Get implements Store.
func (s *memoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.token != ""
}

// Set implements Store.
func (s *memoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	return nil
}

// Clear implements Store.
func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	return nil
}

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"arena/config"

	"github.com/pkg/errors"
)

// sessionFile is the on-disk shape.
type sessionFile struct {
	Token string `json:"token"`
}

// fileStore persists the token as a JSON file under the user's config
// directory, the native-app equivalent of origin-scoped browser storage.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a Store backed by a file resolved from config.
func NewFileStore(cfg *config.Config) (Store, error) {
	dir, err := cfg.SessionDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve session dir")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create session dir")
	}

	return &fileStore{path: filepath.Join(dir, cfg.Session.File)}, nil
}

// Get implements Store.
func (s *fileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	var stored sessionFile
	if err := json.Unmarshal(raw, &stored); err != nil {
		// A corrupted session file is indistinguishable from no session.
		return "", false
	}

	if stored.Token == "" {
		return "", false
	}

	return stored.Token, true
}

// Set implements Store.
func (s *fileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionFile{Token: token})
	if err != nil {
		return errors.Wrap(err, "marshal session file")
	}

	// Write-then-rename keeps a crash from leaving a half-written token.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace session file")
	}

	return nil
}

// Clear implements Store.
func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}

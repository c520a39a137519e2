package credentials

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/easyapt/easyapt-go/internal/logging"
)

// FileStore persists the credential to a file so a login survives process
// restarts. The in-memory copy is authoritative: file I/O errors are logged
// and do not surface to callers, keeping the Store contract (Set and Clear
// never fail).
type FileStore struct {
	mu     sync.Mutex
	value  string
	path   string
	logger logging.Logger
}

// DefaultPath returns the conventional credential file location under the
// user config dir, e.g. ~/.config/easyapt/credentials.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "easyapt", "credentials"), nil
}

// NewFileStore creates a FileStore backed by the file at path and loads any
// previously persisted credential.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	s := &FileStore{path: path, logger: logger.With("component", "credentials")}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(context.Background(), "cannot read credential file", "path", path, "error", err)
		}
		return s
	}
	s.value = strings.TrimSpace(string(data))
	return s
}

func (s *FileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.value != ""
}

func (s *FileStore) Set(credential string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = credential
	s.persist(credential)
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn(context.Background(), "cannot remove credential file", "path", s.path, "error", err)
	}
}

func (s *FileStore) IsAuthenticated() bool {
	_, ok := s.Get()
	return ok
}

// persist writes the credential with owner-only permissions.
// Callers must hold s.mu.
func (s *FileStore) persist(credential string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.logger.Warn(context.Background(), "cannot create credential dir", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(credential), 0o600); err != nil {
		s.logger.Warn(context.Background(), "cannot write credential file", "path", s.path, "error", err)
	}
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"paynet/internal/session/models"
	"paynet/pkg/platform/sentinel"
)

// FileName is the CLI session file inside the session directory.
const FileName = "session.yaml"

// FileKey is the only key the file store holds; the CLI has one session.
const FileKey = "admin_token"

// FileStore persists the CLI session as YAML with the token under the
// admin_token key. It holds a single record, so the key argument is ignored.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFile(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, FileName)}
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, _ string) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("session file: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec models.Record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse session file: %w: %w", sentinel.ErrMalformed, err)
	}
	if rec.Token == "" {
		return nil, fmt.Errorf("session file: %w", sentinel.ErrNotFound)
	}
	return &rec, nil
}

// Save writes the record atomically with owner-only permissions. Expiry is
// enforced by the token's own exp claim, so ttl is not stored.
func (s *FileStore) Save(_ context.Context, _ string, rec models.Record, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close() //nolint:errcheck // already failing
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck // already failing
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

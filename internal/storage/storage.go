// Package storage provides the persistent key-value bridge used by the
// session and time-entry stores. Values are opaque strings; serialization is
// the caller's job. Operations never fail: when the underlying storage is
// unavailable the bridge degrades to a no-op and callers fall back to empty
// state.
package storage

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Canonical persistence keys. The original client read "token" in one module
// and "authToken" in another; every component here goes through this single
// key set.
const (
	KeyUser        = "user"
	KeyToken       = "token"
	KeyTimeEntries = "timeEntries"
)

// Store is the key-value bridge contract. A missing key is reported through
// the boolean, never through an error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// DefaultDir returns the data directory, honoring XDG_CONFIG_HOME.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "timesheet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timesheet")
}

// FileStore keeps one file per key under a directory. Writes are atomic
// (temp file then rename) so a crash never leaves a half-written value.
type FileStore struct {
	dir string
	log *zap.Logger
}

// NewFileStore creates the directory on first use. A nil logger disables
// logging.
func NewFileStore(dir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get returns the stored value, or ("", false) when the key is absent or
// unreadable.
func (s *FileStore) Get(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return string(b), true
}

// Set persists the value. Failures are logged and swallowed; the in-memory
// state of the caller stays authoritative until the next process start.
func (s *FileStore) Set(key, value string) {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		s.log.Warn("storage mkdir failed", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		s.log.Warn("storage write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		s.log.Warn("storage rename failed", zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes the key. Missing keys are not an error.
func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("storage remove failed", zap.String("key", key), zap.Error(err))
	}
}

// MemStore is a map-backed Store for tests and ephemeral sessions.
type MemStore struct {
	m map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) { s.m[key] = value }

func (s *MemStore) Remove(key string) { delete(s.m, key) }

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemStore)(nil)
)

package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

// Persisted storage keys. The trio is the whole durable session state.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRole  = "role"
)

// Storage abstracts the persisted key-value store behind the session so
// the service is testable without touching the filesystem.
type Storage interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool)

	// Set stores a value, replacing any previous one.
	Set(key, value string) error

	// Remove deletes a key. Removing a missing key is not an error.
	Remove(key string) error
}

// FileStorage persists each key as a file under a directory,
// conventionally ~/.dayflow/session. Token material is written 0600.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir, creating
// the directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, dferrors.Wrap(dferrors.ErrCodeSessionStorage, "failed to create session directory", err)
	}
	return &FileStorage{dir: dir}, nil
}

// Get reads a key's value.
func (f *FileStorage) Get(key string) (string, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}

// Set writes a key's value.
func (f *FileStorage) Set(key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return dferrors.Wrap(dferrors.ErrCodeSessionStorage, "failed to persist session key "+key, err)
	}
	return nil
}

// Remove deletes a key; missing keys are ignored.
func (f *FileStorage) Remove(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return dferrors.Wrap(dferrors.ErrCodeSessionStorage, "failed to remove session key "+key, err)
	}
	return nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key)
}

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get returns the stored value and whether the key exists.
func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Remove deletes a key.
func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

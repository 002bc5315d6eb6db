package storage

import (
	"errors"
	"fmt"
	"strings"
)

// TodosKey is the key under which the todo list is persisted
const TodosKey = "todos"

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	ErrEmptyKey       = errors.New("storage key cannot be empty")
	ErrCorruptStore   = errors.New("storage document is not valid JSON")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Store is a string-keyed value store, the terminal counterpart of browser
// local storage. Values are opaque bytes.
type Store interface {
	// Get returns the value stored at key and whether it was present
	Get(key string) ([]byte, bool, error)
	// Set overwrites the value stored at key
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	Close() error
}

// Open creates a store for the named backend
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %s (must be: file or sqlite)", ErrUnknownBackend, backend)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}

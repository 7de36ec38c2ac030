// Package storage is the client-local key-value store that holds the wallet mnemonic.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Storage is a small persistent key-value store.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open opens the backend by name ("file" or "badger") at path.
func Open(backend, path string) (Storage, error) {
	switch backend {
	case "file":
		return OpenFile(path)
	case "badger":
		return OpenBadger(path)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}

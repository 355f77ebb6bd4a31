// Package store persists pre-computed results under string keys.
//
// Two implementations are provided:
//   - Memory: in-process, backed by github.com/patrickmn/go-cache.
//   - Bolt:   on-disk, backed by go.etcd.io/bbolt.
//
// Values are opaque byte slices; callers choose the encoding.
package store

import "errors"

var (
	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("store: key not found")

	// ErrEmptyKey is returned for an empty key.
	ErrEmptyKey = errors.New("store: empty key")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store: closed")
)

// Store provides service for persisting pre-calculated data.
type Store interface {
	// Exists reports whether key is present.
	Exists(key string) (bool, error)

	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Put stores value under key, overwriting any previous value.
	Put(key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

package store

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Memory is an in-process Store. Entries never expire unless a TTL is given.
// Safe for concurrent use.
type Memory struct {
	c *cache.Cache
}

var _ Store = (*Memory)(nil)

// NewMemory returns a Memory store. ttl <= 0 keeps entries until removed;
// otherwise entries expire after ttl and are swept every ttl.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		return &Memory{c: cache.New(cache.NoExpiration, 0)}
	}

	return &Memory{c: cache.New(ttl, ttl)}
}

// Exists implements Store.
func (m *Memory) Exists(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	_, ok := m.c.Get(key)

	return ok, nil
}

// Get implements Store. The returned slice is a copy.
func (m *Memory) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	v, ok := m.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	b := v.([]byte)

	return append([]byte(nil), b...), nil
}

// Put implements Store. value is copied.
func (m *Memory) Put(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.c.Set(key, append([]byte(nil), value...), cache.DefaultExpiration)

	return nil
}

// Remove implements Store.
func (m *Memory) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.c.Delete(key)

	return nil
}

// Len returns the number of live entries.
func (m *Memory) Len() int { return m.c.ItemCount() }

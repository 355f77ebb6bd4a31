package store

import (
	"fmt"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is the bbolt bucket used when none is given.
const DefaultBucket = "results"

// Bolt is an on-disk Store backed by a single bbolt bucket.
// Safe for concurrent use; bbolt serializes writers.
type Bolt struct {
	db     *bolt.DB
	bucket []byte
	closed atomic.Bool
}

var _ Store = (*Bolt)(nil)

// OpenBolt opens (creating if needed) the database at path and ensures the
// bucket exists. An empty bucket name selects DefaultBucket.
func OpenBolt(path, bucket string) (*Bolt, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	name := []byte(bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket %q: %w", bucket, err)
	}

	return &Bolt{db: db, bucket: name}, nil
}

// Exists implements Store.
func (b *Bolt) Exists(key string) (bool, error) {
	if err := b.check(key); err != nil {
		return false, err
	}
	var ok bool
	err := b.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(b.bucket).Get([]byte(key)) != nil
		return nil
	})

	return ok, err
}

// Get implements Store. The returned slice is a copy owned by the caller.
func (b *Bolt) Get(key string) ([]byte, error) {
	if err := b.check(key); err != nil {
		return nil, err
	}
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(b.bucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})

	return out, err
}

// Put implements Store.
func (b *Bolt) Put(key string, value []byte) error {
	if err := b.check(key); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), value)
	})
}

// Remove implements Store.
func (b *Bolt) Remove(key string) error {
	if err := b.check(key); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(b.bucket).Delete([]byte(key))
	})
}

// Close releases the database file lock.
func (b *Bolt) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	return b.db.Close()
}

func (b *Bolt) check(key string) error {
	if b.closed.Load() {
		return ErrClosed
	}
	if key == "" {
		return ErrEmptyKey
	}

	return nil
}

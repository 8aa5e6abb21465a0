// Package memory provides an in-process domain.Store.
package memory

import (
	"bytes"
	"context"
	"sync"

	"poapregistry/internal/domain"
)

// Store keeps state in a map guarded by a single lock. Transactions hold the write lock for
// their whole duration, so requests are strictly serialized.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// RunInTx runs fn against a write overlay and applies the overlay only when fn returns nil.
func (s *Store) RunInTx(ctx context.Context, fn func(kv domain.KVStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txView{base: s.data, writes: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.writes {
		s.data[k] = v
	}
	return nil
}

// View runs fn against a read-only view.
func (s *Store) View(ctx context.Context, fn func(kv domain.KVStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&readView{data: s.data})
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

type txView struct {
	base   map[string][]byte
	writes map[string][]byte
}

func (t *txView) Get(_ context.Context, key []byte) ([]byte, error) {
	if v, ok := t.writes[string(key)]; ok {
		return bytes.Clone(v), nil
	}
	if v, ok := t.base[string(key)]; ok {
		return bytes.Clone(v), nil
	}
	return nil, domain.ErrNotFound
}

func (t *txView) Has(_ context.Context, key []byte) (bool, error) {
	if _, ok := t.writes[string(key)]; ok {
		return true, nil
	}
	_, ok := t.base[string(key)]
	return ok, nil
}

func (t *txView) Set(_ context.Context, key, value []byte) error {
	t.writes[string(key)] = bytes.Clone(value)
	return nil
}

type readView struct {
	data map[string][]byte
}

func (r *readView) Get(_ context.Context, key []byte) ([]byte, error) {
	if v, ok := r.data[string(key)]; ok {
		return bytes.Clone(v), nil
	}
	return nil, domain.ErrNotFound
}

func (r *readView) Has(_ context.Context, key []byte) (bool, error) {
	_, ok := r.data[string(key)]
	return ok, nil
}

func (r *readView) Set(context.Context, []byte, []byte) error {
	return domain.ErrReadOnly
}

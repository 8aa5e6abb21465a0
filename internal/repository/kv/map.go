package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"poapregistry/internal/domain"
)

// Map stores JSON-encoded values of type V under composite keys with a fixed number of components.
type Map[V any] struct {
	namespace string
	arity     int
}

// NewMap returns a Map whose keys have exactly arity components.
func NewMap[V any](namespace string, arity int) Map[V] {
	return Map[V]{namespace: namespace, arity: arity}
}

// Key returns the raw store key for parts.
func (m Map[V]) Key(parts ...string) ([]byte, error) {
	if len(parts) != m.arity {
		return nil, fmt.Errorf("%w: %s key wants %d components, got %d", domain.ErrInvalidInput, m.namespace, m.arity, len(parts))
	}
	return joinKey(m.namespace, parts)
}

// Has reports whether a value is stored under parts.
func (m Map[V]) Has(ctx context.Context, store domain.KVStore, parts ...string) (bool, error) {
	key, err := m.Key(parts...)
	if err != nil {
		return false, err
	}
	ok, err := store.Has(ctx, key)
	if err != nil {
		return false, fmt.Errorf("has %s: %w", m.namespace, err)
	}
	return ok, nil
}

// MayLoad returns the value under parts, or nil when there is none.
func (m Map[V]) MayLoad(ctx context.Context, store domain.KVStore, parts ...string) (*V, error) {
	key, err := m.Key(parts...)
	if err != nil {
		return nil, err
	}
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", m.namespace, err)
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.namespace, err)
	}
	return &v, nil
}

// Load is MayLoad that fails with an error matching domain.ErrNotFound when nothing is stored.
func (m Map[V]) Load(ctx context.Context, store domain.KVStore, parts ...string) (*V, error) {
	v, err := m.MayLoad(ctx, store, parts...)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s %q: %w", m.namespace, strings.Join(parts, "/"), domain.ErrNotFound)
	}
	return v, nil
}

// Save stores v under parts, replacing any previous value.
func (m Map[V]) Save(ctx context.Context, store domain.KVStore, v V, parts ...string) error {
	key, err := m.Key(parts...)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.namespace, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", m.namespace, err)
	}
	return nil
}

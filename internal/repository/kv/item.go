package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"poapregistry/internal/domain"
)

// Item stores a single JSON-encoded value under its namespace.
type Item[V any] struct {
	namespace string
}

// NewItem returns an Item stored under namespace.
func NewItem[V any](namespace string) Item[V] {
	return Item[V]{namespace: namespace}
}

// MayLoad returns the stored value, or nil when there is none.
func (i Item[V]) MayLoad(ctx context.Context, store domain.KVStore) (*V, error) {
	raw, err := store.Get(ctx, []byte(i.namespace))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", i.namespace, err)
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", i.namespace, err)
	}
	return &v, nil
}

// Load fails with an error matching domain.ErrNotFound when nothing is stored.
func (i Item[V]) Load(ctx context.Context, store domain.KVStore) (*V, error) {
	v, err := i.MayLoad(ctx, store)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s: %w", i.namespace, domain.ErrNotFound)
	}
	return v, nil
}

// Save replaces the stored value.
func (i Item[V]) Save(ctx context.Context, store domain.KVStore, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", i.namespace, err)
	}
	if err := store.Set(ctx, []byte(i.namespace), raw); err != nil {
		return fmt.Errorf("set %s: %w", i.namespace, err)
	}
	return nil
}

package kv

import (
	"context"

	"poapregistry/internal/domain"
)

// MirrorMap keeps one logical two-part relation in two maps: the primary keyed (a, b) and the
// mirror keyed (b, a). The only write path is Save, which writes both sides.
type MirrorMap[V any] struct {
	primary Map[V]
	mirror  Map[V]
}

// NewMirrorMap returns a MirrorMap over the primary and mirror namespaces.
func NewMirrorMap[V any](primary, mirror string) MirrorMap[V] {
	return MirrorMap[V]{
		primary: NewMap[V](primary, 2),
		mirror:  NewMap[V](mirror, 2),
	}
}

// Has checks the primary index.
func (m MirrorMap[V]) Has(ctx context.Context, store domain.KVStore, a, b string) (bool, error) {
	return m.primary.Has(ctx, store, a, b)
}

// MayLoad reads (a, b) from the primary index.
func (m MirrorMap[V]) MayLoad(ctx context.Context, store domain.KVStore, a, b string) (*V, error) {
	return m.primary.MayLoad(ctx, store, a, b)
}

// Load reads (a, b) from the primary index.
func (m MirrorMap[V]) Load(ctx context.Context, store domain.KVStore, a, b string) (*V, error) {
	return m.primary.Load(ctx, store, a, b)
}

// LoadMirror reads (b, a) from the mirror index.
func (m MirrorMap[V]) LoadMirror(ctx context.Context, store domain.KVStore, b, a string) (*V, error) {
	return m.mirror.Load(ctx, store, b, a)
}

// Save writes v under (a, b) in the primary and (b, a) in the mirror. Callers run it inside
// a store transaction so a failure on either side discards both.
func (m MirrorMap[V]) Save(ctx context.Context, store domain.KVStore, a, b string, v V) error {
	if err := m.primary.Save(ctx, store, v, a, b); err != nil {
		return err
	}
	return m.mirror.Save(ctx, store, v, b, a)
}

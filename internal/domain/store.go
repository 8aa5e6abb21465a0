package domain

import "context"

// KVStore is the byte-keyed view of persistent state handed to one operation.
// Get returns an error matching ErrNotFound when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Has(ctx context.Context, key []byte) (bool, error)
	Set(ctx context.Context, key, value []byte) error
}

// Store is the persistent state owned by the hosting environment.
//
// RunInTx gives fn a transactional view: its writes become visible together when fn returns nil
// and are discarded when it returns an error. View gives fn a read-only view; Set fails with ErrReadOnly.
type Store interface {
	RunInTx(ctx context.Context, fn func(kv KVStore) error) error
	View(ctx context.Context, fn func(kv KVStore) error) error
}

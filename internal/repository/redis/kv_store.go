// Package redis provides a domain.Store backed by Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"poapregistry/internal/domain"
)

// Store keeps every key under a common prefix. Transactions are optimistic: each key read is
// WATCHed and buffered writes are flushed in one MULTI/EXEC, which fails if a watched key changed.
type Store struct {
	client *redis.Client
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix namespaces every key under prefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewStore returns a Store using client.
func NewStore(client *redis.Client, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NewClient parses url, connects and pings.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (s *Store) RunInTx(ctx context.Context, fn func(kv domain.KVStore) error) error {
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		view := &txView{store: s, tx: tx, writes: make(map[string][]byte)}
		if err := fn(view); err != nil {
			return err
		}
		if len(view.writes) == 0 {
			return nil
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for k, v := range view.writes {
				pipe.Set(ctx, k, v, 0)
			}
			return nil
		})
		return err
	})
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
	}
	return err
}

func (s *Store) View(ctx context.Context, fn func(kv domain.KVStore) error) error {
	return fn(&readView{store: s})
}

func (s *Store) key(k []byte) string {
	return s.prefix + string(k)
}

type txView struct {
	store  *Store
	tx     *redis.Tx
	writes map[string][]byte
}

func (t *txView) Get(ctx context.Context, key []byte) ([]byte, error) {
	k := t.store.key(key)
	if v, ok := t.writes[k]; ok {
		return v, nil
	}
	if err := t.tx.Watch(ctx, k).Err(); err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	v, err := t.tx.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (t *txView) Has(ctx context.Context, key []byte) (bool, error) {
	k := t.store.key(key)
	if _, ok := t.writes[k]; ok {
		return true, nil
	}
	if err := t.tx.Watch(ctx, k).Err(); err != nil {
		return false, fmt.Errorf("watch: %w", err)
	}
	n, err := t.tx.Exists(ctx, k).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (t *txView) Set(_ context.Context, key, value []byte) error {
	t.writes[t.store.key(key)] = append([]byte(nil), value...)
	return nil
}

type readView struct {
	store *Store
}

func (r *readView) Get(ctx context.Context, key []byte) ([]byte, error) {
	v, err := r.store.client.Get(ctx, r.store.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *readView) Has(ctx context.Context, key []byte) (bool, error) {
	n, err := r.store.client.Exists(ctx, r.store.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *readView) Set(context.Context, []byte, []byte) error {
	return domain.ErrReadOnly
}

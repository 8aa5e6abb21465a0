package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"poapregistry/internal/domain"
)

// serializationFailure is the SQLSTATE Postgres reports when a SERIALIZABLE transaction loses a race.
const serializationFailure = "40001"

type kvStore struct {
	DB *sql.DB
}

// NewKVStore returns a domain.Store backed by the kv_store table.
func NewKVStore(db *sql.DB) domain.Store {
	return &kvStore{DB: db}
}

// Open connects to Postgres with the lib/pq driver and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (r *kvStore) RunInTx(ctx context.Context, fn func(kv domain.KVStore) error) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&txKV{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", mapError(err))
	}
	return nil
}

func (r *kvStore) View(ctx context.Context, fn func(kv domain.KVStore) error) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin read-only tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	return fn(&txKV{tx: tx, readOnly: true})
}

type txKV struct {
	tx       *sql.Tx
	readOnly bool
}

func (t *txKV) Get(ctx context.Context, key []byte) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`
	var value []byte
	if err := t.tx.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError(err)
	}
	return value, nil
}

func (t *txKV) Has(ctx context.Context, key []byte) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM kv_store WHERE key = $1)`
	var ok bool
	if err := t.tx.QueryRowContext(ctx, query, key).Scan(&ok); err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

func (t *txKV) Set(ctx context.Context, key, value []byte) error {
	if t.readOnly {
		return domain.ErrReadOnly
	}
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := t.tx.ExecContext(ctx, query, key, value); err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == serializationFailure {
		return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
	}
	return err
}

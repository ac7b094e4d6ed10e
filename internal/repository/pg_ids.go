package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Advisory lock keys, one per table whose ids are computed from MAX(id).
const (
	pgContactsIDLock    int64 = 0x5765624e6f7601
	pgSubscribersIDLock int64 = 0x5765624e6f7602
)

// insertLocked runs insert inside a transaction holding the advisory lock
// key. Inserts sharing a key run one at a time, so each one's MAX(id)
// subselect sees the previous insert's committed row.
func insertLocked(ctx context.Context, pool *pgxpool.Pool, key int64, insert func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key); err != nil {
		return fmt.Errorf("acquire id lock: %w", err)
	}
	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

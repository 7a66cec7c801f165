package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

// ReadSnapshot runs fn in a read-only repeatable-read transaction so every
// query inside sees the same data.
func (s *Store) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, tx DB) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) Fixtures() *FixtureRepo { return &FixtureRepo{pool: s.pool} }

// ReadFixtures hands fn a FixtureRepo bound to one read snapshot.
func (s *Store) ReadFixtures(ctx context.Context, fn func(ctx context.Context, r *FixtureRepo) error) error {
	return s.ReadSnapshot(ctx, func(ctx context.Context, tx DB) error {
		return fn(ctx, s.Fixtures().With(tx))
	})
}

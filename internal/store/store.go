package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrActiveConflict means another event for the venue became active
	// while this one was being activated.
	ErrActiveConflict = errors.New("active event conflict")
)

// Store wraps DB access.
type Store struct {
	Pool *pgxpool.Pool
	q    *queries
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool, q: &queries{db: pool}}, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

// SQLDB exposes the pool through database/sql for tooling such as schema
// migrations. Closing the returned handle does not close the pool.
func (s *Store) SQLDB() *sql.DB {
	return stdlib.OpenDBFromPool(s.Pool)
}

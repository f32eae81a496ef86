package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor on top of the connection pool.
// Settlement paths begin a transaction here and pass the pgx.Tx down to the
// repositories so the account lock and every write share one transaction.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a database transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}

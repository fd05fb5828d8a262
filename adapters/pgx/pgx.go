// Package pgx implements the user store on PostgreSQL.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gateward/gateward/core"
)

// DB is the subset of pgxpool.Pool the adapter needs. It is satisfied by
// *pgxpool.Pool in production and by pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Adapter struct {
	db DB
}

var _ core.UserStore = (*Adapter)(nil)

func New(db DB) *Adapter {
	return &Adapter{db: db}
}

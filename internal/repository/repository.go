package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the slice of pgx shared by pools, connections and
// transactions that the queries need.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adspend/internal/config/configs"
)

// pingTimeout bounds the connectivity checks done at startup.
const pingTimeout = 5 * time.Second

// NewPostgresPool creates a pgxpool.Pool for the ad catalog and verifies it
// with a ping. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

package postgres

import (
	"context"
	"fmt"

	"postsvc/internal/service"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Client hands out one pooled connection per session.
type Client struct {
	pool   *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

var _ service.SessionProvider = (*Client)(nil)

func NewClient(pool *pgxpool.Pool, getter *trmpgx.CtxGetter) *Client {
	return &Client{
		pool:   pool,
		getter: getter,
	}
}

func (c *Client) Acquire(ctx context.Context) (service.Session, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return NewSession(conn, c.getter, conn.Release), nil
}

type PoolConfig struct {
	DSN      string
	Schema   string
	MaxConns int32
}

func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement
	if cfg.Schema != "" {
		pcfg.ConnConfig.RuntimeParams["search_path"] = cfg.Schema
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}

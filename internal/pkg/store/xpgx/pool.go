package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool exposes squirrel-aware query helpers over a pgx pool. Getx and
// Selectx scan rows into structs by their db tags.
type Pool interface {
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Close()
}

type pool struct {
	inner *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	inner, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := inner.Ping(ctx); err != nil {
		inner.Close()
		return nil, err
	}

	return &pool{inner: inner}, nil
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Get(ctx, p.inner, dst, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return pgxscan.Select(ctx, p.inner, dst, sql, args...)
}

func (p *pool) Close() {
	p.inner.Close()
}

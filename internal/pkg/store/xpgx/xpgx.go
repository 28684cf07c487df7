package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the query surface the store works against. Getx/Selectx scan into
// structs by db tag; all three take squirrel builders so call sites never
// hold raw SQL and args apart.
type Pool interface {
	Getx(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error
	Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error)

	// WithTx runs fn inside one transaction; the Pool passed to fn routes
	// every call through that transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Pool) error) error

	Close()
}

type querier interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type pool struct {
	db   querier
	root *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err = p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return &pool{db: p, root: p}, nil
}

func (p *pool) Getx(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Get(ctx, p.db, dest, sql, args...)
}

func (p *pool) Selectx(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, p.db, dest, sql, args...)
}

func (p *pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.db.Exec(ctx, sql, args...)
}

func (p *pool) WithTx(ctx context.Context, fn func(ctx context.Context, tx Pool) error) error {
	if p.root == nil {
		// Already inside a transaction.
		return fn(ctx, p)
	}

	tx, err := p.root.Begin(ctx)
	if err != nil {
		return err
	}

	if err = fn(ctx, &pool{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (p *pool) Close() {
	if p.root != nil {
		p.root.Close()
	}
}

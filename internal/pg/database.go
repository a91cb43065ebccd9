package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB routes statements into the transaction carried by ctx, bounds each one
// with a timeout and classifies driver errors into the domain taxonomy.
type DB struct {
	pool    Database
	timeout time.Duration
}

func New(pool Database, timeout time.Duration) *DB {
	return &DB{
		pool:    pool,
		timeout: timeout,
	}
}

func (db *DB) conn(ctx context.Context) Database {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db.pool
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

func (db *DB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	tag, err := db.conn(ctx).Exec(ctx, sql, arguments...)
	if err != nil {
		return tag, Classify(ctx, err)
	}
	return tag, nil
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	qctx, cancel := db.withTimeout(ctx)

	rows, err := db.conn(ctx).Query(qctx, sql, args...)
	if err != nil {
		cancel()
		return nil, Classify(qctx, err)
	}
	return &rowsWithCancel{Rows: rows, ctx: qctx, cancel: cancel}, nil
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	qctx, cancel := db.withTimeout(ctx)
	return &rowWithCancel{row: db.conn(ctx).QueryRow(qctx, sql, args...), ctx: qctx, cancel: cancel}
}

type rowWithCancel struct {
	row    pgx.Row
	ctx    context.Context
	cancel context.CancelFunc
}

func (r *rowWithCancel) Scan(dest ...any) error {
	defer r.cancel()
	if err := r.row.Scan(dest...); err != nil {
		return Classify(r.ctx, err)
	}
	return nil
}

type rowsWithCancel struct {
	pgx.Rows
	ctx    context.Context
	cancel context.CancelFunc
}

func (r *rowsWithCancel) Close() {
	r.Rows.Close()
	r.cancel()
}

func (r *rowsWithCancel) Err() error {
	if err := r.Rows.Err(); err != nil {
		return Classify(r.ctx, err)
	}
	return nil
}

func (r *rowsWithCancel) Scan(dest ...any) error {
	if err := r.Rows.Scan(dest...); err != nil {
		return Classify(r.ctx, err)
	}
	return nil
}

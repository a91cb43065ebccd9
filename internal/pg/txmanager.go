package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
	BeginTx(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) error
	Savepoint(ctx context.Context, fn TransactionalFn) error
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

type Manager struct {
	pool TxBeginner
}

func NewTXManager(pool TxBeginner) *Manager {
	return &Manager{pool: pool}
}

func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	return m.BeginTx(ctx, pgx.TxOptions{}, fn)
}

// BeginTx runs fn inside a transaction. A call made while a transaction is
// already open in ctx joins it instead of starting a new one.
func (m *Manager) BeginTx(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return Classify(ctx, fmt.Errorf("begin transaction: %w", err))
	}
	return run(ctx, tx, fn)
}

// Savepoint runs fn in a nested transaction when ctx already carries one, so
// a failed statement inside fn rolls back only to the savepoint.
func (m *Manager) Savepoint(ctx context.Context, fn TransactionalFn) error {
	outer, ok := txFromContext(ctx)
	if !ok {
		return m.Begin(ctx, fn)
	}

	tx, err := outer.Begin(ctx)
	if err != nil {
		return Classify(ctx, fmt.Errorf("create savepoint: %w", err))
	}
	return run(ctx, tx, fn)
}

func run(ctx context.Context, tx pgx.Tx, fn TransactionalFn) (err error) {
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("failed to rollback transaction", zap.Error(rbErr))
			}
			return
		}
		if cErr := tx.Commit(ctx); cErr != nil {
			err = Classify(ctx, fmt.Errorf("commit transaction: %w", cErr))
		}
	}()

	return fn(withTx(ctx, tx))
}

package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

func NewMock(t *testing.T) (*Manager, *DB, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewTXManager(mock), New(mock, time.Second), mock
}

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(mock pgxmock.PgxPoolIface)
		fn          func(db *DB) TransactionalFn
		expectedErr error
	}{
		{
			name: "commits on success",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET status = $1 WHERE id = $2")).
					WithArgs("active", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, "UPDATE customers SET status = $1 WHERE id = $2", "active", 1)
					return err
				}
			},
		},
		{
			name: "rolls back when fn fails",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bills")).
					WithArgs(1).
					WillReturnError(errors.New("boom"))
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, "INSERT INTO bills (customer_id) VALUES ($1)", 1)
					return err
				}
			},
			expectedErr: errors.New("boom"),
		},
		{
			name: "nested begin joins the outer transaction",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM a")).WithArgs().WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM b")).WithArgs().WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					if _, err := db.Exec(ctx, "DELETE FROM a"); err != nil {
						return err
					}
					return NewTXManager(nil).Begin(ctx, func(ctx context.Context) error {
						_, err := db.Exec(ctx, "DELETE FROM b")
						return err
					})
				}
			},
		},
		{
			name: "begin failure is reported",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(context.DeadlineExceeded)
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					t.Fatal("fn must not run")
					return nil
				}
			},
			expectedErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, db, mock := NewMock(t)
			tt.prepareMock(mock)

			err := manager.Begin(context.Background(), tt.fn(db))
			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrStoreUnavailable) {
					assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
				} else {
					assert.Contains(t, err.Error(), tt.expectedErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_SavepointKeepsOuterTransaction(t *testing.T) {
	manager, db, mock := NewMock(t)

	mock.ExpectBegin()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET meter_number = $1")).
		WithArgs("MTR-KHI-000001").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET status = $1")).
		WithArgs("active").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		spErr := manager.Savepoint(ctx, func(ctx context.Context) error {
			_, err := db.Exec(ctx, "UPDATE customers SET meter_number = $1", "MTR-KHI-000001")
			return err
		})
		assert.Error(t, spErr)

		_, err := db.Exec(ctx, "UPDATE customers SET status = $1", "active")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

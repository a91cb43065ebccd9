package customerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func passThrough(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

var customerColumns = []string{"id", "account_number", "meter_number", "full_name", "email", "city", "category", "status",
	"outstanding_balance", "last_bill_amount", "created_at"}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	meter := "MTR-KHI-000001"

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Customer
	}{
		{
			name: "Existing customer",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(customerColumns).
					AddRow(1, "ELX-2024-000001", &meter, "Ali Khan", "ali@example.com", "Karachi", "Residential", "active",
						decimal.RequireFromString("120.50"), decimal.RequireFromString("120.50"), created)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Customer{
				ID:                 1,
				AccountNumber:      "ELX-2024-000001",
				MeterNumber:        &meter,
				FullName:           "Ali Khan",
				Email:              "ali@example.com",
				City:               "Karachi",
				Category:           "Residential",
				Status:             "active",
				OutstandingBalance: decimal.RequireFromString("120.50"),
				LastBillAmount:     decimal.RequireFromString("120.50"),
				CreatedAt:          created,
			},
		},
		{
			name: "Missing customer returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM customers WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 FOR UPDATE`)).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(customerColumns).
			AddRow(7, "ELX-2024-000007", nil, "Sara", "sara@example.com", "Lahore", "Commercial", "inactive",
				decimal.Zero, decimal.Zero, time.Now()))

	c, err := repo.LockByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, c.ID)
	assert.Nil(t, c.MeterNumber)
	assert.Equal(t, domain.CustomerInactive, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveIDs(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM customers WHERE status = 'active'`)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(5))

	ids, err := repo.ListActiveIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	created := time.Now()

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers`)).
		WithArgs("ELX-2024-000003", "Bilal", "b@example.com", "Quetta", "Residential", domain.CustomerPendingInstallation).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, created))

	c := &domain.Customer{
		AccountNumber: "ELX-2024-000003",
		FullName:      "Bilal",
		Email:         "b@example.com",
		City:          "Quetta",
		Category:      "Residential",
		Status:        domain.CustomerPendingInstallation,
	}
	err := repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, created, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ApplyBill(t *testing.T) {
	repo, mock, tx := NewMock(t)
	amount := decimal.RequireFromString("2164.50")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Updates balance",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET outstanding_balance = (`)).
					WithArgs(1, &amount).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown customer",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET outstanding_balance = (`)).
					WithArgs(1, &amount).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
			tt.mockSetup()

			err := repo.ApplyBill(context.Background(), 1, &amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AssignMeter(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Assigns meter",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET meter_number = $1 WHERE id = $2 AND meter_number IS NULL`)).
					WithArgs("MTR-KHI-000004", 4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Meter already assigned",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET meter_number = $1 WHERE id = $2 AND meter_number IS NULL`)).
					WithArgs("MTR-KHI-000004", 4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
			tt.mockSetup()

			err := repo.AssignMeter(context.Background(), 4, "MTR-KHI-000004")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MeterNumbers(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE meter_number LIKE $1`)).
		WithArgs("MTR-KHI-%").
		WillReturnRows(pgxmock.NewRows([]string{"meter_number"}).AddRow("MTR-KHI-000001").AddRow("MTR-KHI-000002"))

	out, err := repo.MeterNumbers(context.Background(), "MTR-KHI-%")
	assert.NoError(t, err)
	assert.Equal(t, []string{"MTR-KHI-000001", "MTR-KHI-000002"}, out)
}

package billrepo

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

func sampleBill() *domain.Bill {
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Bill{
		BillNumber:      "BILL-202403-00000013",
		CustomerID:      1,
		BillingMonth:    month,
		IssueDate:       month,
		DueDate:         month.AddDate(0, 0, 15),
		UnitsConsumed:   decimal.NewFromInt(250),
		MeterReadingID:  10,
		TariffID:        2,
		BaseAmount:      decimal.RequireFromString("1700"),
		FixedCharges:    decimal.RequireFromString("150"),
		ElectricityDuty: decimal.RequireFromString("25.50"),
		GSTAmount:       decimal.RequireFromString("289"),
		TotalAmount:     decimal.RequireFromString("2164.50"),
		Status:          domain.BillIssued,
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, mock, tx := NewMock(t)
	const insertSQL = `INSERT INTO bills`

	tests := []struct {
		name      string
		mockSetup func(b *domain.Bill)
		inserted  bool
		expectErr bool
	}{
		{
			name: "Inserts new bill",
			mockSetup: func(b *domain.Bill) {
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs(b.BillNumber, b.CustomerID, b.BillingMonth, b.IssueDate, b.DueDate, b.UnitsConsumed,
						b.MeterReadingID, b.TariffID, b.BaseAmount, b.FixedCharges, b.ElectricityDuty, b.GSTAmount,
						b.TotalAmount, b.Status).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))
			},
			inserted: true,
		},
		{
			name: "Existing bill for the month is left alone",
			mockSetup: func(b *domain.Bill) {
				mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT ON CONSTRAINT bills_customer_month_key DO NOTHING`)).
					WithArgs(b.BillNumber, b.CustomerID, b.BillingMonth, b.IssueDate, b.DueDate, b.UnitsConsumed,
						b.MeterReadingID, b.TariffID, b.BaseAmount, b.FixedCharges, b.ElectricityDuty, b.GSTAmount,
						b.TotalAmount, b.Status).
					WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
			inserted: false,
		},
		{
			name: "Database error",
			mockSetup: func(b *domain.Bill) {
				mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBill()
			tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
			tt.mockSetup(b)

			inserted, err := repo.Insert(context.Background(), b)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)
			if tt.inserted {
				assert.Equal(t, 42, b.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistsForMonth(t *testing.T) {
	repo, mock, _ := NewMock(t)
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM bills WHERE customer_id = $1 AND billing_month = $2`)).
		WithArgs(1, month).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForMonth(context.Background(), 1, month)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_FindByNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)
	b := sampleBill()
	b.ID = 42

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Bill
	}{
		{
			name: "Found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "bill_number", "customer_id", "billing_month", "issue_date",
					"due_date", "units_consumed", "meter_reading_id", "tariff_id", "base_amount", "fixed_charges",
					"electricity_duty", "gst_amount", "total_amount", "status", "payment_date"}).
					AddRow(b.ID, b.BillNumber, b.CustomerID, b.BillingMonth, b.IssueDate, b.DueDate, b.UnitsConsumed,
						b.MeterReadingID, b.TariffID, b.BaseAmount, b.FixedCharges, b.ElectricityDuty, b.GSTAmount,
						b.TotalAmount, b.Status, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM bills WHERE bill_number = $1`)).
					WithArgs(b.BillNumber).
					WillReturnRows(rows)
			},
			result: b,
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM bills WHERE bill_number = $1`)).
					WithArgs(b.BillNumber).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByNumber(context.Background(), b.BillNumber)
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, tx := NewMock(t)
	paidAt := time.Now()

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough).Times(2)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'paid', payment_date = $2 WHERE id = $1 AND status <> 'paid'`)).
		WithArgs(42, paidAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkPaid(context.Background(), 42, paidAt))

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'paid'`)).
		WithArgs(42, paidAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.MarkPaid(context.Background(), 42, paidAt), domain.ErrInvalidTransition)
}

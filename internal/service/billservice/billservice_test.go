package billservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

type mocks struct {
	tx        *pg.MockTXManager
	customers *MockCustomerRepo
	bills     *MockBillRepo
	readings  *MockReadingRepo
	tariffs   *MockTariffRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:        pg.NewMockTXManager(ctrl),
		customers: NewMockCustomerRepo(ctrl),
		bills:     NewMockBillRepo(ctrl),
		readings:  NewMockReadingRepo(ctrl),
		tariffs:   NewMockTariffRepo(ctrl),
	}
	service := New(m.tx, m.customers, m.bills, m.readings, m.tariffs, 15)
	service.now = func() time.Time { return time.Date(2024, 4, 2, 13, 30, 0, 0, time.UTC) }
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return service, m
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bound(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func residential() domain.Tariff {
	return domain.Tariff{
		ID:       2,
		Category: domain.CategoryResidential,
		Slabs: []domain.Slab{
			{UpTo: bound("100"), Rate: dec("5")},
			{UpTo: bound("200"), Rate: dec("7")},
			{Rate: dec("10")},
		},
		FixedCharge:   dec("150"),
		DutyPercent:   dec("1.5"),
		GSTPercent:    dec("17"),
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:        "active",
	}
}

func TestBillNumber(t *testing.T) {
	number, err := BillNumber(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 42)
	require.NoError(t, err)
	assert.Regexp(t, `^BILL-202403-0000042\d$`, number)
	assert.True(t, ValidBillNumber(number))

	other, err := BillNumber(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 42)
	require.NoError(t, err)
	assert.NotEqual(t, number, other)
}

func TestBillNumber_CustomerIDWidths(t *testing.T) {
	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		customerID int
		expected   string
	}{
		{
			name:       "seven digit id",
			customerID: 9_999_999,
			expected:   "BILL-202503-99999997",
		},
		{
			name:       "eight digit id",
			customerID: 10_000_000,
			expected:   "BILL-202503-100000009",
		},
		{
			name:       "ten digit id",
			customerID: 2_000_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, err := BillNumber(march, tt.customerID)
			require.NoError(t, err)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, number)
			}
			assert.True(t, ValidBillNumber(number))
		})
	}
}

func TestValidBillNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected bool
	}{
		{name: "valid", number: "BILL-202503-99999997", expected: true},
		{name: "valid wide body", number: "BILL-202503-100000009", expected: true},
		{name: "bad check digit", number: "BILL-202403-00000429"},
		{name: "bad month", number: "BILL-202413-00000421"},
		{name: "bad prefix", number: "INV-202403-00000421"},
		{name: "too short", number: "BILL-202503-0000042"},
		{name: "non digit body", number: "BILL-202503-0000042a0"},
		{name: "missing separator", number: "BILL-202503X00000429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidBillNumber(tt.number))
		})
	}
}

func TestService_BillCustomer(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	from, to := march, march.AddDate(0, 1, 0)
	active := &domain.Customer{ID: 1, Status: domain.CustomerActive}
	reading := &domain.MeterReading{ID: 10, CustomerID: 1, UnitsConsumed: dec("250")}

	tests := []struct {
		name          string
		month         time.Time
		prepareMock   func(m *mocks)
		expectedError error
		expectedTotal string
	}{
		{
			name:  "Bills an eligible customer",
			month: time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC),
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(active, nil)
				m.bills.EXPECT().ExistsForMonth(gomock.Any(), 1, march).Return(false, nil)
				m.readings.EXPECT().LatestInRange(gomock.Any(), 1, from, to).Return(reading, nil)
				m.tariffs.EXPECT().ListEffective(gomock.Any(), march).Return([]domain.Tariff{residential()}, nil)
				m.bills.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Bill) (bool, error) {
					assert.Equal(t, march, b.BillingMonth)
					assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), b.IssueDate)
					assert.Equal(t, time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC), b.DueDate)
					assert.Equal(t, 10, b.MeterReadingID)
					assert.Equal(t, 2, b.TariffID)
					assert.Equal(t, domain.BillGenerated, b.Status)
					b.ID = 99
					return true, nil
				})
				m.customers.EXPECT().ApplyBill(gomock.Any(), 1, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, last *decimal.Decimal) error {
					assert.Equal(t, "2164.50", last.StringFixed(2))
					return nil
				})
			},
			expectedTotal: "2164.50",
		},
		{
			name:  "Unknown customer",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:  "Inactive customer",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, Status: domain.CustomerSuspended}, nil)
			},
			expectedError: ErrCustomerInactive,
		},
		{
			name:  "Bill already exists",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(active, nil)
				m.bills.EXPECT().ExistsForMonth(gomock.Any(), 1, march).Return(true, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:  "No reading in month",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(active, nil)
				m.bills.EXPECT().ExistsForMonth(gomock.Any(), 1, march).Return(false, nil)
				m.readings.EXPECT().LatestInRange(gomock.Any(), 1, from, to).Return(nil, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "No tariff for category",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, Status: domain.CustomerActive, Category: domain.CategoryIndustrial}, nil)
				m.bills.EXPECT().ExistsForMonth(gomock.Any(), 1, march).Return(false, nil)
				m.readings.EXPECT().LatestInRange(gomock.Any(), 1, from, to).Return(reading, nil)
				m.tariffs.EXPECT().ListEffective(gomock.Any(), march).Return([]domain.Tariff{residential()}, nil)
			},
			expectedError: domain.ErrNoApplicableTariff,
		},
		{
			name:  "Concurrent insert wins the race",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(active, nil)
				m.bills.EXPECT().ExistsForMonth(gomock.Any(), 1, march).Return(false, nil)
				m.readings.EXPECT().LatestInRange(gomock.Any(), 1, from, to).Return(reading, nil)
				m.tariffs.EXPECT().ListEffective(gomock.Any(), march).Return([]domain.Tariff{residential()}, nil)
				m.bills.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedError: ErrBillExists,
		},
		{
			name:  "Store failure",
			month: march,
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().LockByID(gomock.Any(), 1).Return(nil, domain.ErrStoreUnavailable)
			},
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			bill, err := service.GenerateBill(context.Background(), 1, tt.month)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, bill)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, bill.TotalAmount.StringFixed(2))
			assert.True(t, ValidBillNumber(bill.BillNumber))
			assert.Equal(t, 99, bill.ID)
		})
	}
}

func TestService_PreviewBill(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		units         string
		expectedError error
		expectedBase  string
	}{
		{
			name:  "Prices the units",
			units: "250",
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1}, nil)
				m.tariffs.EXPECT().ListEffective(gomock.Any(), march).Return([]domain.Tariff{residential()}, nil)
			},
			expectedBase: "1700.00",
		},
		{
			name:  "Negative units",
			units: "-1",
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1}, nil)
				m.tariffs.EXPECT().ListEffective(gomock.Any(), march).Return([]domain.Tariff{residential()}, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Unknown customer",
			units: "10",
			prepareMock: func(m *mocks) {
				m.customers.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			breakdown, err := service.PreviewBill(context.Background(), 1, dec(tt.units), march)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBase, breakdown.BaseAmount.StringFixed(2))
		})
	}
}

func TestService_GetBill(t *testing.T) {
	service, m := NewMock(t)
	number, err := BillNumber(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	m.bills.EXPECT().FindByNumber(gomock.Any(), number).Return(&domain.Bill{ID: 1, BillNumber: number}, nil)
	bill, err := service.GetBill(context.Background(), number)
	require.NoError(t, err)
	assert.Equal(t, number, bill.BillNumber)

	m.bills.EXPECT().FindByNumber(gomock.Any(), number).Return(nil, nil)
	_, err = service.GetBill(context.Background(), number)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m.bills.EXPECT().FindByNumber(gomock.Any(), number).Return(nil, errors.New("db error"))
	_, err = service.GetBill(context.Background(), number)
	assert.EqualError(t, err, "db error")

	_, err = service.GetBill(context.Background(), "BILL-bogus")
	assert.ErrorIs(t, err, domain.ErrValidation)

	wide, err := BillNumber(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 10_000_000)
	require.NoError(t, err)
	m.bills.EXPECT().FindByNumber(gomock.Any(), wide).Return(&domain.Bill{ID: 2, CustomerID: 10_000_000, BillNumber: wide}, nil)
	bill, err = service.GetBill(context.Background(), wide)
	require.NoError(t, err)
	assert.Equal(t, wide, bill.BillNumber)
}

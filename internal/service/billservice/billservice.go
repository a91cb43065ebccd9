package billservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/period"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/tariff"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

const DefaultDueDays = 15

type CustomerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	LockByID(ctx context.Context, id int) (*domain.Customer, error)
	ApplyBill(ctx context.Context, customerID int, lastBill *decimal.Decimal) error
}

type BillRepo interface {
	ExistsForMonth(ctx context.Context, customerID int, month time.Time) (bool, error)
	Insert(ctx context.Context, b *domain.Bill) (bool, error)
	FindByNumber(ctx context.Context, number string) (*domain.Bill, error)
}

type ReadingRepo interface {
	LatestInRange(ctx context.Context, customerID int, from, to time.Time) (*domain.MeterReading, error)
}

type TariffRepo interface {
	ListEffective(ctx context.Context, month time.Time) ([]domain.Tariff, error)
}

var (
	ErrCustomerNotFound = fmt.Errorf("customer: %w", domain.ErrNotFound)
	ErrCustomerInactive = fmt.Errorf("customer is not active: %w", domain.ErrValidation)
	ErrNoReading        = fmt.Errorf("no meter reading in billing month: %w", domain.ErrValidation)
	ErrBillExists       = fmt.Errorf("bill already exists for billing month: %w", domain.ErrConflict)
	ErrBillNotFound     = fmt.Errorf("bill: %w", domain.ErrNotFound)
)

type Service struct {
	txManager pg.TXManager
	customers CustomerRepo
	bills     BillRepo
	readings  ReadingRepo
	tariffs   TariffRepo
	dueDays   int
	now       func() time.Time
}

func New(txManager pg.TXManager, customers CustomerRepo, bills BillRepo, readings ReadingRepo, tariffs TariffRepo, dueDays int) *Service {
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return &Service{
		txManager: txManager,
		customers: customers,
		bills:     bills,
		readings:  readings,
		tariffs:   tariffs,
		dueDays:   dueDays,
		now:       time.Now,
	}
}

// BillNumber renders BILL-YYYYMM-<customer id, at least 7 digits><Luhn digit>.
// The number is derived from (customer, month) so it is unique by construction.
func BillNumber(month time.Time, customerID int) (string, error) {
	digits, err := validate.WithCheckDigit(fmt.Sprintf("%07d", customerID))
	if err != nil {
		return "", fmt.Errorf("bill number for customer %d: %w", customerID, err)
	}
	return fmt.Sprintf("BILL-%s-%s", month.Format("200601"), digits), nil
}

const minBillNumberLen = len("BILL-200601-00000000")

// ValidBillNumber checks the shape and the check digit of a bill number. Ids
// past seven digits widen the digit body.
func ValidBillNumber(number string) bool {
	if len(number) < minBillNumberLen || number[:5] != "BILL-" || number[11] != '-' {
		return false
	}
	ym, digits := number[5:11], number[12:]
	if _, err := time.Parse("200601", ym); err != nil {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return validate.IsLuhn(digits)
}

// GenerateBill bills a single customer for month. The bill is left in the
// generated state for review.
func (s *Service) GenerateBill(ctx context.Context, customerID int, month time.Time) (*domain.Bill, error) {
	return s.BillCustomer(ctx, customerID, month, domain.BillGenerated)
}

// BillCustomer re-checks eligibility under a lock on the customer row and
// inserts the bill in the same transaction. The unique key on
// (customer, month) remains the final guard.
func (s *Service) BillCustomer(ctx context.Context, customerID int, month time.Time, status string) (*domain.Bill, error) {
	month = period.Month(month)
	from, to := period.Range(month)

	var bill *domain.Bill
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customers.LockByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		if customer.Status != domain.CustomerActive {
			return ErrCustomerInactive
		}

		exists, err := s.bills.ExistsForMonth(ctx, customerID, month)
		if err != nil {
			return err
		}
		if exists {
			return ErrBillExists
		}

		reading, err := s.readings.LatestInRange(ctx, customerID, from, to)
		if err != nil {
			return err
		}
		if reading == nil {
			return ErrNoReading
		}

		tariffs, err := s.tariffs.ListEffective(ctx, month)
		if err != nil {
			return err
		}
		t, err := tariff.Select(tariffs, customer.TariffCategory(), month)
		if err != nil {
			return err
		}
		breakdown, err := tariff.Calculate(reading.UnitsConsumed, t)
		if err != nil {
			return err
		}

		number, err := BillNumber(month, customerID)
		if err != nil {
			return err
		}
		issued := s.today()
		b := &domain.Bill{
			BillNumber:      number,
			CustomerID:      customerID,
			BillingMonth:    month,
			IssueDate:       issued,
			DueDate:         issued.AddDate(0, 0, s.dueDays),
			UnitsConsumed:   breakdown.Units,
			MeterReadingID:  reading.ID,
			TariffID:        t.ID,
			BaseAmount:      breakdown.BaseAmount,
			FixedCharges:    breakdown.FixedCharges,
			ElectricityDuty: breakdown.ElectricityDuty,
			GSTAmount:       breakdown.GSTAmount,
			TotalAmount:     breakdown.TotalAmount,
			Status:          status,
		}
		inserted, err := s.bills.Insert(ctx, b)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrBillExists
		}
		if err := s.customers.ApplyBill(ctx, customerID, &b.TotalAmount); err != nil {
			return err
		}
		bill = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Debug("bill created",
		zap.String("billNumber", bill.BillNumber),
		zap.Int("customerID", customerID),
		zap.String("total", bill.TotalAmount.StringFixed(2)),
	)
	return bill, nil
}

// PreviewBill prices units for the customer's category without writing anything.
func (s *Service) PreviewBill(ctx context.Context, customerID int, units decimal.Decimal, month time.Time) (*tariff.Breakdown, error) {
	month = period.Month(month)

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	tariffs, err := s.tariffs.ListEffective(ctx, month)
	if err != nil {
		return nil, err
	}
	t, err := tariff.Select(tariffs, customer.TariffCategory(), month)
	if err != nil {
		return nil, err
	}
	breakdown, err := tariff.Calculate(units, t)
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *Service) GetBill(ctx context.Context, number string) (*domain.Bill, error) {
	if !ValidBillNumber(number) {
		return nil, domain.NewValidationError("billNumber", "malformed bill number")
	}
	bill, err := s.bills.FindByNumber(ctx, number)
	if err != nil {
		zap.L().Error("failed to get bill", zap.String("billNumber", number), zap.Error(err))
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return bill, nil
}

func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

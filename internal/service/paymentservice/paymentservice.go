package paymentservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/service/billservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

var Methods = []string{"credit_card", "debit_card", "bank_transfer", "cash", "cheque", "upi", "wallet"}

type BillRepo interface {
	FindByNumber(ctx context.Context, number string) (*domain.Bill, error)
	LockByID(ctx context.Context, id int) (*domain.Bill, error)
	MarkPaid(ctx context.Context, id int, paidAt time.Time) error
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
}

type CustomerRepo interface {
	ApplyBill(ctx context.Context, customerID int, lastBill *decimal.Decimal) error
}

var (
	ErrBillPaid     = fmt.Errorf("bill is already paid: %w", domain.ErrConflict)
	ErrNotBillOwner = fmt.Errorf("bill belongs to another customer: %w", domain.ErrForbidden)
)

type Input struct {
	BillNumber string
	Amount     decimal.Decimal
	Method     string
}

type Service struct {
	txManager pg.TXManager
	bills     BillRepo
	payments  PaymentRepo
	customers CustomerRepo
	now       func() time.Time
}

func New(txManager pg.TXManager, bills BillRepo, payments PaymentRepo, customers CustomerRepo) *Service {
	return &Service{
		txManager: txManager,
		bills:     bills,
		payments:  payments,
		customers: customers,
		now:       time.Now,
	}
}

// Record stores a completed payment against a bill. A payment covering the
// bill total marks it paid; the customer's outstanding balance is recomputed
// in the same transaction either way.
func (s *Service) Record(ctx context.Context, actor auth.Actor, in Input) (*domain.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be greater than zero")
	}
	if !validMethod(in.Method) {
		return nil, domain.NewValidationError("method", "must be one of "+strings.Join(Methods, ", "))
	}
	if !billservice.ValidBillNumber(in.BillNumber) {
		return nil, domain.NewValidationError("billNumber", "malformed bill number")
	}

	found, err := s.bills.FindByNumber(ctx, in.BillNumber)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, billservice.ErrBillNotFound
	}
	if actor.IsCustomer() && found.CustomerID != actor.ID {
		return nil, ErrNotBillOwner
	}

	var payment *domain.Payment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		bill, err := s.bills.LockByID(ctx, found.ID)
		if err != nil {
			return err
		}
		if bill == nil {
			return billservice.ErrBillNotFound
		}
		if bill.Status == domain.BillPaid {
			return ErrBillPaid
		}

		now := s.now().UTC()
		payment = &domain.Payment{
			CustomerID:     bill.CustomerID,
			BillID:         bill.ID,
			Amount:         in.Amount,
			Method:         in.Method,
			TransactionRef: transactionRef(),
			Status:         domain.PaymentCompleted,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return err
		}
		if in.Amount.GreaterThanOrEqual(bill.TotalAmount) {
			if err := s.bills.MarkPaid(ctx, bill.ID, now); err != nil {
				return err
			}
		}
		return s.customers.ApplyBill(ctx, bill.CustomerID, nil)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.String("billNumber", in.BillNumber),
		zap.String("amount", in.Amount.StringFixed(2)),
		zap.String("transactionRef", payment.TransactionRef),
	)
	return payment, nil
}

func validMethod(method string) bool {
	for _, m := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

func transactionRef() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

package billrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const columns = `id, bill_number, customer_id, billing_month, issue_date, due_date, units_consumed,
        meter_reading_id, tariff_id, base_amount, fixed_charges, electricity_duty, gst_amount,
        total_amount, status, payment_date`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scan(row pgx.Row) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(&b.ID, &b.BillNumber, &b.CustomerID, &b.BillingMonth, &b.IssueDate, &b.DueDate, &b.UnitsConsumed,
		&b.MeterReadingID, &b.TariffID, &b.BaseAmount, &b.FixedCharges, &b.ElectricityDuty, &b.GSTAmount,
		&b.TotalAmount, &b.Status, &b.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ExistsForMonth(ctx context.Context, customerID int, month time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM bills WHERE customer_id = $1 AND billing_month = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, customerID, month).Scan(&exists); err != nil {
		zap.L().Error("can't check existing bill", zap.Int("customerID", customerID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Insert stores the bill unless one already exists for the customer and
// month. It reports false instead of failing so an enclosing transaction stays usable.
func (r *Repository) Insert(ctx context.Context, b *domain.Bill) (bool, error) {
	query := `
        INSERT INTO bills (bill_number, customer_id, billing_month, issue_date, due_date, units_consumed,
            meter_reading_id, tariff_id, base_amount, fixed_charges, electricity_duty, gst_amount,
            total_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT ON CONSTRAINT bills_customer_month_key DO NOTHING
        RETURNING id
    `
	inserted := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, b.BillNumber, b.CustomerID, b.BillingMonth, b.IssueDate, b.DueDate,
			b.UnitsConsumed, b.MeterReadingID, b.TariffID, b.BaseAmount, b.FixedCharges, b.ElectricityDuty,
			b.GSTAmount, b.TotalAmount, b.Status).Scan(&b.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't insert bill", zap.String("billNumber", b.BillNumber), zap.Error(err))
			return err
		}
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*domain.Bill, error) {
	query := `
        SELECT ` + columns + `
        FROM bills
        WHERE bill_number = $1
    `
	b, err := scan(r.db.QueryRow(ctx, query, number))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bill", zap.String("billNumber", number), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Bill, error) {
	query := `
        SELECT ` + columns + `
        FROM bills
        WHERE id = $1
        FOR UPDATE
    `
	b, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock bill", zap.Int("billID", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `
        UPDATE bills
        SET status = 'paid', payment_date = $2
        WHERE id = $1 AND status <> 'paid'
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id, paidAt)
		if err != nil {
			zap.L().Error("can't mark bill paid", zap.Int("billID", id), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("bill %d: %w", id, domain.TransitionError{Entity: "bill", From: domain.BillPaid, To: domain.BillPaid})
		}
		return nil
	})
}

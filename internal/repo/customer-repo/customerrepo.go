package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const columns = `id, account_number, meter_number, full_name, email, city, category, status,
        outstanding_balance, last_bill_amount, created_at`

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

func scan(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.AccountNumber, &c.MeterNumber, &c.FullName, &c.Email, &c.City, &c.Category, &c.Status,
		&c.OutstandingBalance, &c.LastBillAmount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `
        SELECT ` + columns + `
        FROM customers
        WHERE id = $1
    `
	c, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find customer", zap.Int("customerID", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// LockByID reads the customer row with FOR UPDATE. It must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `
        SELECT ` + columns + `
        FROM customers
        WHERE id = $1
        FOR UPDATE
    `
	c, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock customer", zap.Int("customerID", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) ListActiveIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM customers
        WHERE status = 'active'
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list active customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan customer id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
        INSERT INTO customers (account_number, full_name, email, city, category, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, c.AccountNumber, c.FullName, c.Email, c.City, c.Category, c.Status).
			Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't create customer", zap.String("accountNumber", c.AccountNumber), zap.Error(err))
			return err
		}
		return nil
	})
}

// ApplyBill recomputes the outstanding balance as the sum of unpaid bills and
// records the latest bill amount when one is given.
func (r *Repository) ApplyBill(ctx context.Context, customerID int, lastBill *decimal.Decimal) error {
	query := `
        UPDATE customers
        SET outstanding_balance = (
                SELECT COALESCE(SUM(total_amount), 0)
                FROM bills
                WHERE customer_id = $1 AND status IN ('issued', 'generated')
            ),
            last_bill_amount = COALESCE($2, last_bill_amount)
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, customerID, lastBill)
		if err != nil {
			zap.L().Error("can't update outstanding balance", zap.Int("customerID", customerID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *Repository) MeterNumbers(ctx context.Context, like string) ([]string, error) {
	query := `
        SELECT meter_number
        FROM customers
        WHERE meter_number LIKE $1
    `
	rows, err := r.db.Query(ctx, query, like)
	if err != nil {
		zap.L().Error("can't list meter numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AssignMeter sets the meter number once; a taken number surfaces as domain.ErrConflict.
func (r *Repository) AssignMeter(ctx context.Context, customerID int, meterNumber string) error {
	query := `
        UPDATE customers
        SET meter_number = $1
        WHERE id = $2 AND meter_number IS NULL
    `
	return r.txManager.Savepoint(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, meterNumber, customerID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.TransitionError{Entity: "meter number", From: "assigned", To: meterNumber}
		}
		return nil
	})
}

func (r *Repository) UpdateStatus(ctx context.Context, customerID int, status string) error {
	query := `
        UPDATE customers
        SET status = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, status, customerID)
		if err != nil {
			zap.L().Error("can't update customer status", zap.Int("customerID", customerID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
		}
		return nil
	})
}

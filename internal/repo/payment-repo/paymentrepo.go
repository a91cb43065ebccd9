package paymentrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

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

func (r *Repository) Create(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (customer_id, bill_id, amount, payment_method, transaction_ref, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, payment_date
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, p.CustomerID, p.BillID, p.Amount, p.Method, p.TransactionRef, p.Status).
			Scan(&p.ID, &p.PaymentDate)
		if err != nil {
			zap.L().Error("can't create payment", zap.Int("billID", p.BillID), zap.Error(err))
			return err
		}
		return nil
	})
}

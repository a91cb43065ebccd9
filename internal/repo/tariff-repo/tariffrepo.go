package tariffrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

// ListEffective returns every active tariff whose validity covers month,
// newest effective date first. Picking the one for a category is up to the caller.
func (r *Repository) ListEffective(ctx context.Context, month time.Time) ([]domain.Tariff, error) {
	query := `
        SELECT id, category, slabs, fixed_charge, electricity_duty_percent, gst_percent,
               effective_date, valid_until, status
        FROM tariffs
        WHERE status = 'active'
          AND effective_date <= $1
          AND (valid_until IS NULL OR valid_until >= $1)
        ORDER BY effective_date DESC
    `
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		zap.L().Error("can't list tariffs", zap.Time("month", month), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tariffs []domain.Tariff
	for rows.Next() {
		var (
			t     domain.Tariff
			slabs []byte
		)
		err := rows.Scan(&t.ID, &t.Category, &slabs, &t.FixedCharge, &t.DutyPercent, &t.GSTPercent,
			&t.EffectiveDate, &t.ValidUntil, &t.Status)
		if err != nil {
			zap.L().Error("can't scan tariff", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(slabs, &t.Slabs); err != nil {
			return nil, fmt.Errorf("tariff %d has malformed slabs: %w", t.ID, err)
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}

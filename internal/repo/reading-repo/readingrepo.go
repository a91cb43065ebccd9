package readingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const columns = `id, customer_id, reading_date, previous_reading, current_reading, units_consumed, employee_id, created_at`

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

func scan(row pgx.Row) (*domain.MeterReading, error) {
	var m domain.MeterReading
	err := row.Scan(&m.ID, &m.CustomerID, &m.ReadingDate, &m.PreviousReading, &m.CurrentReading, &m.UnitsConsumed,
		&m.EmployeeID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Latest returns the most recent reading of the customer, or nil if the meter was never read.
func (r *Repository) Latest(ctx context.Context, customerID int) (*domain.MeterReading, error) {
	query := `
        SELECT ` + columns + `
        FROM meter_readings
        WHERE customer_id = $1
        ORDER BY reading_date DESC, id DESC
        LIMIT 1
    `
	m, err := scan(r.db.QueryRow(ctx, query, customerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get latest reading", zap.Int("customerID", customerID), zap.Error(err))
		return nil, err
	}
	return m, nil
}

// LatestInRange returns the latest reading taken in [from, to).
func (r *Repository) LatestInRange(ctx context.Context, customerID int, from, to time.Time) (*domain.MeterReading, error) {
	query := `
        SELECT ` + columns + `
        FROM meter_readings
        WHERE customer_id = $1 AND reading_date >= $2 AND reading_date < $3
        ORDER BY reading_date DESC, id DESC
        LIMIT 1
    `
	m, err := scan(r.db.QueryRow(ctx, query, customerID, from, to))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get reading for period", zap.Int("customerID", customerID), zap.Time("from", from), zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *Repository) Create(ctx context.Context, m *domain.MeterReading) error {
	query := `
        INSERT INTO meter_readings (customer_id, reading_date, reading_month, previous_reading, current_reading,
            units_consumed, employee_id)
        VALUES ($1, $2, date_trunc('month', $2::timestamptz AT TIME ZONE 'UTC')::date, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, m.CustomerID, m.ReadingDate, m.PreviousReading, m.CurrentReading,
			m.UnitsConsumed, m.EmployeeID).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			zap.L().Error("can't create meter reading", zap.Int("customerID", m.CustomerID), zap.Error(err))
			return err
		}
		return nil
	})
}

package workorderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const columns = `id, customer_id, employee_id, work_type, title, description, priority, status,
        assigned_date, due_date, completion_date, completion_notes`

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

func scan(row pgx.Row) (*domain.WorkOrder, error) {
	var w domain.WorkOrder
	err := row.Scan(&w.ID, &w.CustomerID, &w.EmployeeID, &w.WorkType, &w.Title, &w.Description, &w.Priority,
		&w.Status, &w.AssignedDate, &w.DueDate, &w.CompletionDate, &w.CompletionNotes)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) find(ctx context.Context, query string, args ...any) (*domain.WorkOrder, error) {
	w, err := scan(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get work order", zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WorkOrder, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM work_orders
        WHERE id = $1
    `, id)
}

func (r *Repository) LockByID(ctx context.Context, id int) (*domain.WorkOrder, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM work_orders
        WHERE id = $1
        FOR UPDATE
    `, id)
}

// FindOpen returns the oldest assigned or in-progress order of the given
// type for the customer.
func (r *Repository) FindOpen(ctx context.Context, customerID int, workType string) (*domain.WorkOrder, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM work_orders
        WHERE customer_id = $1 AND work_type = $2 AND status IN ('assigned', 'in_progress')
        ORDER BY assigned_date, id
        LIMIT 1
    `, customerID, workType)
}

func (r *Repository) HasOpen(ctx context.Context, customerID int, workType string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM work_orders
            WHERE customer_id = $1 AND work_type = $2 AND status IN ('assigned', 'in_progress')
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, customerID, workType).Scan(&exists); err != nil {
		zap.L().Error("can't check open work orders", zap.Int("customerID", customerID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, w *domain.WorkOrder) error {
	query := `
        INSERT INTO work_orders (customer_id, employee_id, work_type, title, description, priority, status, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, assigned_date
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, w.CustomerID, w.EmployeeID, w.WorkType, w.Title, w.Description, w.Priority,
			w.Status, w.DueDate).Scan(&w.ID, &w.AssignedDate)
		if err != nil {
			zap.L().Error("can't create work order", zap.String("workType", w.WorkType), zap.Error(err))
			return err
		}
		return nil
	})
}

// Update persists the mutable lifecycle fields of w.
func (r *Repository) Update(ctx context.Context, w *domain.WorkOrder) error {
	query := `
        UPDATE work_orders
        SET status = $1, employee_id = $2, completion_date = $3, completion_notes = $4
        WHERE id = $5
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, w.Status, w.EmployeeID, w.CompletionDate, w.CompletionNotes, w.ID)
		if err != nil {
			zap.L().Error("can't update work order", zap.Int("workOrderID", w.ID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("work order %d: %w", w.ID, domain.ErrNotFound)
		}
		return nil
	})
}

package connectionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const columns = `id, application_number, applicant_name, email, phone, property_address, city, connection_type,
        status, account_number, temporary_password, password_hash, application_date, inspection_date,
        approval_date, connected_date, customer_id, rejection_reason`

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

func scan(row pgx.Row) (*domain.ConnectionRequest, error) {
	var c domain.ConnectionRequest
	err := row.Scan(&c.ID, &c.ApplicationNumber, &c.ApplicantName, &c.Email, &c.Phone, &c.PropertyAddress, &c.City,
		&c.ConnectionType, &c.Status, &c.AccountNumber, &c.TemporaryPassword, &c.PasswordHash, &c.ApplicationDate,
		&c.InspectionDate, &c.ApprovalDate, &c.ConnectedDate, &c.CustomerID, &c.RejectionReason)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) find(ctx context.Context, query string, arg any) (*domain.ConnectionRequest, error) {
	c, err := scan(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get connection request", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ConnectionRequest, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM connection_requests
        WHERE id = $1
    `, id)
}

func (r *Repository) LockByID(ctx context.Context, id int) (*domain.ConnectionRequest, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM connection_requests
        WHERE id = $1
        FOR UPDATE
    `, id)
}

func (r *Repository) FindByApplicationNumber(ctx context.Context, number string) (*domain.ConnectionRequest, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM connection_requests
        WHERE application_number = $1
    `, number)
}

func (r *Repository) list(ctx context.Context, query, like string) ([]string, error) {
	rows, err := r.db.Query(ctx, query, like)
	if err != nil {
		zap.L().Error("can't list identifiers", zap.String("like", like), zap.Error(err))
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

func (r *Repository) ApplicationNumbers(ctx context.Context, like string) ([]string, error) {
	return r.list(ctx, `
        SELECT application_number
        FROM connection_requests
        WHERE application_number LIKE $1
    `, like)
}

// AccountNumbers looks at both requests and customers since either may hold an account number.
func (r *Repository) AccountNumbers(ctx context.Context, like string) ([]string, error) {
	return r.list(ctx, `
        SELECT account_number FROM connection_requests WHERE account_number LIKE $1
        UNION
        SELECT account_number FROM customers WHERE account_number LIKE $1
    `, like)
}

// Create inserts c under its application number. It runs in a savepoint so a
// duplicate number can be retried within an enclosing transaction.
func (r *Repository) Create(ctx context.Context, c *domain.ConnectionRequest) error {
	query := `
        INSERT INTO connection_requests (application_number, applicant_name, email, phone, property_address,
            city, connection_type, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, application_date
    `
	return r.txManager.Savepoint(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, c.ApplicationNumber, c.ApplicantName, c.Email, c.Phone, c.PropertyAddress,
			c.City, c.ConnectionType, c.Status).Scan(&c.ID, &c.ApplicationDate)
		if err != nil {
			zap.L().Debug("can't create connection request", zap.String("applicationNumber", c.ApplicationNumber), zap.Error(err))
			return err
		}
		return nil
	})
}

// SetAccountNumber claims an account number for the request.
func (r *Repository) SetAccountNumber(ctx context.Context, id int, accountNumber string) error {
	query := `
        UPDATE connection_requests
        SET account_number = $1
        WHERE id = $2 AND account_number IS NULL
    `
	return r.txManager.Savepoint(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, accountNumber, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("connection request %d already has an account number: %w", id, domain.ErrInvalidTransition)
		}
		return nil
	})
}

func (r *Repository) Update(ctx context.Context, c *domain.ConnectionRequest) error {
	query := `
        UPDATE connection_requests
        SET status = $1, temporary_password = $2, password_hash = $3, inspection_date = $4,
            approval_date = $5, connected_date = $6, customer_id = $7, rejection_reason = $8
        WHERE id = $9
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, c.Status, c.TemporaryPassword, c.PasswordHash, c.InspectionDate,
			c.ApprovalDate, c.ConnectedDate, c.CustomerID, c.RejectionReason, c.ID)
		if err != nil {
			zap.L().Error("can't update connection request", zap.Int("requestID", c.ID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("connection request %d: %w", c.ID, domain.ErrNotFound)
		}
		return nil
	})
}

package resetrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
)

const onePendingIndex = "password_reset_one_pending_idx"

const columns = `id, request_number, email, user_type, status, temp_password_plain, password_hash,
        expires_at, requested_at, processed_at, processed_by, rejection_reason`

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

func scan(row pgx.Row) (*domain.PasswordResetRequest, error) {
	var p domain.PasswordResetRequest
	err := row.Scan(&p.ID, &p.RequestNumber, &p.Email, &p.UserType, &p.Status, &p.TempPasswordPlain, &p.PasswordHash,
		&p.ExpiresAt, &p.RequestedAt, &p.ProcessedAt, &p.ProcessedBy, &p.RejectionReason)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) find(ctx context.Context, query string, arg any) (*domain.PasswordResetRequest, error) {
	p, err := scan(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get password reset request", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) LockByID(ctx context.Context, id int) (*domain.PasswordResetRequest, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM password_reset_requests
        WHERE id = $1
        FOR UPDATE
    `, id)
}

func (r *Repository) FindByRequestNumber(ctx context.Context, number string) (*domain.PasswordResetRequest, error) {
	return r.find(ctx, `
        SELECT `+columns+`
        FROM password_reset_requests
        WHERE request_number = $1
    `, number)
}

func (r *Repository) HasPending(ctx context.Context, email string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM password_reset_requests WHERE email = $1 AND status = 'pending'
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		zap.L().Error("can't check pending resets", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) RequestNumbers(ctx context.Context, like string) ([]string, error) {
	query := `
        SELECT request_number
        FROM password_reset_requests
        WHERE request_number LIKE $1
    `
	rows, err := r.db.Query(ctx, query, like)
	if err != nil {
		zap.L().Error("can't list request numbers", zap.String("like", like), zap.Error(err))
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

// Create inserts p under its request number. A second pending request for the
// same email fails with domain.ErrPendingExists rather than a plain conflict,
// so the allocator does not mistake it for a taken number.
func (r *Repository) Create(ctx context.Context, p *domain.PasswordResetRequest) error {
	query := `
        INSERT INTO password_reset_requests (request_number, email, user_type, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, requested_at
    `
	return r.txManager.Savepoint(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, p.RequestNumber, p.Email, p.UserType, p.Status).Scan(&p.ID, &p.RequestedAt)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == onePendingIndex {
			return domain.ErrPendingExists
		}
		zap.L().Debug("can't create password reset request", zap.String("requestNumber", p.RequestNumber), zap.Error(err))
		return err
	})
}

func (r *Repository) Update(ctx context.Context, p *domain.PasswordResetRequest) error {
	query := `
        UPDATE password_reset_requests
        SET status = $1, temp_password_plain = $2, password_hash = $3, expires_at = $4,
            processed_at = $5, processed_by = $6, rejection_reason = $7
        WHERE id = $8
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, p.Status, p.TempPasswordPlain, p.PasswordHash, p.ExpiresAt,
			p.ProcessedAt, p.ProcessedBy, p.RejectionReason, p.ID)
		if err != nil {
			zap.L().Error("can't update password reset request", zap.Int("requestID", p.ID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("password reset request %d: %w", p.ID, domain.ErrNotFound)
		}
		return nil
	})
}

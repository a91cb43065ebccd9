package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeNotNullViolation     = "23502"
	codeCheckViolation       = "23514"
	codeInvalidText          = "22P02"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
)

// Classify maps driver errors onto the domain taxonomy. pgx.ErrNoRows passes through untouched.
func Classify(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s: %w", domain.ErrConflict, pgErr.ConstraintName, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s: %w", domain.ErrNotFound, pgErr.ConstraintName, err)
		case codeNotNullViolation, codeCheckViolation, codeInvalidText:
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceled:
			return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		ctx != nil && errors.Is(ctx.Err(), context.DeadlineExceeded),
		pgconn.Timeout(err),
		errors.As(err, &connErr):
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

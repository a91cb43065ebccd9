package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrForbidden           = errors.New("forbidden")
	ErrAllocationExhausted = errors.New("identifier allocation exhausted")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrRateLimited         = errors.New("rate limited")

	ErrNoApplicableTariff = errors.New("no applicable tariff")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAlreadyClaimed     = errors.New("work order already claimed")
	ErrPendingExists      = fmt.Errorf("pending request already exists: %w", ErrConflict)
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// RateLimitError tells the caller when the window for its route class frees up.
type RateLimitError struct {
	Class   string
	Limit   int
	ResetAt time.Time
}

func (e RateLimitError) Error() string {
	return fmt.Sprintf("rate limit of %d exceeded for %s, retry at %s", e.Limit, e.Class, e.ResetAt.Format(time.RFC3339))
}

func (e RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// IsRetryable returns true for transient failures that may succeed on a later attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrConflict)
}

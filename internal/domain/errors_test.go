package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "validation error",
			err:    NewValidationError("billingMonth", "must be YYYY-MM-01"),
			target: ErrValidation,
		},
		{
			name:   "transition error",
			err:    TransitionError{Entity: "work order", From: "completed", To: "in_progress"},
			target: ErrInvalidTransition,
		},
		{
			name:   "rate limit error",
			err:    RateLimitError{Class: "login", Limit: 5, ResetAt: time.Now()},
			target: ErrRateLimited,
		},
		{
			name:   "wrapped validation error",
			err:    fmt.Errorf("record reading: %w", NewValidationError("currentReading", "below previous")),
			target: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(fmt.Errorf("insert: %w", ErrStoreUnavailable)))
	assert.True(t, IsRetryable(ErrConflict))
	assert.False(t, IsRetryable(ErrNotFound))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestCustomer_TariffCategory(t *testing.T) {
	assert.Equal(t, CategoryResidential, Customer{}.TariffCategory())
	assert.Equal(t, CategoryIndustrial, Customer{Category: CategoryIndustrial}.TariffCategory())
}

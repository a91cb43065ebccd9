package utils

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

// StatusFor maps the domain error taxonomy onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNoApplicableTariff):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, domain.ErrAllocationExhausted):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// RespondWithServiceError writes err with the status of its class. Errors
// outside the taxonomy are logged and reported without detail.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		RespondWithError(w, status, "Internal server error")
	case http.StatusServiceUnavailable:
		zap.L().Warn("request failed", zap.Error(err))
		RespondWithError(w, status, "Service temporarily unavailable")
	default:
		RespondWithError(w, status, err.Error())
	}
}

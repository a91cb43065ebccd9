package dto

import (
	"github.com/GlebRadaev/gridbill/internal/domain"
)

type ResetRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ali@example.com"`
	UserType string `json:"userType" validate:"required,oneof=customer employee" example:"customer"`
}

type ResetDecisionRequestDTO struct {
	Action string `json:"action" validate:"required,oneof=approve reject" example:"approve"`
	Reason string `json:"reason,omitempty" example:"Email does not match records"`
}

// ResetResponseDTO never carries the temporary password; applicants read it
// through the tracking endpoint.
type ResetResponseDTO struct {
	ID            int     `json:"id" example:"3"`
	RequestNumber string  `json:"requestNumber" example:"PWRST-2024-000003"`
	Status        string  `json:"status" example:"pending"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`
}

func NewResetResponse(p *domain.PasswordResetRequest) ResetResponseDTO {
	return ResetResponseDTO{
		ID:            p.ID,
		RequestNumber: p.RequestNumber,
		Status:        p.Status,
		ExpiresAt:     formatTime(p.ExpiresAt),
	}
}

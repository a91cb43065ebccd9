package dto

import (
	"time"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

type ConnectionApplyRequestDTO struct {
	ApplicantName   string `json:"applicantName" validate:"required,max=120" example:"Ali Raza"`
	Email           string `json:"email" validate:"required,email" example:"ali@example.com"`
	Phone           string `json:"phone" validate:"required,max=20" example:"03001234567"`
	PropertyAddress string `json:"propertyAddress" validate:"required" example:"House 12, Block C"`
	City            string `json:"city" validate:"required" example:"Lahore"`
	ConnectionType  string `json:"connectionType" validate:"required" example:"residential"`
}

type ConnectionActionRequestDTO struct {
	Action         string     `json:"action" validate:"required,oneof=schedule_inspection approve reject connect" example:"approve"`
	InspectionDate *time.Time `json:"inspectionDate,omitempty" example:"2024-03-21T10:00:00Z"`
	Reason         string     `json:"reason,omitempty" example:"Unsafe wiring"`
	EmployeeID     *int       `json:"employeeId,omitempty" example:"7"`
}

type ConnectionResponseDTO struct {
	ID                int     `json:"id" example:"4"`
	ApplicationNumber string  `json:"applicationNumber" example:"APP-2024-000010"`
	Status            string  `json:"status" example:"approved"`
	AccountNumber     *string `json:"accountNumber,omitempty" example:"ELX-2024-000042"`
	TemporaryPassword *string `json:"temporaryPassword,omitempty" example:"aB3@kLm9#xYz"`
	CustomerID        *int    `json:"customerId,omitempty" example:"55"`
	InspectionDate    *string `json:"inspectionDate,omitempty"`
	ApprovalDate      *string `json:"approvalDate,omitempty"`
	ConnectedDate     *string `json:"connectedDate,omitempty"`
	RejectionReason   *string `json:"rejectionReason,omitempty"`
}

func NewConnectionResponse(c *domain.ConnectionRequest) ConnectionResponseDTO {
	return ConnectionResponseDTO{
		ID:                c.ID,
		ApplicationNumber: c.ApplicationNumber,
		Status:            c.Status,
		AccountNumber:     c.AccountNumber,
		TemporaryPassword: c.VisiblePassword(),
		CustomerID:        c.CustomerID,
		InspectionDate:    formatTime(c.InspectionDate),
		ApprovalDate:      formatTime(c.ApprovalDate),
		ConnectedDate:     formatTime(c.ConnectedDate),
		RejectionReason:   c.RejectionReason,
	}
}

package dto

import (
	"time"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

type CreateWorkOrderRequestDTO struct {
	CustomerID  *int       `json:"customerId,omitempty" example:"42"`
	EmployeeID  *int       `json:"employeeId,omitempty" example:"7"`
	WorkType    string     `json:"workType" validate:"required,oneof=meter_reading new_connection maintenance complaint_resolution bill_generation" example:"maintenance"`
	Title       string     `json:"title" validate:"required,max=200" example:"Replace transformer fuse"`
	Description string     `json:"description" example:"Fuse blown on pole 14"`
	Priority    string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high" example:"high"`
	DueDate     *time.Time `json:"dueDate,omitempty" example:"2024-03-25T00:00:00Z"`
}

type UpdateWorkOrderStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"in_progress"`
	Notes  string `json:"notes,omitempty" example:"Reading 10234 recorded"`
}

type ReadingRequestDTO struct {
	Reason string `json:"reason,omitempty" validate:"max=500" example:"Moving out at month end"`
}

type WorkOrderResponseDTO struct {
	ID              int     `json:"id" example:"12"`
	CustomerID      *int    `json:"customerId,omitempty" example:"42"`
	EmployeeID      *int    `json:"employeeId,omitempty" example:"7"`
	WorkType        string  `json:"workType" example:"meter_reading"`
	Title           string  `json:"title" example:"Meter reading request"`
	Description     string  `json:"description,omitempty"`
	Priority        string  `json:"priority" example:"medium"`
	Status          string  `json:"status" example:"assigned"`
	DueDate         string  `json:"dueDate" example:"2024-03-25T09:00:00Z"`
	CompletionDate  *string `json:"completionDate,omitempty"`
	CompletionNotes *string `json:"completionNotes,omitempty"`
}

func NewWorkOrderResponse(w *domain.WorkOrder) WorkOrderResponseDTO {
	return WorkOrderResponseDTO{
		ID:              w.ID,
		CustomerID:      w.CustomerID,
		EmployeeID:      w.EmployeeID,
		WorkType:        w.WorkType,
		Title:           w.Title,
		Description:     w.Description,
		Priority:        w.Priority,
		Status:          w.Status,
		DueDate:         w.DueDate.UTC().Format(time.RFC3339),
		CompletionDate:  formatTime(w.CompletionDate),
		CompletionNotes: w.CompletionNotes,
	}
}

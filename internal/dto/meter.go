package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/service/meterservice"
)

type MeterReadingRequestDTO struct {
	CustomerID     int             `json:"customerId" validate:"required,gt=0" example:"42"`
	CurrentReading decimal.Decimal `json:"currentReading" swaggertype:"string" example:"1375.5"`
	ReadingDate    *time.Time      `json:"readingDate,omitempty" example:"2024-03-28T10:00:00Z"`
}

type InstallMeterRequestDTO struct {
	InitialReading decimal.Decimal `json:"initialReading" swaggertype:"string" example:"0"`
}

type MeterReadingResponseDTO struct {
	ID              int             `json:"id" example:"90"`
	CustomerID      int             `json:"customerId" example:"42"`
	ReadingDate     string          `json:"readingDate" example:"2024-03-28T10:00:00Z"`
	PreviousReading decimal.Decimal `json:"previousReading" swaggertype:"string" example:"1125"`
	CurrentReading  decimal.Decimal `json:"currentReading" swaggertype:"string" example:"1375.5"`
	UnitsConsumed   decimal.Decimal `json:"unitsConsumed" swaggertype:"string" example:"250.5"`
	EmployeeID      *int            `json:"employeeId,omitempty" example:"7"`
}

func NewMeterReadingResponse(m *domain.MeterReading) MeterReadingResponseDTO {
	return MeterReadingResponseDTO{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		ReadingDate:     m.ReadingDate.UTC().Format(time.RFC3339),
		PreviousReading: m.PreviousReading,
		CurrentReading:  m.CurrentReading,
		UnitsConsumed:   m.UnitsConsumed,
		EmployeeID:      m.EmployeeID,
	}
}

type InstallationResponseDTO struct {
	CustomerID     int                     `json:"customerId" example:"42"`
	MeterNumber    string                  `json:"meterNumber" example:"MTR-LHE-000017"`
	Status         string                  `json:"status" example:"active"`
	InitialReading MeterReadingResponseDTO `json:"initialReading"`
}

func NewInstallationResponse(i *meterservice.Installation) InstallationResponseDTO {
	return InstallationResponseDTO{
		CustomerID:     i.CustomerID,
		MeterNumber:    i.MeterNumber,
		Status:         i.Status,
		InitialReading: NewMeterReadingResponse(i.InitialReading),
	}
}

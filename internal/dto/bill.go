package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/period"
)

const dateLayout = "2006-01-02"

type GenerateBulkRequestDTO struct {
	BillingMonth string `json:"billingMonth" validate:"required" example:"2024-03-01"`
}

type GenerateBillRequestDTO struct {
	CustomerID   int    `json:"customerId" validate:"required,gt=0" example:"42"`
	BillingMonth string `json:"billingMonth" validate:"required" example:"2024-03-01"`
}

type PreviewBillRequestDTO struct {
	CustomerID   int             `json:"customerId" validate:"required,gt=0" example:"42"`
	Units        decimal.Decimal `json:"units" swaggertype:"string" example:"250"`
	BillingMonth string          `json:"billingMonth" validate:"required" example:"2024-03-01"`
}

type BillResponseDTO struct {
	BillNumber      string          `json:"billNumber" example:"BILL-202403-00000422"`
	CustomerID      int             `json:"customerId" example:"42"`
	BillingMonth    string          `json:"billingMonth" example:"2024-03-01"`
	IssueDate       string          `json:"issueDate" example:"2024-04-01"`
	DueDate         string          `json:"dueDate" example:"2024-04-16"`
	UnitsConsumed   decimal.Decimal `json:"unitsConsumed" swaggertype:"string" example:"250"`
	BaseAmount      decimal.Decimal `json:"baseAmount" swaggertype:"string" example:"1700.00"`
	FixedCharges    decimal.Decimal `json:"fixedCharges" swaggertype:"string" example:"150.00"`
	ElectricityDuty decimal.Decimal `json:"electricityDuty" swaggertype:"string" example:"25.50"`
	GSTAmount       decimal.Decimal `json:"gstAmount" swaggertype:"string" example:"289.00"`
	TotalAmount     decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"2164.50"`
	Status          string          `json:"status" example:"issued"`
	PaymentDate     *string         `json:"paymentDate,omitempty" example:"2024-04-10"`
}

func NewBillResponse(b *domain.Bill) BillResponseDTO {
	resp := BillResponseDTO{
		BillNumber:      b.BillNumber,
		CustomerID:      b.CustomerID,
		BillingMonth:    period.Format(b.BillingMonth),
		IssueDate:       b.IssueDate.Format(dateLayout),
		DueDate:         b.DueDate.Format(dateLayout),
		UnitsConsumed:   b.UnitsConsumed,
		BaseAmount:      b.BaseAmount,
		FixedCharges:    b.FixedCharges,
		ElectricityDuty: b.ElectricityDuty,
		GSTAmount:       b.GSTAmount,
		TotalAmount:     b.TotalAmount,
		Status:          b.Status,
	}
	if b.PaymentDate != nil {
		paid := b.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &paid
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

type PaymentRequestDTO struct {
	BillNumber string          `json:"billNumber" validate:"required" example:"BILL-202403-00000422"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"2164.50"`
	Method     string          `json:"method" validate:"required,oneof=credit_card debit_card bank_transfer cash cheque upi wallet" example:"cash"`
}

type PaymentResponseDTO struct {
	ID             int             `json:"id" example:"1"`
	BillID         int             `json:"billId" example:"9"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"2164.50"`
	Method         string          `json:"method" example:"cash"`
	TransactionRef string          `json:"transactionRef" example:"TXN-9F86D081884C7D65"`
	Status         string          `json:"status" example:"completed"`
	PaymentDate    string          `json:"paymentDate" example:"2024-04-10T09:15:00Z"`
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:             p.ID,
		BillID:         p.BillID,
		Amount:         p.Amount,
		Method:         p.Method,
		TransactionRef: p.TransactionRef,
		Status:         p.Status,
		PaymentDate:    p.PaymentDate.UTC().Format(time.RFC3339),
	}
}

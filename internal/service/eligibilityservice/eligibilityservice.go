// Package eligibilityservice decides whether a customer may ask for a new
// meter reading.
package eligibilityservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/period"
)

const (
	ReasonBillExists     = "Bill already exists for this month"
	ReasonPendingRequest = "You already have a pending meter reading request"
)

type BillRepo interface {
	ExistsForMonth(ctx context.Context, customerID int, month time.Time) (bool, error)
}

type WorkOrderRepo interface {
	HasOpen(ctx context.Context, customerID int, workType string) (bool, error)
}

type Eligibility struct {
	CanRequestReading bool   `json:"canRequestReading"`
	Reason            string `json:"reason,omitempty"`
}

type Service struct {
	bills  BillRepo
	orders WorkOrderRepo
}

func New(bills BillRepo, orders WorkOrderRepo) *Service {
	return &Service{bills: bills, orders: orders}
}

// CanRequestMeterReading is read only. A bill for the current month or an
// open meter_reading work order makes the customer ineligible.
func (s *Service) CanRequestMeterReading(ctx context.Context, customerID int, now time.Time) (*Eligibility, error) {
	billed, err := s.bills.ExistsForMonth(ctx, customerID, period.Month(now))
	if err != nil {
		return nil, err
	}
	if billed {
		return &Eligibility{Reason: ReasonBillExists}, nil
	}

	open, err := s.orders.HasOpen(ctx, customerID, domain.WorkMeterReading)
	if err != nil {
		return nil, err
	}
	if open {
		return &Eligibility{Reason: ReasonPendingRequest}, nil
	}
	return &Eligibility{CanRequestReading: true}, nil
}

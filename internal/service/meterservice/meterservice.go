package meterservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/allocator"
	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

type CustomerRepo interface {
	LockByID(ctx context.Context, id int) (*domain.Customer, error)
	MeterNumbers(ctx context.Context, like string) ([]string, error)
	AssignMeter(ctx context.Context, customerID int, meterNumber string) error
	UpdateStatus(ctx context.Context, customerID int, status string) error
}

type ReadingRepo interface {
	Latest(ctx context.Context, customerID int) (*domain.MeterReading, error)
	Create(ctx context.Context, m *domain.MeterReading) error
}

type ReadingOrders interface {
	CompleteReadingOrder(ctx context.Context, customerID, employeeID int, at time.Time) (bool, error)
}

type IDAllocator interface {
	Allocate(ctx context.Context, scheme allocator.Scheme, partition string, list allocator.ListFunc, claim allocator.ClaimFunc) (string, error)
}

var ErrCustomerNotFound = fmt.Errorf("customer: %w", domain.ErrNotFound)

type ReadingInput struct {
	CustomerID     int
	CurrentReading decimal.Decimal
	ReadingDate    *time.Time
}

type Installation struct {
	CustomerID     int                  `json:"customerId"`
	MeterNumber    string               `json:"meterNumber"`
	Status         string               `json:"status"`
	InitialReading *domain.MeterReading `json:"initialReading"`
}

type Service struct {
	txManager pg.TXManager
	customers CustomerRepo
	readings  ReadingRepo
	orders    ReadingOrders
	ids       IDAllocator
	now       func() time.Time
}

func New(txManager pg.TXManager, customers CustomerRepo, readings ReadingRepo, orders ReadingOrders, ids IDAllocator) *Service {
	return &Service{
		txManager: txManager,
		customers: customers,
		readings:  readings,
		orders:    orders,
		ids:       ids,
		now:       time.Now,
	}
}

// Install gives a pending customer a meter number from the zone of its
// city, activates the customer and stores the starting reading.
func (s *Service) Install(ctx context.Context, actor auth.Actor, customerID int, initial decimal.Decimal) (*Installation, error) {
	if initial.IsNegative() {
		return nil, domain.NewValidationError("initialReading", "must not be negative")
	}

	var result *Installation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customers.LockByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		if customer.Status != domain.CustomerPendingInstallation || customer.MeterNumber != nil {
			return domain.TransitionError{Entity: "customer", From: customer.Status, To: domain.CustomerActive}
		}

		meterNumber, err := s.ids.Allocate(ctx, allocator.MeterNumber, allocator.ZoneCode(customer.City),
			s.customers.MeterNumbers,
			func(ctx context.Context, id string) error {
				return s.customers.AssignMeter(ctx, customerID, id)
			})
		if err != nil {
			return err
		}
		if err := s.customers.UpdateStatus(ctx, customerID, domain.CustomerActive); err != nil {
			return err
		}

		reading := &domain.MeterReading{
			CustomerID:      customerID,
			ReadingDate:     s.now().UTC(),
			PreviousReading: initial,
			CurrentReading:  initial,
			UnitsConsumed:   decimal.Zero,
			EmployeeID:      employeeID(actor),
		}
		if err := s.readings.Create(ctx, reading); err != nil {
			return err
		}
		result = &Installation{
			CustomerID:     customerID,
			MeterNumber:    meterNumber,
			Status:         domain.CustomerActive,
			InitialReading: reading,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("meter installed", zap.Int("customerID", customerID), zap.String("meterNumber", result.MeterNumber))
	return result, nil
}

// RecordReading stores a reading against the latest one. The employee's open
// meter_reading order for the customer is completed in the same transaction.
func (s *Service) RecordReading(ctx context.Context, actor auth.Actor, in ReadingInput) (*domain.MeterReading, error) {
	now := s.now().UTC()
	readingDate := now
	if in.ReadingDate != nil {
		readingDate = in.ReadingDate.UTC()
	}
	if readingDate.After(now) {
		return nil, domain.NewValidationError("readingDate", "must not be in the future")
	}
	if in.CurrentReading.IsNegative() {
		return nil, domain.NewValidationError("currentReading", "must not be negative")
	}

	var reading *domain.MeterReading
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customers.LockByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		if customer.Status != domain.CustomerActive {
			return domain.NewValidationError("customerId", "customer is not active")
		}

		previous := decimal.Zero
		latest, err := s.readings.Latest(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if latest != nil {
			previous = latest.CurrentReading
		}
		if in.CurrentReading.LessThan(previous) {
			return domain.NewValidationError("currentReading",
				fmt.Sprintf("must not be below the previous reading %s", previous.String()))
		}

		reading = &domain.MeterReading{
			CustomerID:      in.CustomerID,
			ReadingDate:     readingDate,
			PreviousReading: previous,
			CurrentReading:  in.CurrentReading,
			UnitsConsumed:   in.CurrentReading.Sub(previous),
			EmployeeID:      employeeID(actor),
		}
		if err := s.readings.Create(ctx, reading); err != nil {
			return err
		}

		if actor.IsEmployee() {
			if _, err := s.orders.CompleteReadingOrder(ctx, in.CustomerID, actor.ID, readingDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Debug("meter reading recorded",
		zap.Int("customerID", in.CustomerID),
		zap.String("units", reading.UnitsConsumed.String()),
	)
	return reading, nil
}

func employeeID(actor auth.Actor) *int {
	if !actor.IsEmployee() {
		return nil
	}
	id := actor.ID
	return &id
}

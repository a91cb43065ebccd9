package workorderservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/service/eligibilityservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

const (
	DefaultDueDays     = 7
	readingRequestName = "Meter reading request"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.WorkOrder, error)
	LockByID(ctx context.Context, id int) (*domain.WorkOrder, error)
	FindOpen(ctx context.Context, customerID int, workType string) (*domain.WorkOrder, error)
	Create(ctx context.Context, w *domain.WorkOrder) error
	Update(ctx context.Context, w *domain.WorkOrder) error
}

type CustomerRepo interface {
	LockByID(ctx context.Context, id int) (*domain.Customer, error)
}

type EligibilityChecker interface {
	CanRequestMeterReading(ctx context.Context, customerID int, now time.Time) (*eligibilityservice.Eligibility, error)
}

var (
	ErrWorkOrderNotFound = fmt.Errorf("work order: %w", domain.ErrNotFound)
	ErrCustomerNotFound  = fmt.Errorf("customer: %w", domain.ErrNotFound)
	ErrNotEligible       = fmt.Errorf("meter reading request: %w", domain.ErrConflict)
	ErrNotHandler        = fmt.Errorf("work order is handled by another employee: %w", domain.ErrForbidden)
)

type CreateInput struct {
	CustomerID  *int
	EmployeeID  *int
	WorkType    string
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

type Service struct {
	txManager   pg.TXManager
	orders      Repo
	customers   CustomerRepo
	eligibility EligibilityChecker
	now         func() time.Time
}

func New(txManager pg.TXManager, orders Repo, customers CustomerRepo, eligibility EligibilityChecker) *Service {
	return &Service{
		txManager:   txManager,
		orders:      orders,
		customers:   customers,
		eligibility: eligibility,
		now:         time.Now,
	}
}

func (s *Service) Get(ctx context.Context, id int) (*domain.WorkOrder, error) {
	w, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkOrderNotFound
	}
	return w, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.WorkOrder, error) {
	now := s.now().UTC()
	due := now.AddDate(0, 0, DefaultDueDays)
	if in.DueDate != nil {
		if in.DueDate.Before(now.Truncate(24 * time.Hour)) {
			return nil, domain.NewValidationError("dueDate", "must not be in the past")
		}
		due = *in.DueDate
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	w := &domain.WorkOrder{
		CustomerID:  in.CustomerID,
		EmployeeID:  in.EmployeeID,
		WorkType:    in.WorkType,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      domain.WorkOrderAssigned,
		DueDate:     due,
	}
	if err := s.orders.Create(ctx, w); err != nil {
		return nil, err
	}
	zap.L().Info("work order created", zap.Int("workOrderID", w.ID), zap.String("workType", w.WorkType))
	return w, nil
}

// ChangeStatus maps a requested status onto the lifecycle: in_progress claims
// the order, completed and cancelled finish it. Only the handling employee or
// an admin may finish an order.
func (s *Service) ChangeStatus(ctx context.Context, actor auth.Actor, id int, status, notes string) (*domain.WorkOrder, error) {
	if actor.IsCustomer() {
		return nil, fmt.Errorf("customers cannot change work orders: %w", domain.ErrForbidden)
	}

	var w *domain.WorkOrder
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		w, err = s.orders.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if w == nil {
			return ErrWorkOrderNotFound
		}

		switch status {
		case domain.WorkOrderInProgress:
			err = s.claim(actor, w)
		case domain.WorkOrderCompleted:
			if !actor.IsAdmin() && !w.IsHandledBy(actor.ID) {
				return ErrNotHandler
			}
			err = w.Complete(notes, s.now().UTC())
		case domain.WorkOrderCancelled:
			if !actor.IsAdmin() && !w.IsHandledBy(actor.ID) {
				return ErrNotHandler
			}
			err = w.Cancel()
		default:
			err = domain.TransitionError{Entity: "work order", From: w.Status, To: status}
		}
		if err != nil {
			return err
		}
		return s.orders.Update(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("work order status changed",
		zap.Int("workOrderID", w.ID),
		zap.String("status", w.Status),
		zap.Int("actorID", actor.ID),
	)
	return w, nil
}

func (s *Service) claim(actor auth.Actor, w *domain.WorkOrder) error {
	if actor.IsEmployee() {
		return w.Claim(actor.ID)
	}
	if w.EmployeeID == nil {
		return domain.NewValidationError("employeeId", "assign an employee before starting the work order")
	}
	return w.Claim(*w.EmployeeID)
}

// RequestMeterReading opens a meter_reading work order for the customer. The
// eligibility gate runs again while the customer row is locked so two rapid
// requests cannot both pass it.
func (s *Service) RequestMeterReading(ctx context.Context, customerID int, reason string) (*domain.WorkOrder, error) {
	var w *domain.WorkOrder
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		customer, err := s.customers.LockByID(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		if customer.Status != domain.CustomerActive {
			return domain.NewValidationError("customerId", "customer is not active")
		}

		eligibility, err := s.eligibility.CanRequestMeterReading(ctx, customerID, s.now())
		if err != nil {
			return err
		}
		if !eligibility.CanRequestReading {
			return fmt.Errorf("%s: %w", eligibility.Reason, ErrNotEligible)
		}

		now := s.now().UTC()
		w = &domain.WorkOrder{
			CustomerID:  &customerID,
			WorkType:    domain.WorkMeterReading,
			Title:       readingRequestName,
			Description: reason,
			Priority:    domain.PriorityMedium,
			Status:      domain.WorkOrderAssigned,
			DueDate:     now.AddDate(0, 0, DefaultDueDays),
		}
		return s.orders.Create(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// CompleteReadingOrder closes the customer's open meter_reading order when it
// is unassigned or assigned to employeeID. It reports whether an order was
// closed.
func (s *Service) CompleteReadingOrder(ctx context.Context, customerID, employeeID int, at time.Time) (bool, error) {
	w, err := s.orders.FindOpen(ctx, customerID, domain.WorkMeterReading)
	if err != nil {
		return false, err
	}
	if w == nil || (w.EmployeeID != nil && *w.EmployeeID != employeeID) {
		return false, nil
	}
	if w.Status == domain.WorkOrderAssigned {
		if err := w.Claim(employeeID); err != nil {
			return false, err
		}
	}
	if err := w.Complete("Meter reading recorded", at); err != nil {
		return false, err
	}
	if err := s.orders.Update(ctx, w); err != nil {
		return false, err
	}
	return true, nil
}

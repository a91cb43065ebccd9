package connectionservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/allocator"
	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/events"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/service/workorderservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

const (
	ActionScheduleInspection = "schedule_inspection"
	ActionApprove            = "approve"
	ActionReject             = "reject"
	ActionConnect            = "connect"
)

type Repo interface {
	LockByID(ctx context.Context, id int) (*domain.ConnectionRequest, error)
	FindByApplicationNumber(ctx context.Context, number string) (*domain.ConnectionRequest, error)
	ApplicationNumbers(ctx context.Context, like string) ([]string, error)
	AccountNumbers(ctx context.Context, like string) ([]string, error)
	Create(ctx context.Context, c *domain.ConnectionRequest) error
	SetAccountNumber(ctx context.Context, id int, accountNumber string) error
	Update(ctx context.Context, c *domain.ConnectionRequest) error
}

type CustomerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
}

type WorkOrderCreator interface {
	Create(ctx context.Context, in workorderservice.CreateInput) (*domain.WorkOrder, error)
}

type IDAllocator interface {
	Allocate(ctx context.Context, scheme allocator.Scheme, partition string, list allocator.ListFunc, claim allocator.ClaimFunc) (string, error)
}

var ErrRequestNotFound = fmt.Errorf("connection request: %w", domain.ErrNotFound)

type ApplyInput struct {
	ApplicantName   string
	Email           string
	Phone           string
	PropertyAddress string
	City            string
	ConnectionType  string
}

type ActionInput struct {
	Action         string
	InspectionDate *time.Time
	Reason         string
	EmployeeID     *int
}

// Tracking is the public view of a request.
type Tracking struct {
	ApplicationNumber string     `json:"applicationNumber"`
	Status            string     `json:"status"`
	ApplicationDate   time.Time  `json:"applicationDate"`
	InspectionDate    *time.Time `json:"inspectionDate,omitempty"`
	ApprovalDate      *time.Time `json:"approvalDate,omitempty"`
	ConnectedDate     *time.Time `json:"connectedDate,omitempty"`
	AccountNumber     *string    `json:"accountNumber,omitempty"`
	TemporaryPassword *string    `json:"temporaryPassword,omitempty"`
	RejectionReason   *string    `json:"rejectionReason,omitempty"`
	DebugCode         string     `json:"debugCode,omitempty"`
}

type Options struct {
	CodeSecret     string
	DevExposeCodes bool
}

type Service struct {
	txManager pg.TXManager
	requests  Repo
	customers CustomerRepo
	orders    WorkOrderCreator
	ids       IDAllocator
	hasher    auth.HashServiceInterface
	publisher events.Publisher
	opts      Options
	now       func() time.Time
}

func New(txManager pg.TXManager, requests Repo, customers CustomerRepo, orders WorkOrderCreator, ids IDAllocator,
	hasher auth.HashServiceInterface, publisher events.Publisher, opts Options) *Service {
	return &Service{
		txManager: txManager,
		requests:  requests,
		customers: customers,
		orders:    orders,
		ids:       ids,
		hasher:    hasher,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (*domain.ConnectionRequest, error) {
	c := &domain.ConnectionRequest{
		ApplicantName:   in.ApplicantName,
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:           in.Phone,
		PropertyAddress: in.PropertyAddress,
		City:            in.City,
		ConnectionType:  in.ConnectionType,
		Status:          domain.ConnectionApplied,
	}
	year := strconv.Itoa(s.now().UTC().Year())

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.ids.Allocate(ctx, allocator.ApplicationNumber, year, s.requests.ApplicationNumbers,
			func(ctx context.Context, id string) error {
				c.ApplicationNumber = id
				return s.requests.Create(ctx, c)
			})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("connection request received", zap.String("applicationNumber", c.ApplicationNumber))
	s.publish(ctx, events.ConnectionAdvanced, map[string]string{
		"applicationNumber": c.ApplicationNumber,
		"status":            c.Status,
	})
	return c, nil
}

// Advance applies an admin action to the request. Approval issues the
// account number and the temporary credential in the same transaction.
func (s *Service) Advance(ctx context.Context, actor auth.Actor, id int, in ActionInput) (*domain.ConnectionRequest, error) {
	var c *domain.ConnectionRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.requests.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrRequestNotFound
		}

		now := s.now().UTC()
		switch in.Action {
		case ActionScheduleInspection:
			if in.InspectionDate == nil {
				return domain.NewValidationError("inspectionDate", "is required")
			}
			if err := c.MoveTo(domain.ConnectionInspectionScheduled); err != nil {
				return err
			}
			c.InspectionDate = in.InspectionDate
		case ActionApprove:
			err = s.approve(ctx, c, in.EmployeeID, now)
		case ActionReject:
			if strings.TrimSpace(in.Reason) == "" {
				return domain.NewValidationError("reason", "is required")
			}
			if err := c.MoveTo(domain.ConnectionRejected); err != nil {
				return err
			}
			c.RejectionReason = &in.Reason
		case ActionConnect:
			err = s.connect(ctx, c, now)
		default:
			return domain.NewValidationError("action", "must be one of schedule_inspection approve reject connect")
		}
		if err != nil {
			return err
		}
		return s.requests.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("connection request advanced",
		zap.String("applicationNumber", c.ApplicationNumber),
		zap.String("status", c.Status),
		zap.Int("actorID", actor.ID),
	)
	if c.Status == domain.ConnectionApproved {
		zap.L().Info("credential issued",
			zap.String("applicationNumber", c.ApplicationNumber),
			zap.Stringp("accountNumber", c.AccountNumber),
		)
		s.publish(ctx, events.CredentialIssued, map[string]any{
			"applicationNumber": c.ApplicationNumber,
			"accountNumber":     c.AccountNumber,
			"approvedBy":        actor.ID,
		})
	}
	s.publish(ctx, events.ConnectionAdvanced, map[string]string{
		"applicationNumber": c.ApplicationNumber,
		"status":            c.Status,
	})
	return c, nil
}

func (s *Service) approve(ctx context.Context, c *domain.ConnectionRequest, employeeID *int, now time.Time) error {
	if err := c.MoveTo(domain.ConnectionApproved); err != nil {
		return err
	}

	account, err := s.ids.Allocate(ctx, allocator.AccountNumber, strconv.Itoa(now.Year()), s.requests.AccountNumbers,
		func(ctx context.Context, number string) error {
			return s.requests.SetAccountNumber(ctx, c.ID, number)
		})
	if err != nil {
		return err
	}
	c.AccountNumber = &account

	password, err := auth.GeneratePassword(auth.TemporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}
	c.TemporaryPassword = &password
	c.PasswordHash = &hash
	c.ApprovalDate = &now

	if employeeID != nil {
		description := fmt.Sprintf("Install connection %s at %s, %s", c.ApplicationNumber, c.PropertyAddress, c.City)
		due := now.AddDate(0, 0, workorderservice.DefaultDueDays)
		if _, err := s.orders.Create(ctx, workorderservice.CreateInput{
			EmployeeID:  employeeID,
			WorkType:    domain.WorkNewConnection,
			Title:       "New connection " + c.ApplicationNumber,
			Description: description,
			Priority:    domain.PriorityMedium,
			DueDate:     &due,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) connect(ctx context.Context, c *domain.ConnectionRequest, now time.Time) error {
	if err := c.MoveTo(domain.ConnectionConnected); err != nil {
		return err
	}
	if c.AccountNumber == nil {
		return domain.TransitionError{Entity: "connection request", From: domain.ConnectionApproved, To: domain.ConnectionConnected}
	}

	customer := &domain.Customer{
		AccountNumber: *c.AccountNumber,
		FullName:      c.ApplicantName,
		Email:         c.Email,
		City:          c.City,
		Category:      Category(c.ConnectionType),
		Status:        domain.CustomerPendingInstallation,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return err
	}
	c.CustomerID = &customer.ID
	c.ConnectedDate = &now
	return nil
}

// Track returns the public view of a request. The temporary password is
// included only while the request is approved.
func (s *Service) Track(ctx context.Context, applicationNumber string) (*Tracking, error) {
	c, err := s.requests.FindByApplicationNumber(ctx, applicationNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrRequestNotFound
	}

	t := &Tracking{
		ApplicationNumber: c.ApplicationNumber,
		Status:            c.Status,
		ApplicationDate:   c.ApplicationDate,
		InspectionDate:    c.InspectionDate,
		ApprovalDate:      c.ApprovalDate,
		ConnectedDate:     c.ConnectedDate,
		TemporaryPassword: c.VisiblePassword(),
		RejectionReason:   c.RejectionReason,
	}
	if c.Status == domain.ConnectionApproved || c.Status == domain.ConnectionConnected {
		t.AccountNumber = c.AccountNumber
	}
	if s.opts.DevExposeCodes {
		t.DebugCode = auth.VerificationCode(s.opts.CodeSecret, c.ApplicationNumber, c.Email)
	}
	return t, nil
}

// Category maps a connection type onto a tariff category.
func Category(connectionType string) string {
	switch strings.ToLower(strings.TrimSpace(connectionType)) {
	case "commercial":
		return domain.CategoryCommercial
	case "industrial":
		return domain.CategoryIndustrial
	case "agricultural":
		return domain.CategoryAgricultural
	default:
		return domain.CategoryResidential
	}
}

func (s *Service) publish(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.New(eventType, payload)); err != nil {
		zap.L().Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}

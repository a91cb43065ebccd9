package resetservice

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
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Repo interface {
	LockByID(ctx context.Context, id int) (*domain.PasswordResetRequest, error)
	FindByRequestNumber(ctx context.Context, number string) (*domain.PasswordResetRequest, error)
	HasPending(ctx context.Context, email string) (bool, error)
	RequestNumbers(ctx context.Context, like string) ([]string, error)
	Create(ctx context.Context, p *domain.PasswordResetRequest) error
	Update(ctx context.Context, p *domain.PasswordResetRequest) error
}

type IDAllocator interface {
	Allocate(ctx context.Context, scheme allocator.Scheme, partition string, list allocator.ListFunc, claim allocator.ClaimFunc) (string, error)
}

var ErrRequestNotFound = fmt.Errorf("password reset request: %w", domain.ErrNotFound)

// Tracking is the public view of a reset request.
type Tracking struct {
	RequestNumber     string     `json:"requestNumber"`
	Status            string     `json:"status"`
	RequestedAt       time.Time  `json:"requestedAt"`
	ProcessedAt       *time.Time `json:"processedAt,omitempty"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	TemporaryPassword *string    `json:"temporaryPassword,omitempty"`
	RejectionReason   *string    `json:"rejectionReason,omitempty"`
}

type Service struct {
	txManager pg.TXManager
	requests  Repo
	ids       IDAllocator
	hasher    auth.HashServiceInterface
	publisher events.Publisher
	expiry    time.Duration
	now       func() time.Time
}

func New(txManager pg.TXManager, requests Repo, ids IDAllocator, hasher auth.HashServiceInterface,
	publisher events.Publisher, expiry time.Duration) *Service {
	return &Service{
		txManager: txManager,
		requests:  requests,
		ids:       ids,
		hasher:    hasher,
		publisher: publisher,
		expiry:    expiry,
		now:       time.Now,
	}
}

// Request opens a reset request for email. Only one request per email may be
// pending; the partial unique index decides when two callers race.
func (s *Service) Request(ctx context.Context, email, userType string) (*domain.PasswordResetRequest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if userType != domain.RoleCustomer && userType != domain.RoleEmployee {
		return nil, domain.NewValidationError("userType", "must be customer or employee")
	}

	pending, err := s.requests.HasPending(ctx, email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrPendingExists
	}

	p := &domain.PasswordResetRequest{
		Email:    email,
		UserType: userType,
		Status:   domain.ResetPending,
	}
	year := strconv.Itoa(s.now().UTC().Year())
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.ids.Allocate(ctx, allocator.ResetNumber, year, s.requests.RequestNumbers,
			func(ctx context.Context, id string) error {
				p.RequestNumber = id
				return s.requests.Create(ctx, p)
			})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("password reset requested", zap.String("requestNumber", p.RequestNumber))
	return p, nil
}

// Decide approves or rejects a pending request. Approval issues a temporary
// password valid until now + expiry.
func (s *Service) Decide(ctx context.Context, actor auth.Actor, id int, action, reason string) (*domain.PasswordResetRequest, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins decide password resets: %w", domain.ErrForbidden)
	}
	if action != ActionApprove && action != ActionReject {
		return nil, domain.NewValidationError("action", "must be approve or reject")
	}
	if action == ActionReject && strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}

	var p *domain.PasswordResetRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.requests.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrRequestNotFound
		}

		now := s.now().UTC()
		if action == ActionReject {
			if err := p.Decide(domain.ResetRejected, now, actor.ID); err != nil {
				return err
			}
			p.RejectionReason = &reason
			return s.requests.Update(ctx, p)
		}

		if err := p.Decide(domain.ResetApproved, now, actor.ID); err != nil {
			return err
		}
		password, err := auth.GeneratePassword(auth.TemporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		hash, err := s.hasher.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash temporary password: %w", err)
		}
		expires := now.Add(s.expiry)
		p.TempPasswordPlain = &password
		p.PasswordHash = &hash
		p.ExpiresAt = &expires
		return s.requests.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("password reset decided",
		zap.String("requestNumber", p.RequestNumber),
		zap.String("status", p.Status),
		zap.Int("actorID", actor.ID),
	)
	if p.Status == domain.ResetApproved && s.publisher != nil {
		err := s.publisher.Publish(ctx, events.New(events.ResetApproved, map[string]any{
			"requestNumber": p.RequestNumber,
			"userType":      p.UserType,
			"expiresAt":     p.ExpiresAt,
		}))
		if err != nil {
			zap.L().Warn("failed to publish event", zap.String("type", events.ResetApproved), zap.Error(err))
		}
	}
	return p, nil
}

// Track returns the public view of a request. The temporary password is only
// included while the request is approved and unexpired.
func (s *Service) Track(ctx context.Context, requestNumber string) (*Tracking, error) {
	p, err := s.requests.FindByRequestNumber(ctx, requestNumber)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrRequestNotFound
	}
	return &Tracking{
		RequestNumber:     p.RequestNumber,
		Status:            p.Status,
		RequestedAt:       p.RequestedAt,
		ProcessedAt:       p.ProcessedAt,
		ExpiresAt:         p.ExpiresAt,
		TemporaryPassword: p.VisiblePassword(s.now()),
		RejectionReason:   p.RejectionReason,
	}, nil
}

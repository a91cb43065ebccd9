// Package events emits audit events for billing runs and credential issuance.
// Delivery is best effort: publishing failures are logged by the caller and
// never undo the operation that produced the event.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	BillRunCompleted   = "bill.run.completed"
	CredentialIssued   = "credential.issued"
	ResetApproved      = "password_reset.approved"
	ConnectionAdvanced = "connection.status_changed"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func New(eventType string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the global zap logger.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, e Event) error {
	zap.L().Info("event",
		zap.String("eventID", e.ID),
		zap.String("type", e.Type),
		zap.Time("occurredAt", e.OccurredAt),
		zap.Any("payload", e.Payload),
	)
	return nil
}

func (LogPublisher) Close() error { return nil }

// Fanout delivers every event to all publishers and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

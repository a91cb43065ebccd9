package domain

import (
	"fmt"
	"time"
)

// Claim moves an assigned order to in_progress for employeeID. An order
// pre-assigned to another employee cannot be claimed.
func (w *WorkOrder) Claim(employeeID int) error {
	if w.Status != WorkOrderAssigned {
		return TransitionError{Entity: "work order", From: w.Status, To: WorkOrderInProgress}
	}
	if w.EmployeeID != nil && *w.EmployeeID != employeeID {
		return fmt.Errorf("work order %d belongs to employee %d: %w", w.ID, *w.EmployeeID, ErrAlreadyClaimed)
	}
	w.EmployeeID = &employeeID
	w.Status = WorkOrderInProgress
	return nil
}

func (w *WorkOrder) Complete(notes string, at time.Time) error {
	if w.Status != WorkOrderInProgress {
		return TransitionError{Entity: "work order", From: w.Status, To: WorkOrderCompleted}
	}
	w.Status = WorkOrderCompleted
	w.CompletionDate = &at
	if notes != "" {
		w.CompletionNotes = &notes
	}
	return nil
}

func (w *WorkOrder) Cancel() error {
	if w.Status != WorkOrderAssigned && w.Status != WorkOrderInProgress {
		return TransitionError{Entity: "work order", From: w.Status, To: WorkOrderCancelled}
	}
	w.Status = WorkOrderCancelled
	return nil
}

// IsHandledBy reports whether employeeID is the employee attached to the order.
func (w *WorkOrder) IsHandledBy(employeeID int) bool {
	return w.EmployeeID != nil && *w.EmployeeID == employeeID
}

var connectionTransitions = map[string][]string{
	ConnectionApplied:             {ConnectionInspectionScheduled, ConnectionApproved, ConnectionRejected},
	ConnectionInspectionScheduled: {ConnectionApproved, ConnectionRejected},
	ConnectionApproved:            {ConnectionConnected, ConnectionRejected},
}

// CanMoveTo reports whether the request may advance to status.
func (c *ConnectionRequest) CanMoveTo(status string) bool {
	for _, next := range connectionTransitions[c.Status] {
		if next == status {
			return true
		}
	}
	return false
}

func (c *ConnectionRequest) MoveTo(status string) error {
	if !c.CanMoveTo(status) {
		return TransitionError{Entity: "connection request", From: c.Status, To: status}
	}
	c.Status = status
	return nil
}

// VisiblePassword returns the temporary password only while the request is
// approved. The stored value is kept for audit after that.
func (c *ConnectionRequest) VisiblePassword() *string {
	if c.Status != ConnectionApproved {
		return nil
	}
	return c.TemporaryPassword
}

func (p *PasswordResetRequest) Decide(status string, at time.Time, by int) error {
	if p.Status != ResetPending || (status != ResetApproved && status != ResetRejected) {
		return TransitionError{Entity: "password reset", From: p.Status, To: status}
	}
	p.Status = status
	p.ProcessedAt = &at
	p.ProcessedBy = &by
	return nil
}

// VisiblePassword returns the temporary password while the request is
// approved and not yet expired.
func (p *PasswordResetRequest) VisiblePassword(now time.Time) *string {
	if p.Status != ResetApproved || p.ExpiresAt == nil || !now.Before(*p.ExpiresAt) {
		return nil
	}
	return p.TempPasswordPlain
}

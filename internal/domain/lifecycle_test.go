package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestWorkOrder_Claim(t *testing.T) {
	tests := []struct {
		name      string
		order     WorkOrder
		employee  int
		expectErr error
	}{
		{
			name:     "Unassigned order",
			order:    WorkOrder{Status: WorkOrderAssigned},
			employee: 7,
		},
		{
			name:     "Pre-assigned to the same employee",
			order:    WorkOrder{Status: WorkOrderAssigned, EmployeeID: intPtr(7)},
			employee: 7,
		},
		{
			name:      "Pre-assigned to another employee",
			order:     WorkOrder{Status: WorkOrderAssigned, EmployeeID: intPtr(8)},
			employee:  7,
			expectErr: ErrAlreadyClaimed,
		},
		{
			name:      "Already in progress",
			order:     WorkOrder{Status: WorkOrderInProgress, EmployeeID: intPtr(7)},
			employee:  7,
			expectErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.order
			err := w.Claim(tt.employee)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Equal(t, tt.order.Status, w.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, WorkOrderInProgress, w.Status)
			assert.True(t, w.IsHandledBy(tt.employee))
		})
	}
}

func TestWorkOrder_Complete(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	w := WorkOrder{Status: WorkOrderInProgress, EmployeeID: intPtr(3)}
	require.NoError(t, w.Complete("meter read", at))
	assert.Equal(t, WorkOrderCompleted, w.Status)
	assert.Equal(t, at, *w.CompletionDate)
	assert.Equal(t, "meter read", *w.CompletionNotes)

	pending := WorkOrder{Status: WorkOrderAssigned}
	assert.ErrorIs(t, pending.Complete("", at), ErrInvalidTransition)
}

func TestWorkOrder_TerminalStatesAreFinal(t *testing.T) {
	for _, status := range []string{WorkOrderCompleted, WorkOrderCancelled} {
		t.Run(status, func(t *testing.T) {
			w := WorkOrder{Status: status, EmployeeID: intPtr(1)}
			assert.ErrorIs(t, w.Claim(1), ErrInvalidTransition)
			assert.ErrorIs(t, w.Complete("again", time.Now()), ErrInvalidTransition)
			assert.ErrorIs(t, w.Cancel(), ErrInvalidTransition)
			assert.Equal(t, status, w.Status)
		})
	}
}

func TestWorkOrder_Cancel(t *testing.T) {
	for _, status := range []string{WorkOrderAssigned, WorkOrderInProgress} {
		w := WorkOrder{Status: status}
		assert.NoError(t, w.Cancel())
		assert.Equal(t, WorkOrderCancelled, w.Status)
	}
}

func TestConnectionRequest_MoveTo(t *testing.T) {
	tests := []struct {
		from  string
		to    string
		legal bool
	}{
		{ConnectionApplied, ConnectionInspectionScheduled, true},
		{ConnectionApplied, ConnectionApproved, true},
		{ConnectionApplied, ConnectionConnected, false},
		{ConnectionInspectionScheduled, ConnectionApproved, true},
		{ConnectionInspectionScheduled, ConnectionRejected, true},
		{ConnectionApproved, ConnectionConnected, true},
		{ConnectionApproved, ConnectionInspectionScheduled, false},
		{ConnectionConnected, ConnectionRejected, false},
		{ConnectionRejected, ConnectionApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			c := ConnectionRequest{Status: tt.from}
			err := c.MoveTo(tt.to)
			if tt.legal {
				require.NoError(t, err)
				assert.Equal(t, tt.to, c.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, c.Status)
			}
		})
	}
}

func TestConnectionRequest_VisiblePassword(t *testing.T) {
	c := ConnectionRequest{Status: ConnectionInspectionScheduled, TemporaryPassword: strPtr("Xy7@abcdEFGH")}
	assert.Nil(t, c.VisiblePassword())

	c.Status = ConnectionApproved
	require.NotNil(t, c.VisiblePassword())
	assert.Equal(t, "Xy7@abcdEFGH", *c.VisiblePassword())

	for _, next := range []string{ConnectionConnected, ConnectionRejected} {
		later := c
		require.NoError(t, later.MoveTo(next))
		assert.Nil(t, later.VisiblePassword())
		assert.NotNil(t, later.TemporaryPassword)
	}
}

func TestPasswordResetRequest(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	expires := now.Add(24 * time.Hour)

	p := PasswordResetRequest{Status: ResetPending, TempPasswordPlain: strPtr("Ab1@Ab1@Ab1@")}
	assert.Nil(t, p.VisiblePassword(now))

	require.NoError(t, p.Decide(ResetApproved, now, 1))
	p.ExpiresAt = &expires
	assert.Equal(t, 1, *p.ProcessedBy)
	assert.NotNil(t, p.VisiblePassword(now))
	assert.NotNil(t, p.VisiblePassword(expires.Add(-time.Second)))
	assert.Nil(t, p.VisiblePassword(expires))

	assert.ErrorIs(t, p.Decide(ResetRejected, now, 1), ErrInvalidTransition)
	assert.ErrorIs(t, (&PasswordResetRequest{Status: ResetPending}).Decide(ResetPending, now, 1), ErrInvalidTransition)
}

package workorders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/workorderservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

func NewMock(t *testing.T) (*WorkOrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var (
	admin    = auth.Actor{ID: 1, Role: domain.RoleAdmin}
	employee = auth.Actor{ID: 7, Role: domain.RoleEmployee}
	due      = time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
)

func withID(r *http.Request, id string, actor auth.Actor) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(auth.WithActor(r.Context(), actor), chi.RouteCtxKey, rctx))
}

func TestCreate(t *testing.T) {
	handler, service := NewMock(t)
	customerID := 42

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order created",
			body: `{"customerId":42,"workType":"maintenance","title":"Replace fuse","priority":"high","dueDate":"2024-03-25T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), gomock.Cond(func(x any) bool {
						in, ok := x.(workorderservice.CreateInput)
						return ok && in.WorkType == domain.WorkMaintenance && in.Title == "Replace fuse" &&
							in.Priority == domain.PriorityHigh && in.CustomerID != nil && *in.CustomerID == 42 &&
							in.DueDate != nil && in.DueDate.Equal(due)
					})).
					Return(&domain.WorkOrder{
						ID:         12,
						CustomerID: &customerID,
						WorkType:   domain.WorkMaintenance,
						Title:      "Replace fuse",
						Priority:   domain.PriorityHigh,
						Status:     domain.WorkOrderAssigned,
						DueDate:    due,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unknown work type",
			body:          `{"workType":"gardening","title":"Trim hedge"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "workType",
		},
		{
			name:          "Title missing",
			body:          `{"workType":"maintenance"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "title",
		},
		{
			name: "Due date in the past",
			body: `{"workType":"maintenance","title":"Fix","dueDate":"2020-01-01T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("dueDate", "must not be in the past"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "dueDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/work-orders", bytes.NewBufferString(tt.body))
			r = r.WithContext(auth.WithActor(r.Context(), admin))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.WorkOrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 12, body.ID)
				assert.Equal(t, "2024-03-25T00:00:00Z", body.DueDate)
				assert.Nil(t, body.CompletionDate)
			}
		})
	}
}

func TestGet(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), 12).Return(&domain.WorkOrder{ID: 12, Status: domain.WorkOrderAssigned, DueDate: due}, nil)
	w := httptest.NewRecorder()
	handler.Get(w, withID(httptest.NewRequest(http.MethodGet, "/api/work-orders/12", nil), "12", employee))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":12`)

	service.EXPECT().Get(gomock.Any(), 13).Return(nil, workorderservice.ErrWorkOrderNotFound)
	w = httptest.NewRecorder()
	handler.Get(w, withID(httptest.NewRequest(http.MethodGet, "/api/work-orders/13", nil), "13", employee))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	handler, service := NewMock(t)
	employeeID := 7
	completedAt := time.Date(2024, time.March, 20, 15, 0, 0, 0, time.UTC)
	notes := "Reading 10234 recorded"

	tests := []struct {
		name          string
		id            string
		body          string
		actor         auth.Actor
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Employee claims order",
			id:    "12",
			body:  `{"status":"in_progress"}`,
			actor: employee,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), employee, 12, domain.WorkOrderInProgress, "").
					Return(&domain.WorkOrder{ID: 12, EmployeeID: &employeeID, Status: domain.WorkOrderInProgress, DueDate: due}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Employee completes order",
			id:    "12",
			body:  `{"status":"completed","notes":"Reading 10234 recorded"}`,
			actor: employee,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), employee, 12, domain.WorkOrderCompleted, notes).
					Return(&domain.WorkOrder{
						ID:              12,
						EmployeeID:      &employeeID,
						Status:          domain.WorkOrderCompleted,
						DueDate:         due,
						CompletionDate:  &completedAt,
						CompletionNotes: &notes,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Claimed by someone else",
			id:    "12",
			body:  `{"status":"in_progress"}`,
			actor: employee,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), employee, 12, domain.WorkOrderInProgress, "").
					Return(nil, domain.ErrAlreadyClaimed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already claimed",
		},
		{
			name:  "Not the handler",
			id:    "12",
			body:  `{"status":"cancelled"}`,
			actor: employee,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), employee, 12, domain.WorkOrderCancelled, "").
					Return(nil, workorderservice.ErrNotHandler)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "Unknown status",
			id:    "12",
			body:  `{"status":"paused"}`,
			actor: admin,
			prepareMock: func() {
				service.EXPECT().ChangeStatus(gomock.Any(), admin, 12, "paused", "").
					Return(nil, domain.TransitionError{Entity: "work order", From: domain.WorkOrderAssigned, To: "paused"})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "cannot move",
		},
		{
			name:          "Status missing",
			id:            "12",
			body:          `{}`,
			actor:         admin,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "status",
		},
		{
			name:          "Bad id",
			id:            "zero",
			body:          `{"status":"completed"}`,
			actor:         admin,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPatch, "/api/work-orders/"+tt.id, bytes.NewBufferString(tt.body))
			r = withID(r, tt.id, tt.actor)
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.name == "Employee completes order" {
				var body dto.WorkOrderResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.NotNil(t, body.CompletionDate)
				assert.Equal(t, "2024-03-20T15:00:00Z", *body.CompletionDate)
				assert.Equal(t, notes, *body.CompletionNotes)
			}
		})
	}
}

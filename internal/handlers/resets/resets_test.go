package resets

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
	"github.com/GlebRadaev/gridbill/internal/service/resetservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

func NewMock(t *testing.T) (*ResetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRequest(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request queued",
			body: `{"email":"ali@example.com","userType":"customer"}`,
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), "ali@example.com", domain.RoleCustomer).
					Return(&domain.PasswordResetRequest{ID: 3, RequestNumber: "PWRST-2024-000003", Status: domain.ResetPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Admin accounts excluded",
			body:          `{"email":"root@example.com","userType":"admin"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "userType",
		},
		{
			name: "Pending request exists",
			body: `{"email":"ali@example.com","userType":"employee"}`,
			prepareMock: func() {
				service.EXPECT().Request(gomock.Any(), "ali@example.com", domain.RoleEmployee).
					Return(nil, domain.ErrPendingExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "pending request already exists",
		},
		{
			name:          "Malformed body",
			body:          `{"email":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/password-reset", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Request(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.ResetResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "PWRST-2024-000003", body.RequestNumber)
				assert.Equal(t, domain.ResetPending, body.Status)
			}
		})
	}
}

func TestTrack(t *testing.T) {
	handler, service := NewMock(t)
	requested := time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC)
	password := "aB3@kLm9#xYz"

	service.EXPECT().Track(gomock.Any(), "PWRST-2024-000003").Return(&resetservice.Tracking{
		RequestNumber:     "PWRST-2024-000003",
		Status:            domain.ResetApproved,
		RequestedAt:       requested,
		TemporaryPassword: &password,
	}, nil)
	service.EXPECT().Track(gomock.Any(), "PWRST-2024-000004").Return(nil, resetservice.ErrRequestNotFound)

	for number, want := range map[string]int{
		"PWRST-2024-000003": http.StatusOK,
		"PWRST-2024-000004": http.StatusNotFound,
	} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("requestNumber", number)
		r := httptest.NewRequest(http.MethodGet, "/api/password-reset/track/"+number, nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()

		handler.Track(w, r)

		assert.Equal(t, want, w.Code, number)
		if want == http.StatusOK {
			assert.Contains(t, w.Body.String(), `"temporaryPassword":"aB3@kLm9#xYz"`)
		}
	}
}

func TestDecide(t *testing.T) {
	handler, service := NewMock(t)
	admin := auth.Actor{ID: 1, Role: domain.RoleAdmin}
	expires := time.Date(2024, time.March, 19, 9, 0, 0, 0, time.UTC)
	password := "aB3@kLm9#xYz"

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approved",
			id:   "3",
			body: `{"action":"approve"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), admin, 3, "approve", "").
					Return(&domain.PasswordResetRequest{
						ID:                3,
						RequestNumber:     "PWRST-2024-000003",
						Status:            domain.ResetApproved,
						TempPasswordPlain: &password,
						ExpiresAt:         &expires,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject needs reason",
			id:   "3",
			body: `{"action":"reject"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), admin, 3, "reject", "").
					Return(nil, domain.NewValidationError("reason", "is required when rejecting"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "reason",
		},
		{
			name: "Already decided",
			id:   "3",
			body: `{"action":"reject","reason":"dup"}`,
			prepareMock: func() {
				service.EXPECT().Decide(gomock.Any(), admin, 3, "reject", "dup").
					Return(nil, domain.TransitionError{Entity: "password reset", From: domain.ResetApproved, To: domain.ResetRejected})
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:          "Unknown action",
			id:            "3",
			body:          `{"action":"defer"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			r := httptest.NewRequest(http.MethodPatch, "/api/admin/password-resets/"+tt.id, bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(auth.WithActor(r.Context(), admin), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.Decide(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"expiresAt":"2024-03-19T09:00:00Z"`)
				assert.NotContains(t, w.Body.String(), password)
			}
		})
	}
}

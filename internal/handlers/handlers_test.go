package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/gridbill/docs"
	"github.com/GlebRadaev/gridbill/internal/config"
	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/events"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/ratelimit"
	"github.com/GlebRadaev/gridbill/internal/repo"
	"github.com/GlebRadaev/gridbill/internal/service"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	txManager := pg.NewMockTXManager(ctrl)

	cfg := &config.Config{BillWorkers: 1, BillScheduleInterval: time.Hour, AllocMaxRetries: 1}
	services := service.New(cfg, repo.New(mockDB, txManager), txManager, events.NewMockPublisher(ctrl))

	limiter, err := ratelimit.New(ratelimit.DefaultClasses, ratelimit.DefaultFallback, time.Minute)
	require.NoError(t, err)

	h := New(services, auth.NewJWTService("secret"), limiter)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.BillHandler)
	assert.NotNil(t, h.CustomerHandler)
	assert.NotNil(t, h.ResetHandler)
}

func newRouter(t *testing.T, jwt auth.JWTServiceInterface) chi.Router {
	ctrl := gomock.NewController(t)
	limiter, err := ratelimit.New(ratelimit.DefaultClasses, ratelimit.DefaultFallback, time.Minute)
	require.NoError(t, err)
	t.Cleanup(ctrl.Finish)

	bills := NewMockBillHandler(ctrl)
	payments := NewMockPaymentHandler(ctrl)
	meters := NewMockMeterHandler(ctrl)
	customers := NewMockCustomerHandler(ctrl)
	workOrders := NewMockWorkOrderHandler(ctrl)
	connections := NewMockConnectionHandler(ctrl)
	resets := NewMockResetHandler(ctrl)

	bills.EXPECT().GenerateBulk(gomock.Any(), gomock.Any()).AnyTimes()
	bills.EXPECT().Generate(gomock.Any(), gomock.Any()).AnyTimes()
	bills.EXPECT().Preview(gomock.Any(), gomock.Any()).AnyTimes()
	bills.EXPECT().GetBill(gomock.Any(), gomock.Any()).AnyTimes()
	payments.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()
	meters.EXPECT().Install(gomock.Any(), gomock.Any()).AnyTimes()
	meters.EXPECT().RecordReading(gomock.Any(), gomock.Any()).AnyTimes()
	customers.EXPECT().ReadingEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	customers.EXPECT().RequestReading(gomock.Any(), gomock.Any()).AnyTimes()
	workOrders.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	workOrders.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	workOrders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	connections.EXPECT().Apply(gomock.Any(), gomock.Any()).AnyTimes()
	connections.EXPECT().Track(gomock.Any(), gomock.Any()).AnyTimes()
	connections.EXPECT().Advance(gomock.Any(), gomock.Any()).AnyTimes()
	resets.EXPECT().Request(gomock.Any(), gomock.Any()).AnyTimes()
	resets.EXPECT().Track(gomock.Any(), gomock.Any()).AnyTimes()
	resets.EXPECT().Decide(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		BillHandler:       bills,
		PaymentHandler:    payments,
		MeterHandler:      meters,
		CustomerHandler:   customers,
		WorkOrderHandler:  workOrders,
		ConnectionHandler: connections,
		ResetHandler:      resets,
		jwt:               jwt,
		limiter:           limiter,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newRouter(t, jwt)

	token := func(id int, role string) string {
		tok, err := jwt.GenerateJWT(auth.Actor{ID: id, Role: role}, time.Now().Add(time.Hour))
		require.NoError(t, err)
		return tok
	}
	admin := token(1, domain.RoleAdmin)
	employee := token(7, domain.RoleEmployee)
	customer := token(42, domain.RoleCustomer)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/connection-requests", "", http.StatusOK},
		{"GET", "/api/connection-requests/track/APP-2024-000010", "", http.StatusOK},
		{"POST", "/api/password-reset", "", http.StatusOK},
		{"GET", "/api/password-reset/track/PWRST-2024-000003", "", http.StatusOK},

		{"POST", "/api/bills/generate-bulk", "", http.StatusUnauthorized},
		{"POST", "/api/bills/generate-bulk", "not-a-token", http.StatusUnauthorized},
		{"POST", "/api/bills/generate-bulk", customer, http.StatusForbidden},
		{"POST", "/api/bills/generate-bulk", admin, http.StatusOK},
		{"POST", "/api/bills/generate", employee, http.StatusForbidden},
		{"POST", "/api/bills/generate", admin, http.StatusOK},
		{"POST", "/api/bills/preview", customer, http.StatusOK},
		{"GET", "/api/bills/BILL-202403-00000422", customer, http.StatusOK},

		{"POST", "/api/payments", customer, http.StatusOK},
		{"POST", "/api/payments", employee, http.StatusForbidden},
		{"POST", "/api/meter-readings", employee, http.StatusOK},
		{"POST", "/api/meter-readings", customer, http.StatusForbidden},

		{"POST", "/api/customers/42/meter", employee, http.StatusOK},
		{"POST", "/api/customers/42/meter", customer, http.StatusForbidden},
		{"GET", "/api/customers/42/reading-eligibility", customer, http.StatusOK},
		{"POST", "/api/customers/42/reading-requests", customer, http.StatusOK},
		{"POST", "/api/customers/42/reading-requests", employee, http.StatusForbidden},

		{"POST", "/api/work-orders", admin, http.StatusOK},
		{"POST", "/api/work-orders", employee, http.StatusForbidden},
		{"GET", "/api/work-orders/12", employee, http.StatusOK},
		{"PATCH", "/api/work-orders/12", employee, http.StatusOK},
		{"PATCH", "/api/work-orders/12", customer, http.StatusForbidden},

		{"PATCH", "/api/admin/connection-requests/4", admin, http.StatusOK},
		{"PATCH", "/api/admin/connection-requests/4", employee, http.StatusForbidden},
		{"PATCH", "/api/admin/password-resets/3", admin, http.StatusOK},
		{"PATCH", "/api/admin/password-resets/3", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(ratelimit.HeaderLimit))
		})
	}
}

func TestInitRoutes_RateLimited(t *testing.T) {
	router := newRouter(t, auth.NewJWTService("secret"))

	var codes []int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/password-reset", nil)
		req.RemoteAddr = "198.51.100.7:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gridbill/docs"
	"github.com/GlebRadaev/gridbill/internal/domain"
	billhandlers "github.com/GlebRadaev/gridbill/internal/handlers/bills"
	connectionhandlers "github.com/GlebRadaev/gridbill/internal/handlers/connections"
	customerhandlers "github.com/GlebRadaev/gridbill/internal/handlers/customers"
	meterhandlers "github.com/GlebRadaev/gridbill/internal/handlers/meters"
	paymenthandlers "github.com/GlebRadaev/gridbill/internal/handlers/payments"
	resethandlers "github.com/GlebRadaev/gridbill/internal/handlers/resets"
	workorderhandlers "github.com/GlebRadaev/gridbill/internal/handlers/workorders"
	"github.com/GlebRadaev/gridbill/internal/ratelimit"
	"github.com/GlebRadaev/gridbill/internal/service"
	"github.com/GlebRadaev/gridbill/pkg/auth"
)

type BillHandler interface {
	GenerateBulk(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	GetBill(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
}

type MeterHandler interface {
	Install(w http.ResponseWriter, r *http.Request)
	RecordReading(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	ReadingEligibility(w http.ResponseWriter, r *http.Request)
	RequestReading(w http.ResponseWriter, r *http.Request)
}

type WorkOrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ConnectionHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
}

type ResetHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BillHandler       BillHandler
	PaymentHandler    PaymentHandler
	MeterHandler      MeterHandler
	CustomerHandler   CustomerHandler
	WorkOrderHandler  WorkOrderHandler
	ConnectionHandler ConnectionHandler
	ResetHandler      ResetHandler

	jwt     auth.JWTServiceInterface
	limiter *ratelimit.Limiter
}

func New(s *service.Services, jwt auth.JWTServiceInterface, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		BillHandler:       billhandlers.New(s.BillService, s.BillRun),
		PaymentHandler:    paymenthandlers.New(s.PaymentService),
		MeterHandler:      meterhandlers.New(s.MeterService),
		CustomerHandler:   customerhandlers.New(s.EligibilityService, s.WorkOrderService),
		WorkOrderHandler:  workorderhandlers.New(s.WorkOrderService),
		ConnectionHandler: connectionhandlers.New(s.ConnectionService),
		ResetHandler:      resethandlers.New(s.ResetService),
		jwt:               jwt,
		limiter:           limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		auth.Identify(h.jwt),
		ratelimit.Middleware(h.limiter),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	const (
		admin    = domain.RoleAdmin
		employee = domain.RoleEmployee
		customer = domain.RoleCustomer
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/connection-requests", h.ConnectionHandler.Apply)
		r.Get("/connection-requests/track/{applicationNumber}", h.ConnectionHandler.Track)
		r.Post("/password-reset", h.ResetHandler.Request)
		r.Get("/password-reset/track/{requestNumber}", h.ResetHandler.Track)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt))

			r.Route("/bills", func(r chi.Router) {
				r.With(auth.RequireRole(admin)).Post("/generate-bulk", h.BillHandler.GenerateBulk)
				r.With(auth.RequireRole(admin)).Post("/generate", h.BillHandler.Generate)
				r.Post("/preview", h.BillHandler.Preview)
				r.Get("/{billNumber}", h.BillHandler.GetBill)
			})
			r.With(auth.RequireRole(admin, customer)).Post("/payments", h.PaymentHandler.Record)
			r.With(auth.RequireRole(admin, employee)).Post("/meter-readings", h.MeterHandler.RecordReading)

			r.Route("/customers/{id}", func(r chi.Router) {
				r.With(auth.RequireRole(admin, employee)).Post("/meter", h.MeterHandler.Install)
				r.Get("/reading-eligibility", h.CustomerHandler.ReadingEligibility)
				r.With(auth.RequireRole(admin, customer)).Post("/reading-requests", h.CustomerHandler.RequestReading)
			})

			r.Route("/work-orders", func(r chi.Router) {
				r.With(auth.RequireRole(admin)).Post("/", h.WorkOrderHandler.Create)
				r.With(auth.RequireRole(admin, employee)).Get("/{id}", h.WorkOrderHandler.Get)
				r.With(auth.RequireRole(admin, employee)).Patch("/{id}", h.WorkOrderHandler.UpdateStatus)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(admin))
				r.Patch("/connection-requests/{id}", h.ConnectionHandler.Advance)
				r.Patch("/password-resets/{id}", h.ResetHandler.Decide)
			})
		})
	})

	return r
}

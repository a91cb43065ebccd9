package bills

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/billrun"
	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/period"
	"github.com/GlebRadaev/gridbill/internal/tariff"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	GenerateBill(ctx context.Context, customerID int, month time.Time) (*domain.Bill, error)
	PreviewBill(ctx context.Context, customerID int, units decimal.Decimal, month time.Time) (*tariff.Breakdown, error)
	GetBill(ctx context.Context, number string) (*domain.Bill, error)
}

type BulkRunner interface {
	GenerateBillsForPeriod(ctx context.Context, month time.Time) (*billrun.Summary, error)
}

type BillHandler struct {
	billService Service
	runner      BulkRunner
}

func New(billService Service, runner BulkRunner) *BillHandler {
	return &BillHandler{
		billService: billService,
		runner:      runner,
	}
}

var errNotOwner = fmt.Errorf("bill belongs to another customer: %w", domain.ErrForbidden)

// GenerateBulk godoc
//
//	@Summary		Generate bills for a billing month
//	@Description	Bill every active customer with a reading in the month. Customers already billed or without a reading are skipped.
//	@Tags			Bills
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.GenerateBulkRequestDTO	true	"Billing month"
//	@Security		BearerAuth
//	@Success		200	{object}	billrun.Summary
//	@Failure		400	{object}	utils.Response	"Invalid billing month"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/generate-bulk [post]
func (h *BillHandler) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateBulkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	month, err := period.Parse(req.BillingMonth)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	summary, err := h.runner.GenerateBillsForPeriod(r.Context(), month)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Generate godoc
//
//	@Summary		Generate a single bill
//	@Description	Bill one customer for a billing month from the reading taken in that month.
//	@Tags			Bills
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.GenerateBillRequestDTO	true	"Customer and billing month"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BillResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request or no reading in month"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		409	{object}	utils.Response	"Bill already exists for month"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/generate [post]
func (h *BillHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	month, err := period.Parse(req.BillingMonth)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	bill, err := h.billService.GenerateBill(r.Context(), req.CustomerID, month)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBillResponse(bill))
}

// Preview godoc
//
//	@Summary		Preview a bill
//	@Description	Price a number of units against the customer's tariff without storing a bill.
//	@Tags			Bills
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PreviewBillRequestDTO	true	"Customer, units and billing month"
//	@Security		BearerAuth
//	@Success		200	{object}	tariff.Breakdown
//	@Failure		400	{object}	utils.Response	"Invalid request or no applicable tariff"
//	@Failure		403	{object}	utils.Response	"Customers may only preview their own bills"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/preview [post]
func (h *BillHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if req.Units.IsNegative() {
		utils.RespondWithServiceError(w, domain.NewValidationError("units", "must not be negative"))
		return
	}
	month, err := period.Parse(req.BillingMonth)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if actor, ok := auth.ActorFromContext(r.Context()); ok && actor.IsCustomer() && actor.ID != req.CustomerID {
		utils.RespondWithServiceError(w, errNotOwner)
		return
	}

	breakdown, err := h.billService.PreviewBill(r.Context(), req.CustomerID, req.Units, month)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, breakdown)
}

// GetBill godoc
//
//	@Summary		Get a bill
//	@Description	Look up a bill by number. Customers can only read their own bills.
//	@Tags			Bills
//	@Produce		json
//	@Param			billNumber	path	string	true	"Bill number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BillResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed bill number"
//	@Failure		403	{object}	utils.Response	"Bill belongs to another customer"
//	@Failure		404	{object}	utils.Response	"Bill not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bills/{billNumber} [get]
func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "billNumber")

	bill, err := h.billService.GetBill(r.Context(), number)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if actor, ok := auth.ActorFromContext(r.Context()); ok && actor.IsCustomer() && actor.ID != bill.CustomerID {
		zap.L().Warn("customer requested foreign bill",
			zap.Int("actorId", actor.ID), zap.String("billNumber", number))
		utils.RespondWithServiceError(w, errNotOwner)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBillResponse(bill))
}

package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/eligibilityservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type EligibilityService interface {
	CanRequestMeterReading(ctx context.Context, customerID int, now time.Time) (*eligibilityservice.Eligibility, error)
}

type ReadingRequester interface {
	RequestMeterReading(ctx context.Context, customerID int, reason string) (*domain.WorkOrder, error)
}

type CustomerHandler struct {
	eligibility EligibilityService
	requests    ReadingRequester
	now         func() time.Time
}

func New(eligibility EligibilityService, requests ReadingRequester) *CustomerHandler {
	return &CustomerHandler{
		eligibility: eligibility,
		requests:    requests,
		now:         time.Now,
	}
}

var errOtherCustomer = fmt.Errorf("customers may only act on their own account: %w", domain.ErrForbidden)

// ReadingEligibility godoc
//
//	@Summary		Check meter reading eligibility
//	@Description	Report whether the customer may request a meter reading this month.
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path	int	true	"Customer ID"
//	@Security		BearerAuth
//	@Success		200	{object}	eligibilityservice.Eligibility
//	@Failure		400	{object}	utils.Response	"Invalid customer ID"
//	@Failure		403	{object}	utils.Response	"Customers may only check their own account"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/reading-eligibility [get]
func (h *CustomerHandler) ReadingEligibility(w http.ResponseWriter, r *http.Request) {
	customerID, err := h.customerID(r)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	eligibility, err := h.eligibility.CanRequestMeterReading(r.Context(), customerID, h.now())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, eligibility)
}

// RequestReading godoc
//
//	@Summary		Request a meter reading
//	@Description	Open a meter reading work order. Refused when the month is already billed or a reading request is still open.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Customer ID"
//	@Param			request	body	dto.ReadingRequestDTO	false	"Reason"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.WorkOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request or inactive customer"
//	@Failure		403	{object}	utils.Response	"Customers may only request for their own account"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		409	{object}	utils.Response	"Not eligible for a new reading"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{id}/reading-requests [post]
func (h *CustomerHandler) RequestReading(w http.ResponseWriter, r *http.Request) {
	customerID, err := h.customerID(r)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.ReadingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	order, err := h.requests.RequestMeterReading(r.Context(), customerID, req.Reason)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWorkOrderResponse(order))
}

func (h *CustomerHandler) customerID(r *http.Request) (int, error) {
	id, err := utils.URLParamID(r, "id")
	if err != nil {
		return 0, err
	}
	if actor, ok := auth.ActorFromContext(r.Context()); ok && actor.IsCustomer() && actor.ID != id {
		return 0, errOtherCustomer
	}
	return id, nil
}

package payments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/paymentservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	Record(ctx context.Context, actor auth.Actor, in paymentservice.Input) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Record godoc
//
//	@Summary		Pay a bill
//	@Description	Record a payment against a bill. Paying the full total marks the bill paid; customers may only pay their own bills.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PaymentRequestDTO	true	"Payment"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount, method or bill number"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Bill belongs to another customer"
//	@Failure		404	{object}	utils.Response	"Bill not found"
//	@Failure		409	{object}	utils.Response	"Bill already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	payment, err := h.paymentService.Record(r.Context(), actor, paymentservice.Input{
		BillNumber: req.BillNumber,
		Amount:     req.Amount,
		Method:     req.Method,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

package resets

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/resetservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	Request(ctx context.Context, email, userType string) (*domain.PasswordResetRequest, error)
	Decide(ctx context.Context, actor auth.Actor, id int, action, reason string) (*domain.PasswordResetRequest, error)
	Track(ctx context.Context, requestNumber string) (*resetservice.Tracking, error)
}

type ResetHandler struct {
	resetService Service
}

func New(resetService Service) *ResetHandler {
	return &ResetHandler{
		resetService: resetService,
	}
}

// Request godoc
//
//	@Summary		Request a password reset
//	@Description	Queue a reset for admin review. Only one pending request per email is allowed.
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ResetRequestDTO	true	"Account email and type"
//	@Success		201	{object}	dto.ResetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		409	{object}	utils.Response	"Pending request already exists"
//	@Failure		429	{object}	utils.Response	"Too many requests"
//	@Router			/api/password-reset [post]
func (h *ResetHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	p, err := h.resetService.Request(r.Context(), req.Email, req.UserType)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewResetResponse(p))
}

// Track godoc
//
//	@Summary		Track a password reset
//	@Description	Public status lookup. The temporary password is shown only after approval and before it expires.
//	@Tags			PasswordReset
//	@Produce		json
//	@Param			requestNumber	path	string	true	"Request number"
//	@Success		200	{object}	resetservice.Tracking
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Router			/api/password-reset/track/{requestNumber} [get]
func (h *ResetHandler) Track(w http.ResponseWriter, r *http.Request) {
	tracking, err := h.resetService.Track(r.Context(), chi.URLParam(r, "requestNumber"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tracking)
}

// Decide godoc
//
//	@Summary		Approve or reject a password reset
//	@Tags			PasswordReset
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Reset request ID"
//	@Param			request	body	dto.ResetDecisionRequestDTO	true	"Decision"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ResetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid decision"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already decided"
//	@Router			/api/admin/password-resets/{id} [patch]
func (h *ResetHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.ResetDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	p, err := h.resetService.Decide(r.Context(), actor, id, req.Action, req.Reason)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewResetResponse(p))
}

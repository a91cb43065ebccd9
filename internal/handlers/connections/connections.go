package connections

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/connectionservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	Apply(ctx context.Context, in connectionservice.ApplyInput) (*domain.ConnectionRequest, error)
	Advance(ctx context.Context, actor auth.Actor, id int, in connectionservice.ActionInput) (*domain.ConnectionRequest, error)
	Track(ctx context.Context, applicationNumber string) (*connectionservice.Tracking, error)
}

type ConnectionHandler struct {
	connectionService Service
}

func New(connectionService Service) *ConnectionHandler {
	return &ConnectionHandler{
		connectionService: connectionService,
	}
}

// Apply godoc
//
//	@Summary		Apply for a new connection
//	@Description	Submit a connection application. The returned application number is used for tracking.
//	@Tags			Connections
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ConnectionApplyRequestDTO	true	"Application"
//	@Success		201	{object}	dto.ConnectionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid application"
//	@Failure		429	{object}	utils.Response	"Too many requests"
//	@Failure		503	{object}	utils.Response	"Application numbers exhausted"
//	@Router			/api/connection-requests [post]
func (h *ConnectionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ConnectionApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	c, err := h.connectionService.Apply(r.Context(), connectionservice.ApplyInput{
		ApplicantName:   req.ApplicantName,
		Email:           req.Email,
		Phone:           req.Phone,
		PropertyAddress: req.PropertyAddress,
		City:            req.City,
		ConnectionType:  req.ConnectionType,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewConnectionResponse(c))
}

// Track godoc
//
//	@Summary		Track a connection application
//	@Description	Public status lookup. The temporary password is shown only while the application is approved.
//	@Tags			Connections
//	@Produce		json
//	@Param			applicationNumber	path	string	true	"Application number"
//	@Success		200	{object}	connectionservice.Tracking
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Router			/api/connection-requests/track/{applicationNumber} [get]
func (h *ConnectionHandler) Track(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "applicationNumber")

	tracking, err := h.connectionService.Track(r.Context(), number)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tracking)
}

// Advance godoc
//
//	@Summary		Advance a connection application
//	@Description	Apply schedule_inspection, approve, reject or connect. Approval issues the account number and temporary password.
//	@Tags			Connections
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Connection request ID"
//	@Param			request	body	dto.ConnectionActionRequestDTO	true	"Action"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ConnectionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid action"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Connection request not found"
//	@Failure		409	{object}	utils.Response	"Action not allowed in current status"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/connection-requests/{id} [patch]
func (h *ConnectionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.ConnectionActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	c, err := h.connectionService.Advance(r.Context(), actor, id, connectionservice.ActionInput{
		Action:         req.Action,
		InspectionDate: req.InspectionDate,
		Reason:         req.Reason,
		EmployeeID:     req.EmployeeID,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewConnectionResponse(c))
}

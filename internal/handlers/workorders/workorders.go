package workorders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/workorderservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	Get(ctx context.Context, id int) (*domain.WorkOrder, error)
	Create(ctx context.Context, in workorderservice.CreateInput) (*domain.WorkOrder, error)
	ChangeStatus(ctx context.Context, actor auth.Actor, id int, status, notes string) (*domain.WorkOrder, error)
}

type WorkOrderHandler struct {
	workOrderService Service
}

func New(workOrderService Service) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrderService: workOrderService,
	}
}

// Create godoc
//
//	@Summary		Create a work order
//	@Description	Open a work order, optionally pre-assigned to an employee.
//	@Tags			WorkOrders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateWorkOrderRequestDTO	true	"Work order"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.WorkOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/work-orders [post]
func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	order, err := h.workOrderService.Create(r.Context(), workorderservice.CreateInput{
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		WorkType:    req.WorkType,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWorkOrderResponse(order))
}

// Get godoc
//
//	@Summary		Get a work order
//	@Tags			WorkOrders
//	@Produce		json
//	@Param			id	path	int	true	"Work order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WorkOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid ID"
//	@Failure		404	{object}	utils.Response	"Work order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/work-orders/{id} [get]
func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	order, err := h.workOrderService.Get(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkOrderResponse(order))
}

// UpdateStatus godoc
//
//	@Summary		Advance a work order
//	@Description	in_progress claims the order for the calling employee; completed and cancelled are limited to the handling employee or an admin.
//	@Tags			WorkOrders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int									true	"Work order ID"
//	@Param			request	body	dto.UpdateWorkOrderStatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WorkOrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		403	{object}	utils.Response	"Handled by another employee"
//	@Failure		404	{object}	utils.Response	"Work order not found"
//	@Failure		409	{object}	utils.Response	"Invalid transition or already claimed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/work-orders/{id} [patch]
func (h *WorkOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.UpdateWorkOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	order, err := h.workOrderService.ChangeStatus(r.Context(), actor, id, req.Status, req.Notes)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkOrderResponse(order))
}

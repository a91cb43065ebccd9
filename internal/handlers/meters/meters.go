package meters

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gridbill/internal/domain"
	"github.com/GlebRadaev/gridbill/internal/dto"
	"github.com/GlebRadaev/gridbill/internal/service/meterservice"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
	"github.com/GlebRadaev/gridbill/pkg/validate"
)

type Service interface {
	Install(ctx context.Context, actor auth.Actor, customerID int, initial decimal.Decimal) (*meterservice.Installation, error)
	RecordReading(ctx context.Context, actor auth.Actor, in meterservice.ReadingInput) (*domain.MeterReading, error)
}

type MeterHandler struct {
	meterService Service
}

func New(meterService Service) *MeterHandler {
	return &MeterHandler{
		meterService: meterService,
	}
}

// Install godoc
//
//	@Summary		Install a meter
//	@Description	Assign a meter number from the customer's city zone and store the initial reading.
//	@Tags			Meters
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Customer ID"
//	@Param			request	body	dto.InstallMeterRequestDTO	true	"Initial reading"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.InstallationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		409	{object}	utils.Response	"Meter already installed"
//	@Failure		503	{object}	utils.Response	"Meter numbers exhausted for zone"
//	@Router			/api/customers/{id}/meter [post]
func (h *MeterHandler) Install(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	customerID, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.InstallMeterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	installation, err := h.meterService.Install(r.Context(), actor, customerID, req.InitialReading)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewInstallationResponse(installation))
}

// RecordReading godoc
//
//	@Summary		Record a meter reading
//	@Description	Store a reading for a customer. Consumption is the difference to the latest reading and must not be negative.
//	@Tags			Meters
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.MeterReadingRequestDTO	true	"Reading"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MeterReadingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid reading"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/meter-readings [post]
func (h *MeterHandler) RecordReading(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var req dto.MeterReadingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	reading, err := h.meterService.RecordReading(r.Context(), actor, meterservice.ReadingInput{
		CustomerID:     req.CustomerID,
		CurrentReading: req.CurrentReading,
		ReadingDate:    req.ReadingDate,
	})
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMeterReadingResponse(reading))
}

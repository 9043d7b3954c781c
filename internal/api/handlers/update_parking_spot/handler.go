package update_parking_spot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

const (
	msgInvalidID           = "Invalid parking spot id."
	msgInvalidRequestBody  = "Invalid request body."
	msgValidationFailed    = "Validation failed."
	msgNotFound            = "Parking Spot not found."
	msgLicensePlateInUse   = "Conflict: License Plate Car is already in use!"
	msgParkingSpotInUse    = "Conflict: Parking Spot is already in use!"
	msgApartmentBlockInUse = "Conflict: Parking Spot already registered for this apartment/block!"
	msgConflict            = "Conflict: Parking Spot data is already in use!"
)

type Handler struct {
	service ParkingSpotService
	logger  Logger
}

func NewHandler(service ParkingSpotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /parking-spot/{id}
// Поля id и registrationDate в теле игнорируются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("PUT /parking-spot/{id} - Invalid id %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.ParkingSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /parking-spot/{id} - Invalid request body: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	spot, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, parkingspots.ErrParkingSpotNotFound):
			h.logger.Warn("PUT /parking-spot/{id} - Parking spot not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &vErr):
			h.logger.Warn("PUT /parking-spot/{id} - Validation failed: id=%s, error=%v", id, vErr)
			handlers.RespondValidationError(w, msgValidationFailed, vErr.Fields)

		case errors.Is(err, parkingspots.ErrInvalidInput):
			h.logger.Warn("PUT /parking-spot/{id} - Invalid input: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, parkingspots.ErrLicensePlateInUse):
			h.logger.Warn("PUT /parking-spot/{id} - License plate in use: id=%s, plate=%s", id, req.LicensePlateCar)
			handlers.RespondConflict(w, msgLicensePlateInUse)

		case errors.Is(err, parkingspots.ErrParkingSpotInUse):
			h.logger.Warn("PUT /parking-spot/{id} - Parking spot in use: id=%s, number=%s", id, req.ParkingSpotNumber)
			handlers.RespondConflict(w, msgParkingSpotInUse)

		case errors.Is(err, parkingspots.ErrApartmentBlockInUse):
			h.logger.Warn("PUT /parking-spot/{id} - Apartment/block in use: id=%s, apartment=%s, block=%s",
				id, req.Apartment, req.Block)
			handlers.RespondConflict(w, msgApartmentBlockInUse)

		case errors.Is(err, parkingspots.ErrConflict):
			h.logger.Warn("PUT /parking-spot/{id} - Conflict: id=%s, error=%v", id, err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /parking-spot/{id} - Failed to update parking spot: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /parking-spot/{id} - Parking spot updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, spot)
}

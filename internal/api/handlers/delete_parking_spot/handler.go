package delete_parking_spot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots"
)

const (
	msgInvalidID = "Invalid parking spot id."
	msgNotFound  = "Parking Spot not found."
	msgDeleted   = "Parking Spot deleted successfully."
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

// Handle DELETE /parking-spot/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("DELETE /parking-spot/{id} - Invalid id %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, parkingspots.ErrParkingSpotNotFound):
			h.logger.Warn("DELETE /parking-spot/{id} - Parking spot not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /parking-spot/{id} - Failed to delete parking spot: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /parking-spot/{id} - Parking spot deleted successfully: id=%s", id)
	handlers.RespondMessage(w, http.StatusOK, msgDeleted)
}

package get_parking_spot

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
	msgMissingID = "Query parameter id is required."
	msgNotFound  = "Parking Spot not found."
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

// Handle GET /parking-spot/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("GET /parking-spot/{id} - Invalid id %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	h.respond(w, r, "GET /parking-spot/{id}", id)
}

// HandleLookup GET /parking-spot/lookup?id=
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		h.logger.Warn("GET /parking-spot/lookup - Missing id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("GET /parking-spot/lookup - Invalid id %q: %v", rawID, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	h.respond(w, r, "GET /parking-spot/lookup", id)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, route string, id uuid.UUID) {
	spot, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parkingspots.ErrParkingSpotNotFound):
			h.logger.Warn("%s - Parking spot not found: id=%s", route, id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to get parking spot: id=%s, error=%v", route, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Parking spot retrieved successfully: id=%s", route, id)
	handlers.RespondJSON(w, http.StatusOK, spot)
}

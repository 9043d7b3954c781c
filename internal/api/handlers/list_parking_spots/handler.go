package list_parking_spots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots"
)

const msgInvalidPageRequest = "Invalid page, size or sort parameter."

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

// Handle GET /parking-spot?page=&size=&sort=field,direction
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /parking-spot - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPageRequest)
		return
	}

	page, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, parkingspots.ErrInvalidInput):
			h.logger.Warn("GET /parking-spot - Invalid page request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPageRequest)

		default:
			h.logger.Error("GET /parking-spot - Failed to list parking spots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /parking-spot - Parking spots listed: page=%d, size=%d, count=%d, total=%d",
		page.Page, page.Size, len(page.Content), page.TotalElements)
	handlers.RespondJSON(w, http.StatusOK, page)
}

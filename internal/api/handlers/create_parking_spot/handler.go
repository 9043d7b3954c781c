package create_parking_spot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	createParkingSpot "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_spot"
)

const (
	msgInvalidRequestBody  = "Invalid request body."
	msgValidationFailed    = "Validation failed."
	msgLicensePlateInUse   = "Conflict: License Plate Car is already in use!"
	msgParkingSpotInUse    = "Conflict: Parking Spot is already in use!"
	msgApartmentBlockInUse = "Conflict: Parking Spot already registered for this apartment/block!"
)

type Handler struct {
	useCase CreateParkingSpotUseCase
	logger  Logger
}

func NewHandler(useCase CreateParkingSpotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /parking-spot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateParkingSpotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking-spot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /parking-spot - Validation failed: %v", vErr)
			handlers.RespondValidationError(w, msgValidationFailed, vErr.Fields)

		case errors.Is(err, createParkingSpot.ErrInvalidInput):
			h.logger.Warn("POST /parking-spot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createParkingSpot.ErrLicensePlateInUse):
			h.logger.Warn("POST /parking-spot - License plate in use: plate=%s", req.LicensePlateCar)
			handlers.RespondConflict(w, msgLicensePlateInUse)

		case errors.Is(err, createParkingSpot.ErrParkingSpotInUse):
			h.logger.Warn("POST /parking-spot - Parking spot in use: number=%s", req.ParkingSpotNumber)
			handlers.RespondConflict(w, msgParkingSpotInUse)

		case errors.Is(err, createParkingSpot.ErrApartmentBlockInUse):
			h.logger.Warn("POST /parking-spot - Apartment/block in use: apartment=%s, block=%s", req.Apartment, req.Block)
			handlers.RespondConflict(w, msgApartmentBlockInUse)

		default:
			h.logger.Error("POST /parking-spot - Failed to create parking spot: number=%s, error=%v",
				req.ParkingSpotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking-spot - Parking spot created successfully: id=%s, number=%s",
		result.ID, result.ParkingSpotNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

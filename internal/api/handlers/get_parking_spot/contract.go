package get_parking_spot

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

type ParkingSpotService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_parking_spot

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

type ParkingSpotService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.ParkingSpotRequest) (*models.ParkingSpotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

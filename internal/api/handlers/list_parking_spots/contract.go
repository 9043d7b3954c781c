package list_parking_spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

type ParkingSpotService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.PageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

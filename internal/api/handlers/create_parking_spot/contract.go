package create_parking_spot

import (
	"context"

	createParkingSpot "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_spot"
)

type CreateParkingSpotUseCase interface {
	Execute(ctx context.Context, req *createParkingSpot.Request) (*createParkingSpot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

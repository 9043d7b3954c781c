package delete_parking_spot

import (
	"context"

	"github.com/google/uuid"
)

type ParkingSpotService interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

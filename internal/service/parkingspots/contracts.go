package parkingspots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkingSpotRepository интерфейс хранилища парковочных мест
type ParkingSpotRepository interface {
	Save(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error)
	ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error)
	ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error)
}

// ConflictRecorder учитывает отказы по правилам уникальности
type ConflictRecorder interface {
	IncConflict(rule string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_parking_spot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ParkingSpotRepository интерфейс репозитория парковочных мест
type ParkingSpotRepository interface {
	Save(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
}

// UniquenessChecker предикаты правил уникальности (parkingspots.Service)
type UniquenessChecker interface {
	ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error)
	ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error)
	ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConflictRecorder учитывает отказы по правилам уникальности
type ConflictRecorder interface {
	IncConflict(rule string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

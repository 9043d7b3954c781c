package create_parking_spot

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest проверяет обязательные поля и длины.
// Ошибка оборачивает и ErrInvalidInput, и *domain.ValidationError.
func validateRequest(spot *domain.ParkingSpot) error {
	if err := spot.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

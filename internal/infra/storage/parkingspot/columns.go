package parkingspot

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const tableName = "parking_spots"

// Имена ограничений уникальности (см. migrations)
const (
	constraintSpotNumber     = "uq_parking_spots_parking_spot_number"
	constraintLicensePlate   = "uq_parking_spots_license_plate_car"
	constraintApartmentBlock = "uq_parking_spots_apartment_block"
)

// pgUniqueViolation SQLSTATE 23505
const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"parking_spot_number",
	"license_plate_car",
	"brand_car",
	"model_car",
	"color_car",
	"registration_date",
	"responsible_name",
	"apartment",
	"block",
}

// upsertSuffix обновляет все поля, кроме id и registration_date
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	parking_spot_number = EXCLUDED.parking_spot_number,
	license_plate_car = EXCLUDED.license_plate_car,
	brand_car = EXCLUDED.brand_car,
	model_car = EXCLUDED.model_car,
	color_car = EXCLUDED.color_car,
	responsible_name = EXCLUDED.responsible_name,
	apartment = EXCLUDED.apartment,
	block = EXCLUDED.block
RETURNING id, parking_spot_number, license_plate_car, brand_car, model_car, color_car,
	registration_date, responsible_name, apartment, block`

// mapUniqueViolation превращает ошибку PostgreSQL 23505 в ErrDuplicate*.
// Возвращает nil, если err не является нарушением уникальности.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintLicensePlate:
		return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateLicensePlate)
	case constraintSpotNumber:
		return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateSpotNumber)
	case constraintApartmentBlock:
		return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateApartmentBlock)
	default:
		return fmt.Errorf("%w: constraint %s", ErrDuplicate, pqErr.Constraint)
	}
}

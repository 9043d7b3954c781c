package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParkingSpot represents a parking spot registration
type ParkingSpot struct {
	ID                uuid.UUID
	ParkingSpotNumber string
	LicensePlateCar   string
	BrandCar          string
	ModelCar          string
	ColorCar          string
	RegistrationDate  time.Time // UTC, set once at creation
	ResponsibleName   string
	Apartment         string
	Block             string
}

// ReplaceDetails copies every business field from src, keeping ID and RegistrationDate
func (s *ParkingSpot) ReplaceDetails(src *ParkingSpot) {
	s.ParkingSpotNumber = src.ParkingSpotNumber
	s.LicensePlateCar = src.LicensePlateCar
	s.BrandCar = src.BrandCar
	s.ModelCar = src.ModelCar
	s.ColorCar = src.ColorCar
	s.ResponsibleName = src.ResponsibleName
	s.Apartment = src.Apartment
	s.Block = src.Block
}

// Validate checks required fields and length limits.
// Returns nil or a *ValidationError keyed by JSON field name.
func (s *ParkingSpot) Validate() error {
	v := newFieldChecker()

	v.text(FieldParkingSpotNumber, s.ParkingSpotNumber, MaxParkingSpotNumberLength)
	v.text(FieldLicensePlateCar, s.LicensePlateCar, MaxLicensePlateCarLength)
	v.text(FieldBrandCar, s.BrandCar, MaxCarAttributeLength)
	v.text(FieldModelCar, s.ModelCar, MaxCarAttributeLength)
	v.text(FieldColorCar, s.ColorCar, MaxCarAttributeLength)
	v.text(FieldResponsibleName, s.ResponsibleName, MaxResponsibleNameLength)
	v.text(FieldApartment, s.Apartment, MaxApartmentLength)
	v.text(FieldBlock, s.Block, MaxBlockLength)

	return v.err()
}

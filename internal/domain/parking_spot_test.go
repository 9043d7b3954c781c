package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpot() *ParkingSpot {
	return &ParkingSpot{
		ParkingSpotNumber: "A1",
		LicensePlateCar:   "ABC1234",
		BrandCar:          "Fiat",
		ModelCar:          "Uno",
		ColorCar:          "Red",
		ResponsibleName:   "Jane",
		Apartment:         "101",
		Block:             "B",
	}
}

func TestParkingSpot_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *ParkingSpot)
		wantField string
	}{
		{name: "valid", mutate: func(s *ParkingSpot) {}},
		{name: "blank spot number", mutate: func(s *ParkingSpot) { s.ParkingSpotNumber = "   " }, wantField: FieldParkingSpotNumber},
		{name: "plate too long", mutate: func(s *ParkingSpot) { s.LicensePlateCar = "ABC12345" }, wantField: FieldLicensePlateCar},
		{name: "brand missing", mutate: func(s *ParkingSpot) { s.BrandCar = "" }, wantField: FieldBrandCar},
		{name: "model too long", mutate: func(s *ParkingSpot) { s.ModelCar = strings.Repeat("m", 71) }, wantField: FieldModelCar},
		{name: "colour missing", mutate: func(s *ParkingSpot) { s.ColorCar = "" }, wantField: FieldColorCar},
		{name: "name too long", mutate: func(s *ParkingSpot) { s.ResponsibleName = strings.Repeat("n", 131) }, wantField: FieldResponsibleName},
		{name: "apartment too long", mutate: func(s *ParkingSpot) { s.Apartment = strings.Repeat("1", 31) }, wantField: FieldApartment},
		{name: "block missing", mutate: func(s *ParkingSpot) { s.Block = "\t" }, wantField: FieldBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpot()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Fields, 1)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestParkingSpot_ValidateCountsRunes(t *testing.T) {
	s := validSpot()
	s.LicensePlateCar = "ÄÖÜ1234" // 7 runes, 10 bytes

	assert.NoError(t, s.Validate())
}

func TestParkingSpot_ValidateReportsAllFields(t *testing.T) {
	err := (&ParkingSpot{}).Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 8)
	assert.Contains(t, err.Error(), "apartment: must not be blank")
}

func TestParkingSpot_ReplaceDetailsKeepsIdentity(t *testing.T) {
	id := uuid.New()
	registered := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &ParkingSpot{ID: id, RegistrationDate: registered, ParkingSpotNumber: "A1"}

	src := validSpot()
	src.ID = uuid.New()
	src.RegistrationDate = time.Now()
	src.ParkingSpotNumber = "Z9"

	existing.ReplaceDetails(src)

	assert.Equal(t, id, existing.ID)
	assert.Equal(t, registered, existing.RegistrationDate)
	assert.Equal(t, "Z9", existing.ParkingSpotNumber)
	assert.Equal(t, src.Block, existing.Block)
}

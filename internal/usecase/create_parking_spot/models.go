package create_parking_spot

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на регистрацию парковочного места
type Request struct {
	ParkingSpotNumber string
	LicensePlateCar   string
	BrandCar          string
	ModelCar          string
	ColorCar          string
	ResponsibleName   string
	Apartment         string
	Block             string
}

// Response модель ответа с созданным местом
type Response struct {
	ID                uuid.UUID
	ParkingSpotNumber string
	LicensePlateCar   string
	BrandCar          string
	ModelCar          string
	ColorCar          string
	RegistrationDate  time.Time // UTC
	ResponsibleName   string
	Apartment         string
	Block             string
}

func (r *Request) toDomain() *domain.ParkingSpot {
	return &domain.ParkingSpot{
		ParkingSpotNumber: r.ParkingSpotNumber,
		LicensePlateCar:   r.LicensePlateCar,
		BrandCar:          r.BrandCar,
		ModelCar:          r.ModelCar,
		ColorCar:          r.ColorCar,
		ResponsibleName:   r.ResponsibleName,
		Apartment:         r.Apartment,
		Block:             r.Block,
	}
}

func fromDomain(spot *domain.ParkingSpot) *Response {
	return &Response{
		ID:                spot.ID,
		ParkingSpotNumber: spot.ParkingSpotNumber,
		LicensePlateCar:   spot.LicensePlateCar,
		BrandCar:          spot.BrandCar,
		ModelCar:          spot.ModelCar,
		ColorCar:          spot.ColorCar,
		RegistrationDate:  spot.RegistrationDate,
		ResponsibleName:   spot.ResponsibleName,
		Apartment:         spot.Apartment,
		Block:             spot.Block,
	}
}

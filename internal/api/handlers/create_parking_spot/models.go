package create_parking_spot

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
	createParkingSpot "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_spot"
)

// CreateParkingSpotRequest HTTP request model
type CreateParkingSpotRequest struct {
	models.ParkingSpotRequest
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateParkingSpotRequest) ToUseCaseRequest() *createParkingSpot.Request {
	return &createParkingSpot.Request{
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Формат совпадает с GET /parking-spot/{id}.
func FromUseCaseResponse(resp *createParkingSpot.Response) *models.ParkingSpotResponse {
	return &models.ParkingSpotResponse{
		ID:                resp.ID.String(),
		ParkingSpotNumber: resp.ParkingSpotNumber,
		LicensePlateCar:   resp.LicensePlateCar,
		BrandCar:          resp.BrandCar,
		ModelCar:          resp.ModelCar,
		ColorCar:          resp.ColorCar,
		RegistrationDate:  resp.RegistrationDate.UTC(),
		ResponsibleName:   resp.ResponsibleName,
		Apartment:         resp.Apartment,
		Block:             resp.Block,
	}
}

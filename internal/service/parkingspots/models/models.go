package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// ParkingSpotRequest бизнес-поля парковочного места (создание и обновление).
// id и registrationDate клиент не задает.
type ParkingSpotRequest struct {
	ParkingSpotNumber string `json:"parkingSpotNumber"`
	LicensePlateCar   string `json:"licensePlateCar"`
	BrandCar          string `json:"brandCar"`
	ModelCar          string `json:"modelCar"`
	ColorCar          string `json:"colorCar"`
	ResponsibleName   string `json:"responsibleName"`
	Apartment         string `json:"apartment"`
	Block             string `json:"block"`
}

// ToDomain конвертирует запрос в domain модель без id и даты регистрации
func (r *ParkingSpotRequest) ToDomain() *domain.ParkingSpot {
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

// ListRequest параметры страницы, уже разобранные из query string.
// nil и пустые значения заменяются значениями по умолчанию.
type ListRequest struct {
	Page          *int
	Size          *int
	SortField     string
	SortDirection string
}

// ToPageRequest конвертирует в domain.PageRequest, подставляя значения по умолчанию
func (r *ListRequest) ToPageRequest() (domain.PageRequest, error) {
	req := domain.DefaultPageRequest()
	if r.Page != nil {
		req.Page = *r.Page
	}
	if r.Size != nil {
		req.Size = *r.Size
	}
	if r.SortField != "" {
		req.SortField = r.SortField
	}
	if r.SortDirection != "" {
		dir, err := domain.ParseSortDirection(r.SortDirection)
		if err != nil {
			return req, err
		}
		req.SortDirection = dir
	}

	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// Response модели

// ParkingSpotResponse парковочное место в ответе API
type ParkingSpotResponse struct {
	ID                string    `json:"id"`
	ParkingSpotNumber string    `json:"parkingSpotNumber"`
	LicensePlateCar   string    `json:"licensePlateCar"`
	BrandCar          string    `json:"brandCar"`
	ModelCar          string    `json:"modelCar"`
	ColorCar          string    `json:"colorCar"`
	RegistrationDate  time.Time `json:"registrationDate"`
	ResponsibleName   string    `json:"responsibleName"`
	Apartment         string    `json:"apartment"`
	Block             string    `json:"block"`
}

// PageResponse страница парковочных мест
type PageResponse struct {
	Content       []*ParkingSpotResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"totalElements"`
	TotalPages    int                    `json:"totalPages"`
	Sort          string                 `json:"sort"`
	First         bool                   `json:"first"`
	Last          bool                   `json:"last"`
	Empty         bool                   `json:"empty"`
}

// FromDomainParkingSpot конвертирует domain модель в response
func FromDomainParkingSpot(spot *domain.ParkingSpot) *ParkingSpotResponse {
	return &ParkingSpotResponse{
		ID:                spot.ID.String(),
		ParkingSpotNumber: spot.ParkingSpotNumber,
		LicensePlateCar:   spot.LicensePlateCar,
		BrandCar:          spot.BrandCar,
		ModelCar:          spot.ModelCar,
		ColorCar:          spot.ColorCar,
		RegistrationDate:  spot.RegistrationDate.UTC(),
		ResponsibleName:   spot.ResponsibleName,
		Apartment:         spot.Apartment,
		Block:             spot.Block,
	}
}

// FromDomainPage конвертирует страницу в response
func FromDomainPage(page *domain.Page) *PageResponse {
	content := make([]*ParkingSpotResponse, 0, len(page.Items))
	for _, spot := range page.Items {
		content = append(content, FromDomainParkingSpot(spot))
	}

	return &PageResponse{
		Content:       content,
		Page:          page.Request.Page,
		Size:          page.Request.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		Sort:          page.Request.SortString(),
		First:         page.IsFirst(),
		Last:          page.IsLast(),
		Empty:         len(content) == 0,
	}
}

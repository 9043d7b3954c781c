package parkingspots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	parkingSpotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkingspot"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type conflictCounter map[string]int

func (c conflictCounter) IncConflict(rule string) { c[rule]++ }

type brokenRepository struct {
	*parkingSpotRepo.MemoryRepository
	err error
}

func (b brokenRepository) GetByID(context.Context, uuid.UUID) (*domain.ParkingSpot, error) {
	return nil, b.err
}

func (b brokenRepository) Delete(context.Context, uuid.UUID) error {
	return b.err
}

func seed(t *testing.T, repo *parkingSpotRepo.MemoryRepository, number, plate, apartment string) *domain.ParkingSpot {
	t.Helper()
	spot := &domain.ParkingSpot{
		ID:                uuid.New(),
		ParkingSpotNumber: number,
		LicensePlateCar:   plate,
		BrandCar:          "Fiat",
		ModelCar:          "Uno",
		ColorCar:          "Red",
		RegistrationDate:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ResponsibleName:   "Ana",
		Apartment:         apartment,
		Block:             "B",
	}
	saved, err := repo.Save(context.Background(), spot)
	require.NoError(t, err)
	return saved
}

func validRequest() *models.ParkingSpotRequest {
	return &models.ParkingSpotRequest{
		ParkingSpotNumber: "99",
		LicensePlateCar:   "XYZ9876",
		BrandCar:          "VW",
		ModelCar:          "Gol",
		ColorCar:          "Blue",
		ResponsibleName:   "Bruno",
		Apartment:         "707",
		Block:             "C",
	}
}

func newTestService() (*Service, *parkingSpotRepo.MemoryRepository, conflictCounter) {
	repo := parkingSpotRepo.NewMemoryRepository()
	conflicts := conflictCounter{}
	return NewService(repo, conflicts, logger.NewNop()), repo, conflicts
}

func TestService_GetByID(t *testing.T) {
	svc, repo, _ := newTestService()
	spot := seed(t, repo, "12A", "ABC1234", "101")

	got, err := svc.GetByID(context.Background(), spot.ID)
	require.NoError(t, err)
	assert.Equal(t, spot.ID.String(), got.ID)
	assert.Equal(t, "ABC1234", got.LicensePlateCar)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrParkingSpotNotFound)
}

func TestService_GetByID_InternalError(t *testing.T) {
	svc := NewService(brokenRepository{
		MemoryRepository: parkingSpotRepo.NewMemoryRepository(),
		err:              errors.New("connection refused"),
	}, nil, logger.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List_EmptyStore(t *testing.T) {
	svc, _, _ := newTestService()

	page, err := svc.List(context.Background(), &models.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, "id,asc", page.Sort)
	assert.True(t, page.First)
	assert.True(t, page.Last)
	assert.True(t, page.Empty)
}

func TestService_List_Paging(t *testing.T) {
	svc, repo, _ := newTestService()
	seed(t, repo, "3", "AAA0003", "3")
	seed(t, repo, "1", "AAA0001", "1")
	seed(t, repo, "2", "AAA0002", "2")

	page, size := 0, 2
	resp, err := svc.List(context.Background(), &models.ListRequest{
		Page:          &page,
		Size:          &size,
		SortField:     domain.FieldParkingSpotNumber,
		SortDirection: "DESC",
	})
	require.NoError(t, err)
	require.Len(t, resp.Content, 2)
	assert.Equal(t, "3", resp.Content[0].ParkingSpotNumber)
	assert.Equal(t, "2", resp.Content[1].ParkingSpotNumber)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, "parkingSpotNumber,desc", resp.Sort)
	assert.False(t, resp.Last)
}

func TestService_List_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService()
	negative, zero, huge := -1, 0, domain.MaxPageSize+1

	tests := []struct {
		name string
		req  *models.ListRequest
	}{
		{"negative page", &models.ListRequest{Page: &negative}},
		{"zero size", &models.ListRequest{Size: &zero}},
		{"size over max", &models.ListRequest{Size: &huge}},
		{"unknown sort field", &models.ListRequest{SortField: "owner"}},
		{"unknown direction", &models.ListRequest{SortDirection: "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_PreservesIDAndRegistrationDate(t *testing.T) {
	svc, repo, _ := newTestService()
	spot := seed(t, repo, "12A", "ABC1234", "101")

	got, err := svc.Update(context.Background(), spot.ID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, spot.ID.String(), got.ID)
	assert.Equal(t, spot.RegistrationDate, got.RegistrationDate)
	assert.Equal(t, "99", got.ParkingSpotNumber)
	assert.Equal(t, "XYZ9876", got.LicensePlateCar)
	assert.Equal(t, "Bruno", got.ResponsibleName)
	assert.Equal(t, "C", got.Block)

	stored, err := repo.GetByID(context.Background(), spot.ID)
	require.NoError(t, err)
	assert.Equal(t, "VW", stored.BrandCar)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	seed(t, repo, "12A", "ABC1234", "101")

	_, err := svc.Update(context.Background(), uuid.New(), validRequest())
	assert.ErrorIs(t, err, ErrParkingSpotNotFound)

	exists, err := repo.ExistsByLicensePlateCar(context.Background(), "XYZ9876")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_Update_Validation(t *testing.T) {
	svc, repo, _ := newTestService()
	spot := seed(t, repo, "12A", "ABC1234", "101")

	req := validRequest()
	req.LicensePlateCar = "TOOLONG1"
	req.BrandCar = "  "

	_, err := svc.Update(context.Background(), spot.ID, req)
	require.ErrorIs(t, err, ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, domain.FieldLicensePlateCar)
	assert.Contains(t, vErr.Fields, domain.FieldBrandCar)
}

func TestService_Update_StoreConflict(t *testing.T) {
	svc, repo, conflicts := newTestService()
	seed(t, repo, "1", "AAA0001", "1")
	target := seed(t, repo, "2", "AAA0002", "2")

	req := validRequest()
	req.LicensePlateCar = "AAA0001"

	_, err := svc.Update(context.Background(), target.ID, req)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrLicensePlateInUse)
	assert.Equal(t, 1, conflicts[domain.RuleLicensePlateCar])

	stored, err := repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "AAA0002", stored.LicensePlateCar)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService()
	spot := seed(t, repo, "12A", "ABC1234", "101")

	require.NoError(t, svc.Delete(context.Background(), spot.ID))

	_, err := svc.GetByID(context.Background(), spot.ID)
	assert.ErrorIs(t, err, ErrParkingSpotNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), spot.ID), ErrParkingSpotNotFound)
}

func TestService_Delete_InternalError(t *testing.T) {
	svc := NewService(brokenRepository{
		MemoryRepository: parkingSpotRepo.NewMemoryRepository(),
		err:              errors.New("connection refused"),
	}, nil, logger.NewNop())

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrInternal)
}

func TestService_Exists(t *testing.T) {
	svc, repo, _ := newTestService()
	seed(t, repo, "12A", "ABC1234", "101")
	ctx := context.Background()

	exists, err := svc.ExistsByLicensePlateCar(ctx, "ABC1234")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByParkingSpotNumber(ctx, "13")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.ExistsByApartmentAndBlock(ctx, "101", "B")
	require.NoError(t, err)
	assert.True(t, exists)
}

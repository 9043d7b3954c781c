package list_parking_spots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type recordingService struct {
	got  *models.ListRequest
	page *models.PageResponse
	err  error
}

func (s *recordingService) List(_ context.Context, req *models.ListRequest) (*models.PageResponse, error) {
	s.got = req
	return s.page, s.err
}

func serve(svc ParkingSpotService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_EmptyPage(t *testing.T) {
	svc := &recordingService{page: &models.PageResponse{
		Content: []*models.ParkingSpotResponse{},
		Page:    0,
		Size:    10,
		Sort:    "id,asc",
		First:   true,
		Last:    true,
		Empty:   true,
	}}

	w := serve(svc, "/parking-spot?page=0&size=10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"content": [],
		"page": 0,
		"size": 10,
		"totalElements": 0,
		"totalPages": 0,
		"sort": "id,asc",
		"first": true,
		"last": true,
		"empty": true
	}`, w.Body.String())
	require.NotNil(t, svc.got.Page)
	assert.Equal(t, 0, *svc.got.Page)
	assert.Equal(t, 10, *svc.got.Size)
}

func TestHandle_ParsesSort(t *testing.T) {
	svc := &recordingService{page: &models.PageResponse{Content: []*models.ParkingSpotResponse{}}}

	w := serve(svc, "/parking-spot?sort=licensePlateCar,desc")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Page)
	assert.Nil(t, svc.got.Size)
	assert.Equal(t, "licensePlateCar", svc.got.SortField)
	assert.Equal(t, "desc", svc.got.SortDirection)

	var page models.PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
}

func TestHandle_MalformedQuery(t *testing.T) {
	for _, target := range []string{
		"/parking-spot?page=abc",
		"/parking-spot?size=1.5",
		"/parking-spot?sort=,asc",
	} {
		svc := &recordingService{}
		w := serve(svc, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Nil(t, svc.got, target)
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	w := serve(&recordingService{err: parkingspots.ErrInvalidInput}, "/parking-spot?size=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(&recordingService{err: errors.New("db down")}, "/parking-spot")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

package list_parking_spots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

// parseListRequest разбирает page, size и sort=field[,direction] из query string
func parseListRequest(q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("page must be an integer: %q", raw)
		}
		req.Page = &page
	}

	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("size must be an integer: %q", raw)
		}
		req.Size = &size
	}

	if raw := q.Get("sort"); raw != "" {
		field, direction, _ := strings.Cut(raw, ",")
		req.SortField = strings.TrimSpace(field)
		req.SortDirection = strings.TrimSpace(direction)
		if req.SortField == "" {
			return nil, fmt.Errorf("sort field must not be empty: %q", raw)
		}
	}

	return req, nil
}

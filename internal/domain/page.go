package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SortDirection represents the ordering of a page
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var (
	// ErrInvalidPageRequest is returned for out-of-range paging parameters
	ErrInvalidPageRequest = errors.New("invalid page request")
)

// sortColumns maps sortable JSON field names to table columns
var sortColumns = map[string]string{
	FieldID:                "id",
	FieldParkingSpotNumber: "parking_spot_number",
	FieldLicensePlateCar:   "license_plate_car",
	FieldBrandCar:          "brand_car",
	FieldModelCar:          "model_car",
	FieldColorCar:          "color_car",
	FieldRegistrationDate:  "registration_date",
	FieldResponsibleName:   "responsible_name",
	FieldApartment:         "apartment",
	FieldBlock:             "block",
}

// SortColumn returns the table column for a sortable field
func SortColumn(field string) (string, bool) {
	column, ok := sortColumns[field]
	return column, ok
}

// PageRequest paging and ordering of a list query
type PageRequest struct {
	Page          int // zero-based
	Size          int
	SortField     string // JSON field name, see SortColumn
	SortDirection SortDirection
}

// DefaultPageRequest returns page 0 of 10 records ordered by id ascending
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:          DefaultPage,
		Size:          DefaultPageSize,
		SortField:     DefaultSortField,
		SortDirection: SortAsc,
	}
}

// Validate checks that the request can be executed by a repository
func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: page must not be negative", ErrInvalidPageRequest)
	}
	if p.Size <= 0 || p.Size > MaxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidPageRequest, MaxPageSize)
	}
	// Offset() must fit in int
	if p.Page > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page %d is out of range for size %d", ErrInvalidPageRequest, p.Page, p.Size)
	}
	if _, ok := SortColumn(p.SortField); !ok {
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidPageRequest, p.SortField)
	}
	if p.SortDirection != SortAsc && p.SortDirection != SortDesc {
		return fmt.Errorf("%w: unknown sort direction %q", ErrInvalidPageRequest, p.SortDirection)
	}
	return nil
}

// Offset returns the number of records to skip
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// SortString returns the sort in "field,direction" form
func (p PageRequest) SortString() string {
	return p.SortField + "," + string(p.SortDirection)
}

// ParseSortDirection parses "asc"/"desc" case-insensitively
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: unknown sort direction %q", ErrInvalidPageRequest, s)
}

// Page is a bounded, ordered subset of all parking spots
type Page struct {
	Items         []*ParkingSpot
	Request       PageRequest
	TotalElements int64
}

// TotalPages returns the number of pages for the request size
func (p *Page) TotalPages() int {
	if p.Request.Size <= 0 || p.TotalElements == 0 {
		return 0
	}
	size := int64(p.Request.Size)
	return int((p.TotalElements + size - 1) / size)
}

// IsFirst returns true if this is the first page
func (p *Page) IsFirst() bool {
	return p.Request.Page == 0
}

// IsLast returns true if there are no further pages
func (p *Page) IsLast() bool {
	return p.Request.Page+1 >= p.TotalPages()
}

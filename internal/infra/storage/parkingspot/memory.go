package parkingspot

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository хранит парковочные места в памяти процесса.
// Используется при storage.driver = "memory" и в тестах.
// Повторяет ограничения уникальности таблицы parking_spots.
type MemoryRepository struct {
	mu    sync.RWMutex
	spots map[uuid.UUID]*domain.ParkingSpot

	// txMu сериализует транзакции Do*, отдельно от mu
	txMu sync.Mutex
}

// NewMemoryRepository создает пустой репозиторий в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		spots: make(map[uuid.UUID]*domain.ParkingSpot),
	}
}

type memTxKey struct{}

// Do выполняет fn эксклюзивно относительно других транзакций
func (r *MemoryRepository) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	return fn(context.WithValue(ctx, memTxKey{}, struct{}{}))
}

// DoSerializable для памяти эквивалентен Do
func (r *MemoryRepository) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.Do(ctx, fn)
}

// DoReadOnly для памяти эквивалентен Do
func (r *MemoryRepository) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.Do(ctx, fn)
}

// Save вставляет новое место или обновляет существующее по id
func (r *MemoryRepository) Save(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(spot); err != nil {
		return nil, err
	}

	stored, ok := r.spots[spot.ID]
	if ok {
		stored.ReplaceDetails(spot)
	} else {
		copied := *spot
		copied.RegistrationDate = copied.RegistrationDate.UTC()
		stored = &copied
		r.spots[spot.ID] = stored
	}

	result := *stored
	return &result, nil
}

// checkUnique проверяет ограничения уникальности относительно остальных записей
func (r *MemoryRepository) checkUnique(spot *domain.ParkingSpot) error {
	for id, other := range r.spots {
		if id == spot.ID {
			continue
		}
		switch {
		case other.ParkingSpotNumber == spot.ParkingSpotNumber:
			return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateSpotNumber)
		case other.LicensePlateCar == spot.LicensePlateCar:
			return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateLicensePlate)
		case other.Apartment == spot.Apartment && other.Block == spot.Block:
			return fmt.Errorf("%w: %w", ErrDuplicate, ErrDuplicateApartmentBlock)
		}
	}
	return nil
}

// GetByID получает парковочное место по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, ErrParkingSpotNotFound
	}

	result := *spot
	return &result, nil
}

// List получает страницу парковочных мест
func (r *MemoryRepository) List(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageRequest, err)
	}

	r.mu.RLock()
	all := make([]*domain.ParkingSpot, 0, len(r.spots))
	for _, spot := range r.spots {
		copied := *spot
		all = append(all, &copied)
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		c := compareByField(all[i], all[j], req.SortField)
		if req.SortDirection == domain.SortDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return strings.Compare(all[i].ID.String(), all[j].ID.String()) < 0
	})

	page := &domain.Page{
		Items:         make([]*domain.ParkingSpot, 0),
		Request:       req,
		TotalElements: int64(len(all)),
	}

	offset := req.Offset()
	if offset >= len(all) {
		return page, nil
	}
	end := offset + req.Size
	if end > len(all) {
		end = len(all)
	}
	page.Items = append(page.Items, all[offset:end]...)

	return page, nil
}

// Delete удаляет парковочное место
func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spots[id]; !ok {
		return ErrParkingSpotNotFound
	}
	delete(r.spots, id)
	return nil
}

// ExistsByLicensePlateCar проверяет, зарегистрирован ли госномер
func (r *MemoryRepository) ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error) {
	return r.any(func(s *domain.ParkingSpot) bool {
		return s.LicensePlateCar == licensePlateCar
	}), nil
}

// ExistsByParkingSpotNumber проверяет, занят ли номер места
func (r *MemoryRepository) ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error) {
	return r.any(func(s *domain.ParkingSpot) bool {
		return s.ParkingSpotNumber == parkingSpotNumber
	}), nil
}

// ExistsByApartmentAndBlock проверяет, есть ли место у квартиры в блоке
func (r *MemoryRepository) ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error) {
	return r.any(func(s *domain.ParkingSpot) bool {
		return s.Apartment == apartment && s.Block == block
	}), nil
}

func (r *MemoryRepository) any(match func(*domain.ParkingSpot) bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, spot := range r.spots {
		if match(spot) {
			return true
		}
	}
	return false
}

// compareByField сравнивает так же, как ORDER BY по соответствующей колонке
func compareByField(a, b *domain.ParkingSpot, field string) int {
	switch field {
	case domain.FieldParkingSpotNumber:
		return strings.Compare(a.ParkingSpotNumber, b.ParkingSpotNumber)
	case domain.FieldLicensePlateCar:
		return strings.Compare(a.LicensePlateCar, b.LicensePlateCar)
	case domain.FieldBrandCar:
		return strings.Compare(a.BrandCar, b.BrandCar)
	case domain.FieldModelCar:
		return strings.Compare(a.ModelCar, b.ModelCar)
	case domain.FieldColorCar:
		return strings.Compare(a.ColorCar, b.ColorCar)
	case domain.FieldRegistrationDate:
		return a.RegistrationDate.Compare(b.RegistrationDate)
	case domain.FieldResponsibleName:
		return strings.Compare(a.ResponsibleName, b.ResponsibleName)
	case domain.FieldApartment:
		return strings.Compare(a.Apartment, b.Apartment)
	case domain.FieldBlock:
		return strings.Compare(a.Block, b.Block)
	default:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
}

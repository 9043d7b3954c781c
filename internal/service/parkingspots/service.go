package parkingspots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	parkingSpotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkingspot"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingspots/models"
)

// Service сервис для работы с парковочными местами
type Service struct {
	repo      ParkingSpotRepository
	conflicts ConflictRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса парковочных мест.
// conflicts может быть nil, если метрики отключены.
func NewService(
	repo ParkingSpotRepository,
	conflicts ConflictRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		conflicts: conflicts,
		logger:    logger,
	}
}

// GetByID получает парковочное место по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ParkingSpotResponse, error) {
	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, parkingSpotRepo.ErrParkingSpotNotFound) {
			s.logger.Warn("GetByID: parking spot id=%s not found", id)
			return nil, ErrParkingSpotNotFound
		}
		s.logger.Error("GetByID: repository error for parking spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainParkingSpot(spot), nil
}

// List получает страницу парковочных мест.
// Пустое хранилище дает пустую страницу, а не ошибку.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.PageResponse, error) {
	pageReq, err := req.ToPageRequest()
	if err != nil {
		s.logger.Warn("List: invalid page request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	page, err := s.repo.List(ctx, pageReq)
	if err != nil {
		if errors.Is(err, parkingSpotRepo.ErrInvalidPageRequest) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("List: repository error for page=%d size=%d sort=%s: %v",
			pageReq.Page, pageReq.Size, pageReq.SortString(), err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d parking spots, page=%d size=%d sort=%s",
		len(page.Items), page.TotalElements, pageReq.Page, pageReq.Size, pageReq.SortString())
	return models.FromDomainPage(page), nil
}

// Update заменяет бизнес-поля существующего места.
// id и registrationDate сохраняются. Правила уникальности здесь не проверяются,
// но нарушение ограничений хранилища возвращается как ErrConflict.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.ParkingSpotRequest) (*models.ParkingSpotResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, parkingSpotRepo.ErrParkingSpotNotFound) {
			s.logger.Warn("Update: parking spot id=%s not found", id)
			return nil, ErrParkingSpotNotFound
		}
		s.logger.Error("Update: repository error for parking spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get parking spot: %v", ErrInternal, err)
	}

	input := req.ToDomain()
	if err := input.Validate(); err != nil {
		s.logger.Warn("Update: invalid input for parking spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	existing.ReplaceDetails(input)

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		if conflictErr := s.conflictError(err); conflictErr != nil {
			s.logger.Warn("Update: parking spot id=%s rejected by store: %v", id, err)
			return nil, conflictErr
		}
		s.logger.Error("Update: failed to save parking spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - save parking spot: %v", ErrInternal, err)
	}

	s.logger.Info("Update: parking spot id=%s updated", id)
	return models.FromDomainParkingSpot(saved), nil
}

// conflictError переводит ошибку уникальности хранилища в ошибку сервиса и учитывает её в метриках
func (s *Service) conflictError(err error) error {
	if !errors.Is(err, parkingSpotRepo.ErrDuplicate) {
		return nil
	}

	var rule string
	var ruleErr error
	switch {
	case errors.Is(err, parkingSpotRepo.ErrDuplicateLicensePlate):
		rule, ruleErr = domain.RuleLicensePlateCar, ErrLicensePlateInUse
	case errors.Is(err, parkingSpotRepo.ErrDuplicateSpotNumber):
		rule, ruleErr = domain.RuleParkingSpotNumber, ErrParkingSpotInUse
	case errors.Is(err, parkingSpotRepo.ErrDuplicateApartmentBlock):
		rule, ruleErr = domain.RuleApartmentBlock, ErrApartmentBlockInUse
	default:
		return ErrConflict
	}

	if s.conflicts != nil {
		s.conflicts.IncConflict(rule)
	}
	return fmt.Errorf("%w: %w", ErrConflict, ruleErr)
}

// Delete удаляет парковочное место
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, parkingSpotRepo.ErrParkingSpotNotFound) {
			s.logger.Warn("Delete: parking spot id=%s not found", id)
			return ErrParkingSpotNotFound
		}
		s.logger.Error("Delete: repository error for parking spot id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: parking spot id=%s deleted", id)
	return nil
}

// ExistsByLicensePlateCar проверяет, закреплен ли госномер за каким-либо местом
func (s *Service) ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error) {
	exists, err := s.repo.ExistsByLicensePlateCar(ctx, licensePlateCar)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByLicensePlateCar - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

// ExistsByParkingSpotNumber проверяет, занят ли номер места
func (s *Service) ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error) {
	exists, err := s.repo.ExistsByParkingSpotNumber(ctx, parkingSpotNumber)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByParkingSpotNumber - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

// ExistsByApartmentAndBlock проверяет, есть ли место у квартиры в блоке
func (s *Service) ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error) {
	exists, err := s.repo.ExistsByApartmentAndBlock(ctx, apartment, block)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByApartmentAndBlock - repository error: %v", ErrInternal, err)
	}
	return exists, nil
}

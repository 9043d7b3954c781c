package create_parking_spot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	parkingSpotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkingspot"
)

// UseCase use case для регистрации парковочного места
type UseCase struct {
	repo         ParkingSpotRepository
	rules        UniquenessChecker
	txManager    TransactionManager
	conflicts    ConflictRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// conflicts может быть nil, если метрики отключены.
func NewUseCase(
	repo ParkingSpotRepository,
	rules UniquenessChecker,
	txManager TransactionManager,
	conflicts ConflictRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		rules:        rules,
		txManager:    txManager,
		conflicts:    conflicts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case регистрации парковочного места.
// Проверки уникальности и вставка выполняются в одной сериализуемой транзакции.
// Правила проверяются по порядку: госномер, номер места, квартира/блок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateParkingSpot: number=%s, plate=%s, apartment=%s, block=%s",
		req.ParkingSpotNumber, req.LicensePlateCar, req.Apartment, req.Block)

	// 1. Валидация входных данных
	spot := req.toDomain()
	if err := validateRequest(spot); err != nil {
		uc.logger.Warn("CreateParkingSpot: validation failed: %v", err)
		return nil, err
	}

	// 2. Идентификатор и дата регистрации (точность PostgreSQL timestamptz)
	spot.ID = uuid.New()
	spot.RegistrationDate = uc.timeProvider.Now().UTC().Truncate(time.Microsecond)

	var result *domain.ParkingSpot

	// 3. Проверки и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkRules(txCtx, spot); err != nil {
			return err
		}

		saved, err := uc.repo.Save(txCtx, spot)
		if err != nil {
			if ruleErr := uc.duplicateError(err); ruleErr != nil {
				uc.logger.Warn("CreateParkingSpot: rejected by store: %v", err)
				return ruleErr
			}
			uc.logger.Error("CreateParkingSpot: failed to save parking spot: %v", err)
			return fmt.Errorf("%w: failed to save parking spot: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		if isRuleError(err) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateParkingSpot: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateParkingSpot: parking spot id=%s created", result.ID)
	return fromDomain(result), nil
}

// checkRules проверяет правила уникальности, первое нарушенное возвращается ошибкой
func (uc *UseCase) checkRules(ctx context.Context, spot *domain.ParkingSpot) error {
	checks := []struct {
		rule    string
		ruleErr error
		exists  func() (bool, error)
	}{
		{domain.RuleLicensePlateCar, ErrLicensePlateInUse, func() (bool, error) {
			return uc.rules.ExistsByLicensePlateCar(ctx, spot.LicensePlateCar)
		}},
		{domain.RuleParkingSpotNumber, ErrParkingSpotInUse, func() (bool, error) {
			return uc.rules.ExistsByParkingSpotNumber(ctx, spot.ParkingSpotNumber)
		}},
		{domain.RuleApartmentBlock, ErrApartmentBlockInUse, func() (bool, error) {
			return uc.rules.ExistsByApartmentAndBlock(ctx, spot.Apartment, spot.Block)
		}},
	}

	for _, c := range checks {
		exists, err := c.exists()
		if err != nil {
			uc.logger.Error("CreateParkingSpot: failed to check rule %s: %v", c.rule, err)
			return fmt.Errorf("%w: failed to check rule %s: %v", ErrInternal, c.rule, err)
		}
		if exists {
			uc.logger.Warn("CreateParkingSpot: rule %s violated", c.rule)
			uc.recordConflict(c.rule)
			return c.ruleErr
		}
	}

	return nil
}

// duplicateError переводит нарушение ограничения уникальности хранилища в ошибку правила
func (uc *UseCase) duplicateError(err error) error {
	switch {
	case errors.Is(err, parkingSpotRepo.ErrDuplicateLicensePlate):
		uc.recordConflict(domain.RuleLicensePlateCar)
		return ErrLicensePlateInUse
	case errors.Is(err, parkingSpotRepo.ErrDuplicateSpotNumber):
		uc.recordConflict(domain.RuleParkingSpotNumber)
		return ErrParkingSpotInUse
	case errors.Is(err, parkingSpotRepo.ErrDuplicateApartmentBlock):
		uc.recordConflict(domain.RuleApartmentBlock)
		return ErrApartmentBlockInUse
	}
	return nil
}

func (uc *UseCase) recordConflict(rule string) {
	if uc.conflicts != nil {
		uc.conflicts.IncConflict(rule)
	}
}

func isRuleError(err error) bool {
	return errors.Is(err, ErrLicensePlateInUse) ||
		errors.Is(err, ErrParkingSpotInUse) ||
		errors.Is(err, ErrApartmentBlockInUse)
}

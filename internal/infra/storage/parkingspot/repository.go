package parkingspot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий парковочных мест в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковочных мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save вставляет новое место или обновляет существующее по id.
// registration_date записывается только при вставке.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Save(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			spot.ID,
			spot.ParkingSpotNumber,
			spot.LicensePlateCar,
			spot.BrandCar,
			spot.ModelCar,
			spot.ColorCar,
			spot.RegistrationDate,
			spot.ResponsibleName,
			spot.Apartment,
			spot.Block,
		).
		Suffix(upsertSuffix).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanParkingSpot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

// GetByID получает парковочное место по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	spot, err := scanParkingSpot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrParkingSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan parking spot: %v", ErrScanRow, err)
	}

	return spot, nil
}

// List получает страницу парковочных мест.
// При равенстве значений сортировки порядок стабилизируется по id.
func (r *Repository) List(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageRequest, err)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From(tableName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%w: List - count parking spots: %v", ErrExecQuery, err)
	}

	page := &domain.Page{
		Items:         make([]*domain.ParkingSpot, 0),
		Request:       req,
		TotalElements: total,
	}

	// Запрошенная страница за пределами данных - не ходим в БД второй раз
	if int64(req.Offset()) >= total {
		return page, nil
	}

	column, _ := domain.SortColumn(req.SortField)
	orderBy := []string{column + " " + strings.ToUpper(string(req.SortDirection))}
	if column != "id" {
		orderBy = append(orderBy, "id ASC")
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy(orderBy...).
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		page.Items = append(page.Items, spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return page, nil
}

// Delete удаляет парковочное место
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrParkingSpotNotFound
	}

	return nil
}

// ExistsByLicensePlateCar проверяет, зарегистрирован ли госномер
func (r *Repository) ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error) {
	return r.exists(ctx, "ExistsByLicensePlateCar", squirrel.Eq{"license_plate_car": licensePlateCar})
}

// ExistsByParkingSpotNumber проверяет, занят ли номер места
func (r *Repository) ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error) {
	return r.exists(ctx, "ExistsByParkingSpotNumber", squirrel.Eq{"parking_spot_number": parkingSpotNumber})
}

// ExistsByApartmentAndBlock проверяет, есть ли место у квартиры в блоке
func (r *Repository) ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error) {
	return r.exists(ctx, "ExistsByApartmentAndBlock", squirrel.Eq{"apartment": apartment, "block": block})
}

func (r *Repository) exists(ctx context.Context, op string, where squirrel.Eq) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS(").
		From(tableName).
		Where(where).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build exists query: %v", ErrBuildQuery, op, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %s - execute exists query: %v", ErrExecQuery, op, err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanParkingSpot сканирует строку в порядке columns
func scanParkingSpot(row rowScanner) (*domain.ParkingSpot, error) {
	var spot domain.ParkingSpot

	err := row.Scan(
		&spot.ID,
		&spot.ParkingSpotNumber,
		&spot.LicensePlateCar,
		&spot.BrandCar,
		&spot.ModelCar,
		&spot.ColorCar,
		&spot.RegistrationDate,
		&spot.ResponsibleName,
		&spot.Apartment,
		&spot.Block,
	)
	if err != nil {
		return nil, err
	}

	spot.RegistrationDate = spot.RegistrationDate.UTC()
	return &spot, nil
}

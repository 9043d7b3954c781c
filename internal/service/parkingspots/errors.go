package parkingspots

import "errors"

var (
	// ErrParkingSpotNotFound возвращается, когда парковочное место не найдено
	ErrParkingSpotNotFound = errors.New("parking spot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConflict возвращается, когда хранилище отклонило запись по ограничению уникальности
	ErrConflict = errors.New("parking spot conflicts with an existing one")

	// ErrLicensePlateInUse госномер уже закреплен за другим местом (вместе с ErrConflict)
	ErrLicensePlateInUse = errors.New("license plate car is already in use")

	// ErrParkingSpotInUse номер места уже занят (вместе с ErrConflict)
	ErrParkingSpotInUse = errors.New("parking spot is already in use")

	// ErrApartmentBlockInUse у квартиры в блоке уже есть место (вместе с ErrConflict)
	ErrApartmentBlockInUse = errors.New("parking spot already registered for this apartment/block")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

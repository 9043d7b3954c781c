package create_parking_spot

import "errors"

var (
	// ErrLicensePlateInUse возвращается, когда госномер уже закреплен за местом
	ErrLicensePlateInUse = errors.New("create_parking_spot: license plate car is already in use")

	// ErrParkingSpotInUse возвращается, когда номер места уже занят
	ErrParkingSpotInUse = errors.New("create_parking_spot: parking spot is already in use")

	// ErrApartmentBlockInUse возвращается, когда у квартиры в блоке уже есть место
	ErrApartmentBlockInUse = errors.New("create_parking_spot: parking spot already registered for this apartment/block")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_parking_spot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_parking_spot: internal error")
)

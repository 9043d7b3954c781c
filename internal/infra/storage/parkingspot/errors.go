package parkingspot

import "errors"

var (
	// ErrParkingSpotNotFound возвращается, когда парковочное место не найдено
	ErrParkingSpotNotFound = errors.New("parkingspot.repository: parking spot not found")

	// ErrDuplicate возвращается при нарушении ограничения уникальности
	ErrDuplicate = errors.New("parkingspot.repository: duplicate parking spot")

	// ErrDuplicateLicensePlate госномер уже зарегистрирован (оборачивается вместе с ErrDuplicate)
	ErrDuplicateLicensePlate = errors.New("parkingspot.repository: license plate already registered")

	// ErrDuplicateSpotNumber номер места уже занят
	ErrDuplicateSpotNumber = errors.New("parkingspot.repository: parking spot number already registered")

	// ErrDuplicateApartmentBlock для квартиры и блока уже есть место
	ErrDuplicateApartmentBlock = errors.New("parkingspot.repository: apartment/block already registered")

	// ErrInvalidPageRequest возвращается при некорректных параметрах пагинации
	ErrInvalidPageRequest = errors.New("parkingspot.repository: invalid page request")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parkingspot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parkingspot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parkingspot.repository: failed to scan row")
)

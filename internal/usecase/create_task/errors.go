package create_task

import "errors"

var (
	// ErrMissingResource возвращается, когда не указан водитель или транспорт
	ErrMissingResource = errors.New("create_task: driver and vehicle are required")

	// ErrMissingEndpoint возвращается, когда не указана точка начала или
	// окончания маршрута
	ErrMissingEndpoint = errors.New("create_task: start and end locations are required")

	// ErrInvalidWindow возвращается при некорректном временном окне
	ErrInvalidWindow = errors.New("create_task: invalid window")

	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("create_task: driver not found")

	// ErrVehicleNotFound возвращается, когда транспортное средство не найдено
	ErrVehicleNotFound = errors.New("create_task: vehicle not found")

	// ErrResourceUnavailable возвращается, когда повторная проверка
	// доступности на момент коммита не прошла (гонка или устаревший снимок)
	ErrResourceUnavailable = errors.New("create_task: resource is not available for the requested window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_task: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_task: internal error")
)

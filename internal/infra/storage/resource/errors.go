package resource

import "errors"

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("resource.repository: driver not found")

	// ErrVehicleNotFound возвращается, когда транспортное средство не найдено
	ErrVehicleNotFound = errors.New("resource.repository: vehicle not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)

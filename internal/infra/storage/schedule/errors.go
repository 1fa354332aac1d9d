package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание на дату не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrInvalidSchedule возвращается при попытке записать расписание,
	// нарушающее инвариант 48 слотов
	ErrInvalidSchedule = errors.New("schedule.repository: invalid schedule payload")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

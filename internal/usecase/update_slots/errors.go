package update_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_slots: invalid input data")

	// ErrInvalidRange возвращается при некорректном диапазоне слотов
	ErrInvalidRange = errors.New("update_slots: invalid slot range")

	// ErrNoScheduleFound возвращается, когда у ресурса нет материализованного
	// расписания на дату и вызывающая сторона не запросила материализацию
	ErrNoScheduleFound = errors.New("update_slots: no schedule found for resource and date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_slots: internal error")
)

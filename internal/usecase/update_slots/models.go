package update_slots

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Request модель запроса на пакетное изменение слотов одного ресурса.
// Диапазон [StartIndex, EndIndex] включительный; применяется целиком или
// никак. Для водителя используется DriverStatus, для транспорта Available.
type Request struct {
	ResourceID string
	Kind       domain.ResourceKind
	Date       time.Time
	StartIndex int
	EndIndex   int

	DriverStatus domain.DriverSlotStatus // только для Kind == KindDriver
	Available    bool                    // только для Kind == KindVehicle

	// Materialize разрешает создать расписание из политики по умолчанию,
	// если на дату ничего не материализовано. Без флага такой запрос
	// завершается ErrNoScheduleFound: решение остаётся за вызывающим.
	Materialize bool
}

// Response модель ответа с обновлённым расписанием
type Response struct {
	Schedule domain.DaySchedule
}

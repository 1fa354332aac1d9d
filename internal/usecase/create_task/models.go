package create_task

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Request модель запроса на создание задачи
type Request struct {
	DriverID      string              // ID водителя (обязателен)
	VehicleID     string              // ID транспортного средства (обязателен)
	Date          time.Time           // Дата задачи (без времени)
	StartIndex    int                 // Индекс первого слота окна
	DurationSlots int                 // Длительность окна в слотах
	LocationStart string              // Точка начала маршрута (обязательна)
	LocationEnd   string              // Точка окончания маршрута (обязательна)
	Priority      domain.TaskPriority // Приоритет; по умолчанию medium
}

// Response модель ответа с созданной задачей и применёнными мутациями
// расписаний (водитель -> busy, транспорт -> недоступен)
type Response struct {
	Task      domain.Task
	Mutations [2]domain.SlotMutation
}

package match_resources

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Request модель запроса на подбор свободных ресурсов
type Request struct {
	Date          time.Time // Дата (без времени)
	StartIndex    int       // Индекс первого слота окна [0,47]
	DurationSlots int       // Длительность окна в слотах [1,48-StartIndex]
}

// Response модель ответа: ресурсы, свободные на всё окно.
// Порядок совпадает с порядком справочника, без дополнительной сортировки.
type Response struct {
	Date          time.Time
	StartIndex    int
	DurationSlots int
	Drivers       []*domain.Driver
	Vehicles      []*domain.Vehicle
}

package match_resources

import (
	"github.com/m04kA/SMC-FleetService/internal/domain"
	matchResources "github.com/m04kA/SMC-FleetService/internal/usecase/match_resources"
)

// DriverResponse HTTP модель водителя
type DriverResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	IsActive      bool   `json:"isActive"`
}

// VehicleResponse HTTP модель транспортного средства
type VehicleResponse struct {
	ID              string `json:"id"`
	PlateNumber     string `json:"plateNumber"`
	VehicleType     string `json:"vehicleType"`
	Seats           int    `json:"seats"`
	LifecycleStatus string `json:"lifecycleStatus"`
	IsActive        bool   `json:"isActive"`
}

// AvailableResourcesResponse HTTP модель ответа подбора
type AvailableResourcesResponse struct {
	Date          string            `json:"date"`
	StartIndex    int               `json:"startIndex"`
	DurationSlots int               `json:"durationSlots"`
	Drivers       []DriverResponse  `json:"drivers"`
	Vehicles      []VehicleResponse `json:"vehicles"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchResources.Response) *AvailableResourcesResponse {
	drivers := make([]DriverResponse, 0, len(resp.Drivers))
	for _, d := range resp.Drivers {
		drivers = append(drivers, DriverResponse{
			ID:            d.ID,
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			IsActive:      d.IsActive,
		})
	}

	vehicles := make([]VehicleResponse, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		vehicles = append(vehicles, VehicleResponse{
			ID:              v.ID,
			PlateNumber:     v.PlateNumber,
			VehicleType:     v.VehicleType,
			Seats:           v.Seats,
			LifecycleStatus: string(v.LifecycleStatus),
			IsActive:        v.IsActive,
		})
	}

	return &AvailableResourcesResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		StartIndex:    resp.StartIndex,
		DurationSlots: resp.DurationSlots,
		Drivers:       drivers,
		Vehicles:      vehicles,
	}
}

package set_resource_active

// SetActiveRequest тело запроса на смену активности ресурса
type SetActiveRequest struct {
	Kind   string `json:"kind"`
	Active *bool  `json:"active"`
}

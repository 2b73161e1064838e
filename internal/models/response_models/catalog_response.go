package response_models

type PackageResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	NumPeople       int     `json:"num_people"`
	TotalSessions   int     `json:"total_sessions"`
	PricePerSession float64 `json:"price_per_session"`
	IsActive        bool    `json:"is_active"`
}

type TrainerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

package request_models

type PackageRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	NumPeople       int     `json:"num_people" binding:"required,gte=1"`
	TotalSessions   int     `json:"total_sessions" binding:"required,gt=0"`
	PricePerSession float64 `json:"price_per_session" binding:"gte=0"`
}

type TrainerRequest struct {
	Name string `json:"name" binding:"required"`
}

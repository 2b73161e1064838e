package request_models

import "time"

type CreateSessionRequest struct {
	DurationMinutes int        `json:"duration_minutes" binding:"required"`
	Trainer         string     `json:"trainer"`
	TrainerID       *string    `json:"trainer_id"`
	SessionDate     *time.Time `json:"session_date"`
	PartnerEmail    *string    `json:"partner_email" binding:"omitempty,email"`
}

type UpdateSessionRequest struct {
	SessionDate     *time.Time `json:"session_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Trainer         *string    `json:"trainer"`
	TrainerID       *string    `json:"trainer_id"`
}

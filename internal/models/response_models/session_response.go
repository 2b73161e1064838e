package response_models

import "time"

type SessionResponse struct {
	ID                string    `json:"id"`
	PurchaseID        string    `json:"purchase_id"`
	SessionDate       time.Time `json:"session_date"`
	DurationMinutes   int       `json:"duration_minutes"`
	Trainer           string    `json:"trainer"`
	TrainerID         string    `json:"trainer_id,omitempty"`
	NumPeople         int       `json:"num_people"`
	PurchaseExhausted bool      `json:"purchase_exhausted"`
	IsOwner           bool      `json:"is_owner"`
	PartnerName       string    `json:"partner_name,omitempty"`
}

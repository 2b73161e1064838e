package response_models

import "time"

// PurchaseResponse is the display projection of a purchase for one viewing
// account. Cost is zeroed for non-owners at annotation time; the stored record
// is never touched.
type PurchaseResponse struct {
	ID                string    `json:"id"`
	DurationMinutes   int       `json:"duration_minutes"`
	NumPeople         int       `json:"num_people"`
	TotalSessions     int       `json:"total_sessions"`
	SessionsRemaining int       `json:"sessions_remaining"`
	Cost              float64   `json:"cost"`
	PurchaseDate      time.Time `json:"purchase_date"`
	PartnerEmail      string    `json:"partner_email,omitempty"`
	IsOwner           bool      `json:"is_owner"`
	PartnerName       string    `json:"partner_name,omitempty"`
}

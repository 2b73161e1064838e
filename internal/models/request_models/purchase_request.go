package request_models

import "time"

// CreatePurchaseRequest either instantiates a catalog package (package_id) or
// carries explicit fields for an ad-hoc purchase.
type CreatePurchaseRequest struct {
	PackageID       *string    `json:"package_id"`
	DurationMinutes int        `json:"duration_minutes"`
	NumPeople       int        `json:"num_people"`
	TotalSessions   int        `json:"total_sessions"`
	Cost            float64    `json:"cost"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	PartnerEmail    *string    `json:"partner_email" binding:"omitempty,email"`
}

// UpdatePurchaseRequest covers the owner-editable fields only; the session
// counter is never settable by a client.
type UpdatePurchaseRequest struct {
	Cost         *float64   `json:"cost"`
	PurchaseDate *time.Time `json:"purchase_date"`
	NumPeople    *int       `json:"num_people"`
}

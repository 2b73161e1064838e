package db_models

// Package is an admin-managed template purchases are instantiated from.
// Deactivation is the only mutation allowed once a purchase references it;
// existing purchases keep their copied fields.
type Package struct {
	BaseModel
	Name            string `gorm:"size:255"`
	DurationMinutes int    `gorm:"index"`
	NumPeople       int    `gorm:"default:1"`
	TotalSessions   int
	PricePerSession float64
	IsActive        bool `gorm:"default:true"`
}

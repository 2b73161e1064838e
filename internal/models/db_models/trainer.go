package db_models

// Trainer rows are soft-deleted only; historical sessions keep pointing at
// deactivated trainers.
type Trainer struct {
	BaseModel
	Name     string `gorm:"size:255;uniqueIndex"`
	IsActive bool   `gorm:"default:true"`
}

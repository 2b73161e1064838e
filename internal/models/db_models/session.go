package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one consumption event. It always references exactly one purchase
// and its duration always equals that purchase's duration.
type Session struct {
	BaseModel
	PurchaseID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByID uuid.UUID `gorm:"type:uuid;index;not null"`

	SessionDate     time.Time `gorm:"index"`
	DurationMinutes int

	// Legacy free-text trainer name and the structured reference may both be
	// present; display prefers TrainerID when set.
	Trainer   string     `gorm:"size:255;index"`
	TrainerID *uuid.UUID `gorm:"type:uuid"`

	// Set only when an explicit per-session partner was supplied at logging
	// time. When nil the partner is inherited from the purchase at read time.
	PartnerAccountID *uuid.UUID `gorm:"type:uuid;index"`

	Purchase       Purchase `gorm:"foreignKey:PurchaseID"`
	CreatedBy      Account  `gorm:"foreignKey:CreatedByID"`
	PartnerAccount *Account `gorm:"foreignKey:PartnerAccountID"`
	TrainerRef     *Trainer `gorm:"foreignKey:TrainerID"`
}

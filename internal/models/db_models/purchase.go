package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is an entitlement instance: a finite pack of sessions bought by one
// account, optionally shared with a partner. SessionsRemaining only moves
// through session logging (minus one) and session deletion (plus one), with
// 0 <= SessionsRemaining <= TotalSessions holding at all times.
type Purchase struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null"`

	DurationMinutes   int `gorm:"index"`
	NumPeople         int `gorm:"default:1"`
	TotalSessions     int
	SessionsRemaining int
	Cost              float64 `gorm:"default:0"`
	PurchaseDate      time.Time `gorm:"index"`

	// Provenance when instantiated from a catalog package; nil for purchases
	// logged with explicit fields.
	PackageID *uuid.UUID `gorm:"type:uuid"`

	// PartnerEmail is permanent once set; PartnerAccountID transitions from
	// nil to set at most once, either at creation (email already matches an
	// account) or later through auto-linking.
	PartnerEmail     *string    `gorm:"size:255;index"`
	PartnerAccountID *uuid.UUID `gorm:"type:uuid;index"`

	Owner          Account  `gorm:"foreignKey:OwnerID"`
	PartnerAccount *Account `gorm:"foreignKey:PartnerAccountID"`
	Package        *Package `gorm:"foreignKey:PackageID"`
	Sessions       []Session
}

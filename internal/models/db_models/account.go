package db_models

import (
	"gorm.io/datatypes"
)

type AccountRole string

const (
	RoleClient AccountRole = "client"
	RoleAdmin  AccountRole = "admin"
)

// Account is created on first successful Google login and never hard-deleted,
// only deactivated.
type Account struct {
	BaseModel
	GoogleSub     string      `gorm:"uniqueIndex;size:255"`
	Email         string      `gorm:"uniqueIndex;size:255"`
	EmailVerified bool
	FullName      string      `gorm:"size:255"`
	AvatarURL     string      `gorm:"size:512"`
	Role          AccountRole `gorm:"size:50;default:client"`
	IsActive      bool        `gorm:"default:true"`
	LastLoginAt   int64

	// Last ID-token claims as delivered by the provider, kept for debugging
	// profile drift.
	RawClaims datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Purchases []Purchase `gorm:"foreignKey:OwnerID"`
	Sessions  []Session  `gorm:"foreignKey:CreatedByID"`
}

package models

import "gorm.io/gorm"

// UserProfile holds contact details, exactly one per user. It is created
// lazily the first time settings are accessed.
type UserProfile struct {
	gorm.Model

	UserID  uint    `gorm:"not null;uniqueIndex"`
	Phone   *string `gorm:"size:20"`
	Address *string
	Bio     *string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

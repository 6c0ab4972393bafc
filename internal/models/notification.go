package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification rows are hard-deleted through Unscoped queries; read_at is
// non-nil exactly when is_read is true.
type Notification struct {
	gorm.Model

	UserID  uint             `gorm:"not null;index"`
	Type    NotificationType `gorm:"size:50;not null"`
	Title   string           `gorm:"size:255;not null"`
	Message string           `gorm:"not null"`
	IsRead  bool             `gorm:"default:false"`
	ReadAt  *time.Time

	// Optional link to the scholarship the notification is about
	ScholarshipID *uint `gorm:"index"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Scholarship *Scholarship `gorm:"foreignKey:ScholarshipID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Scholarship is written by the ingestion pipeline; this service only reads
// it for recommendations and deadline notifications.
type Scholarship struct {
	gorm.Model

	Title        string       `gorm:"size:255;not null"`
	Description  string
	ProgramLevel ProgramLevel `gorm:"size:50;index"`
	FieldOfStudy string       `gorm:"size:100"`
	StudyCountry string       `gorm:"size:100"`
	Amount       string       `gorm:"size:100"`
	Deadline     time.Time    `gorm:"index"`
	IsActive     bool         `gorm:"default:true;index"`
	IsFeatured   bool         `gorm:"default:false"`

	UseInternalApplication bool           `gorm:"default:false"`
	RequiredDocuments      datatypes.JSON `gorm:"type:jsonb"`
	RequiredForms          datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Notifications []Notification `gorm:"foreignKey:ScholarshipID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

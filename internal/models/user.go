package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"` // authentication identifier, stored lowercase
	PasswordHash string `gorm:"not null"`
	FullName     string `gorm:"size:50;not null"`

	// Academic information
	ProgramLevel *ProgramLevel `gorm:"size:50"`
	FieldOfStudy *string       `gorm:"size:100"`
	CGPA         *float64
	Grades       *string `gorm:"size:10"`
	Country      *string `gorm:"size:100"`

	// Study preferences
	PreferredCountry      *string       `gorm:"size:100"`
	PreferredProgramLevel *ProgramLevel `gorm:"size:50"`
	BudgetRange           *string       `gorm:"size:50"`
	StudyDuration         *string       `gorm:"size:50"`

	NewsletterSubscribed bool `gorm:"default:false"`

	// Relationships
	Profile       *UserProfile   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package types

import (
	"time"

	"github.com/scholarmatch-dev/scholarmatch/internal/models"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	ProgramLevel *models.ProgramLevel `json:"program_level"`
	FieldOfStudy *string              `json:"field_of_study"`
	CGPA         *float64             `json:"cgpa"`
	Grades       *string              `json:"grades"`
	Country      *string              `json:"country"`

	PreferredCountry      *string              `json:"preferred_country"`
	PreferredProgramLevel *models.ProgramLevel `json:"preferred_program_level"`
	BudgetRange           *string              `json:"budget_range"`
	StudyDuration         *string              `json:"study_duration"`

	NewsletterSubscribed bool `json:"newsletter_subscribed"`
}

type ProfileResponse struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

type NotificationResponse struct {
	ID            uint                    `json:"id"`
	Type          models.NotificationType `json:"notification_type"`
	Title         string                  `json:"title"`
	Message       string                  `json:"message"`
	IsRead        bool                    `json:"is_read"`
	ReadAt        *time.Time              `json:"read_at"`
	ScholarshipID *uint                   `json:"scholarship_id"`
	CreatedAt     time.Time               `json:"created_at"`
}

type ScholarshipResponse struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ProgramLevel models.ProgramLevel `json:"program_level"`
	FieldOfStudy string              `json:"field_of_study"`
	StudyCountry string              `json:"study_country"`
	Amount       string              `json:"amount"`
	Deadline     time.Time           `json:"deadline"`
	IsFeatured   bool                `json:"is_featured"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:                    user.ID,
		Email:                 user.Email,
		FullName:              user.FullName,
		ProgramLevel:          user.ProgramLevel,
		FieldOfStudy:          user.FieldOfStudy,
		CGPA:                  user.CGPA,
		Grades:                user.Grades,
		Country:               user.Country,
		PreferredCountry:      user.PreferredCountry,
		PreferredProgramLevel: user.PreferredProgramLevel,
		BudgetRange:           user.BudgetRange,
		StudyDuration:         user.StudyDuration,
		NewsletterSubscribed:  user.NewsletterSubscribed,
	}
}

func NewNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		ScholarshipID: n.ScholarshipID,
		CreatedAt:     n.CreatedAt,
	}
}

func NewScholarshipResponse(s models.Scholarship) ScholarshipResponse {
	return ScholarshipResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		ProgramLevel: s.ProgramLevel,
		FieldOfStudy: s.FieldOfStudy,
		StudyCountry: s.StudyCountry,
		Amount:       s.Amount,
		Deadline:     s.Deadline,
		IsFeatured:   s.IsFeatured,
	}
}

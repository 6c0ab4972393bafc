package services

import (
	"errors"
	"time"

	"github.com/scholarmatch-dev/scholarmatch/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing notification and one owned by
	// another user, so responses never reveal which it was.
	ErrNotFound = errors.New("notification not found")

	ErrNoneSelected = errors.New("no notifications selected")
)

// NotificationService owns the notification lifecycle. Every lookup and
// mutation is scoped to the acting user in a single combined query, and
// deletes are permanent.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Create(userID uint, notificationType models.NotificationType, title, message string, scholarshipID *uint) (*models.Notification, error) {
	notification := models.Notification{
		UserID:        userID,
		Type:          notificationType,
		Title:         title,
		Message:       message,
		ScholarshipID: scholarshipID,
	}

	if err := s.db.Create(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification

	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error

	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead stamps read_at even when the notification was already read, so
// repeated calls succeed and refresh the timestamp.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now()})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// MarkAllRead updates only the currently-unread rows and returns how many
// changed; a second consecutive call reports 0.
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now()})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (s *NotificationService) Delete(userID, notificationID uint) error {
	result := s.db.Unscoped().
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteSelected removes the owned subset of ids and reports how many rows
// went away. Ids that are absent or belong to someone else are skipped
// without error.
func (s *NotificationService) DeleteSelected(userID uint, notificationIDs []uint) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, ErrNoneSelected
	}

	result := s.db.Unscoped().
		Where("id IN ? AND user_id = ?", notificationIDs, userID).
		Delete(&models.Notification{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (s *NotificationService) DeleteAll(userID uint) (int64, error) {
	result := s.db.Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.Notification{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64

	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// HasDeadlineNotice reports whether the user was already notified about a
// scholarship with the given type. The deadline sweep uses it to avoid
// duplicate reminders.
func (s *NotificationService) HasDeadlineNotice(userID, scholarshipID uint, notificationType models.NotificationType) (bool, error) {
	var count int64

	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND scholarship_id = ? AND type = ?", userID, scholarshipID, notificationType).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

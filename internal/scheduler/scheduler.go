package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/scholarmatch-dev/scholarmatch/db"
	"github.com/scholarmatch-dev/scholarmatch/internal/matching"
	"github.com/scholarmatch-dev/scholarmatch/internal/models"
	"github.com/scholarmatch-dev/scholarmatch/internal/services"
)

// SweepInterval is how often the deadline sweep runs.
const SweepInterval = 24 * time.Hour

// Scheduler runs the scholarship deadline sweep: it reminds users about
// upcoming deadlines on scholarships their preferences match.
type Scheduler struct {
	ticker *time.Ticker
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs an immediate sweep and then repeats on the interval.
func (s *Scheduler) Start() {
	log.Println("Starting deadline scheduler...")

	s.ticker = time.NewTicker(SweepInterval)

	go func() {
		s.runSweep()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-s.ticker.C:
				s.runSweep()
			}
		}
	}()
}

// Stop shuts down the sweep loop.
func (s *Scheduler) Stop() {
	log.Println("Stopping deadline scheduler...")
	s.cancel()

	if s.ticker != nil {
		s.ticker.Stop()
	}

	log.Println("Deadline scheduler stopped")
}

// NoticeForDeadline maps a deadline to the reminder type due now: today at
// zero days out, soon within three, approaching within seven. Past
// deadlines and anything further out produce no reminder.
func NoticeForDeadline(deadline, now time.Time) (models.NotificationType, bool) {
	daysLeft := int(deadline.Sub(now).Hours() / 24)

	switch {
	case deadline.Before(now):
		return "", false
	case daysLeft < 1:
		return models.NotificationDeadlineToday, true
	case daysLeft <= 3:
		return models.NotificationDeadlineSoon, true
	case daysLeft <= 7:
		return models.NotificationDeadlineApproaching, true
	}

	return "", false
}

// runSweep creates deadline reminders for every user whose recommendations
// include a scholarship closing within the week, skipping reminders the
// user already has.
func (s *Scheduler) runSweep() {
	now := time.Now()

	var scholarships []models.Scholarship

	if err := db.DB.Where("is_active = ? AND deadline >= ?", true, now).Find(&scholarships).Error; err != nil {
		log.Printf("Deadline sweep: failed to load scholarships: %v", err)
		return
	}

	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		log.Printf("Deadline sweep: failed to load users: %v", err)
		return
	}

	svc := services.NewNotificationService(db.DB)
	created := 0

	for _, user := range users {
		for _, scholarship := range matching.Recommend(user, scholarships) {
			noticeType, due := NoticeForDeadline(scholarship.Deadline, now)

			if !due {
				continue
			}

			already, err := svc.HasDeadlineNotice(user.ID, scholarship.ID, noticeType)

			if err != nil {
				log.Printf("Deadline sweep: failed to check existing notice: %v", err)
				continue
			}

			if already {
				continue
			}

			scholarshipID := scholarship.ID
			title, message := reminderText(noticeType, scholarship)

			if _, err := svc.Create(user.ID, noticeType, title, message, &scholarshipID); err != nil {
				log.Printf("Deadline sweep: failed to create notification: %v", err)
				continue
			}

			created++
		}
	}

	if created > 0 {
		log.Printf("Deadline sweep created %d notification(s)", created)
	}
}

func reminderText(noticeType models.NotificationType, scholarship models.Scholarship) (string, string) {
	deadline := scholarship.Deadline.Format("January 2, 2006")

	switch noticeType {
	case models.NotificationDeadlineToday:
		return fmt.Sprintf("Deadline today: %s", scholarship.Title),
			fmt.Sprintf("Applications for %s close today (%s).", scholarship.Title, deadline)
	case models.NotificationDeadlineSoon:
		return fmt.Sprintf("Deadline soon: %s", scholarship.Title),
			fmt.Sprintf("Applications for %s close on %s.", scholarship.Title, deadline)
	default:
		return fmt.Sprintf("Deadline approaching: %s", scholarship.Title),
			fmt.Sprintf("%s is closing applications on %s.", scholarship.Title, deadline)
	}
}

// Global scheduler instance
var globalScheduler *Scheduler

// Initialize creates and starts the global scheduler
func Initialize() {
	globalScheduler = NewScheduler()
	globalScheduler.Start()
}

// Shutdown stops the global scheduler
func Shutdown() {
	if globalScheduler != nil {
		globalScheduler.Stop()
	}
}

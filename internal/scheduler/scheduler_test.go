package scheduler

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scholarmatch-dev/scholarmatch/db"
	"github.com/scholarmatch-dev/scholarmatch/internal/models"
)

func TestNoticeForDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     models.NotificationType
		due      bool
	}{
		{"passed", now.Add(-time.Hour), "", false},
		{"later today", now.Add(6 * time.Hour), models.NotificationDeadlineToday, true},
		{"in two days", now.AddDate(0, 0, 2), models.NotificationDeadlineSoon, true},
		{"in three days", now.AddDate(0, 0, 3), models.NotificationDeadlineSoon, true},
		{"in five days", now.AddDate(0, 0, 5), models.NotificationDeadlineApproaching, true},
		{"in seven days", now.AddDate(0, 0, 7), models.NotificationDeadlineApproaching, true},
		{"in two weeks", now.AddDate(0, 0, 14), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, due := NoticeForDeadline(tt.deadline, now)

			assert.Equal(t, tt.due, due)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReminderText(t *testing.T) {
	scholarship := models.Scholarship{
		Title:    "Orbis Fellowship",
		Deadline: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	title, message := reminderText(models.NotificationDeadlineToday, scholarship)
	assert.Equal(t, "Deadline today: Orbis Fellowship", title)
	assert.Contains(t, message, "close today")

	title, message = reminderText(models.NotificationDeadlineSoon, scholarship)
	assert.Equal(t, "Deadline soon: Orbis Fellowship", title)
	assert.Contains(t, message, "March 4, 2026")

	title, _ = reminderText(models.NotificationDeadlineApproaching, scholarship)
	assert.Equal(t, "Deadline approaching: Orbis Fellowship", title)
}

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	previous := db.DB
	db.DB = gdb
	t.Cleanup(func() { db.DB = previous })

	return mock
}

func TestRunSweep_SkipsAlreadyNotifiedUser(t *testing.T) {
	mock := useMockDB(t)

	deadline := time.Now().AddDate(0, 0, 2)

	mock.ExpectQuery(`SELECT \* FROM "scholarships" WHERE \(?is_active = \$\d+ AND deadline >= \$\d+\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "deadline", "is_active"}).
			AddRow(7, "Orbis Fellowship", deadline, true))

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(1, "a@b.com").
			AddRow(2, "c@d.com"))

	// The first user already holds the reminder, so only the second gets one.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE \(?user_id = \$\d+ AND scholarship_id = \$\d+ AND type = \$\d+\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE \(?user_id = \$\d+ AND scholarship_id = \$\d+ AND type = \$\d+\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
	mock.ExpectCommit()

	NewScheduler().runSweep()

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunSweep_NoDueDeadlinesCreatesNothing(t *testing.T) {
	mock := useMockDB(t)

	// Active but two weeks out: outside every reminder window.
	mock.ExpectQuery(`SELECT \* FROM "scholarships" WHERE \(?is_active = \$\d+ AND deadline >= \$\d+\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "deadline", "is_active"}).
			AddRow(7, "Orbis Fellowship", time.Now().AddDate(0, 0, 14), true))

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(1, "a@b.com"))

	NewScheduler().runSweep()

	require.NoError(t, mock.ExpectationsWereMet())
}

package models

type ProgramLevel string

const (
	ProgramBachelors ProgramLevel = "bachelors"
	ProgramMasters   ProgramLevel = "masters"
	ProgramPhD       ProgramLevel = "phd"
	ProgramDiploma   ProgramLevel = "diploma"

	// Preference-only levels, not valid as an academic program level
	ProgramPostgradDiploma    ProgramLevel = "postgraduate-diploma"
	ProgramExchange           ProgramLevel = "exchange-program"
	ProgramSummerSchool       ProgramLevel = "summer-school"
	ProgramResearchFellowship ProgramLevel = "research-fellowship"
)

// Valid reports whether p is an academic program level.
func (p ProgramLevel) Valid() bool {
	switch p {
	case ProgramBachelors, ProgramMasters, ProgramPhD, ProgramDiploma:
		return true
	}
	return false
}

// ValidPreference reports whether p is usable as a preferred program level,
// which allows the extended set on top of the academic levels.
func (p ProgramLevel) ValidPreference() bool {
	if p.Valid() {
		return true
	}
	switch p {
	case ProgramPostgradDiploma, ProgramExchange, ProgramSummerSchool, ProgramResearchFellowship:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationDeadlineApproaching NotificationType = "deadline_approaching"
	NotificationDeadlineSoon        NotificationType = "deadline_soon"
	NotificationDeadlineToday       NotificationType = "deadline_today"
	NotificationNewScholarship      NotificationType = "new_scholarship"
	NotificationApplicationStatus   NotificationType = "application_status"
	NotificationSystem              NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationDeadlineApproaching, NotificationDeadlineSoon, NotificationDeadlineToday,
		NotificationNewScholarship, NotificationApplicationStatus, NotificationSystem:
		return true
	}
	return false
}

package services

import (
	"errors"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateReportID = errors.New("duplicate report id")
)

// ReportStore persists immutable reports plus their delivery status.
type ReportStore interface {
	Create(report *models.Report) error
	FindByID(reportID string) (models.Report, error)
	List() ([]models.Report, error)
	UpdateStatus(reportID string, status string) error
}

// UserStore persists per-email assessment history records.
type UserStore interface {
	FindByEmail(email string) (models.UserRecord, error)
	// AppendReport upserts the record for email in one atomic write:
	// the last-report fields are overwritten and reportID is appended
	// to the history. Concurrent appends for the same email must each
	// land their history entry.
	AppendReport(email string, info models.BasicInfo, reportID string, at time.Time) error
	List() ([]models.UserRecord, error)
}

// ReminderStore persists scheduled follow-up reminders.
type ReminderStore interface {
	Create(reminder *models.Reminder) error
	// DueBetween returns pending reminders whose remind_at falls in the
	// half-open interval [dayStart, dayEnd).
	DueBetween(dayStart time.Time, dayEnd time.Time) ([]models.Reminder, error)
	// MarkSent flips the sent flag exactly once; it reports whether this
	// call performed the transition.
	MarkSent(id uint, at time.Time) (bool, error)
	// CancelByEmail cancels every still-pending reminder for the email and
	// returns how many rows changed.
	CancelByEmail(email string, at time.Time) (int64, error)
	List() ([]models.Reminder, error)
}

// SettingsStore holds singleton JSON settings documents keyed by type.
type SettingsStore interface {
	Get(settingType string) (string, bool, error)
	Put(settingType string, value string) error
}

// Stores bundles one implementation set, durable or in-memory, selected at
// startup. Callers cannot tell which backing store serves them.
type Stores struct {
	Reports   ReportStore
	Users     UserStore
	Reminders ReminderStore
	Settings  SettingsStore
}

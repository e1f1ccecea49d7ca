package models

import "time"

// Reminder is a scheduled follow-up tied to one report. Sent and Cancelled
// are monotonic: once set they are never reset.
type Reminder struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserEmail   string     `gorm:"index;not null" json:"user_email"`
	ReportID    string     `gorm:"not null" json:"report_id"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	RemindAt    time.Time  `gorm:"index;not null" json:"reminder_date"`
	Sent        bool       `gorm:"not null;default:false" json:"sent"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Cancelled   bool       `gorm:"not null;default:false" json:"cancelled"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// Pending reports whether the reminder is still eligible for delivery.
func (reminder Reminder) Pending() bool {
	return !reminder.Sent && !reminder.Cancelled
}

package models

import "time"

const (
	SettingTypeReminder = "reminder"
	SettingTypeEmail    = "email"
)

// Setting is a singleton configuration document keyed by a type discriminator.
// Value holds the JSON-encoded payload for that type.
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"uniqueIndex;not null"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type ReminderSettings struct {
	Days    int  `json:"days"`
	Enabled bool `json:"enabled"`
}

func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{Days: 15, Enabled: true}
}

type EmailSettings struct {
	User     string `json:"gmail_user"`
	Password string `json:"gmail_password"`
}

// Complete reports whether the credentials are usable for outbound mail.
func (settings EmailSettings) Complete() bool {
	return settings.User != "" && settings.Password != ""
}

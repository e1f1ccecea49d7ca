package db

import (
	"github.com/wellspring-labs/wellspring/internal/services"
	"gorm.io/gorm"
)

// NewStores wires the SQLite-backed repositories into one store bundle.
func NewStores(database *gorm.DB) services.Stores {
	return services.Stores{
		Reports:   NewReportRepository(database),
		Users:     NewUserRepository(database),
		Reminders: NewReminderRepository(database),
		Settings:  NewSettingsRepository(database),
	}
}

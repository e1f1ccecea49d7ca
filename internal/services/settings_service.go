package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/wellspring-labs/wellspring/internal/models"
)

var errNegativeReminderDays = errors.New("reminder days must not be negative")

// SettingsService reads and writes the singleton settings documents,
// applying defaults whenever a document is absent or unreadable.
type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

func (service *SettingsService) ReminderSettings() models.ReminderSettings {
	defaults := models.DefaultReminderSettings()

	raw, ok, err := service.store.Get(models.SettingTypeReminder)
	if err != nil {
		log.Printf("settings: load reminder settings failed: %v", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	var settings models.ReminderSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("settings: malformed reminder settings document: %v", err)
		return defaults
	}
	if settings.Days < 0 {
		settings.Days = defaults.Days
	}
	return settings
}

func (service *SettingsService) SaveReminderSettings(settings models.ReminderSettings) error {
	if settings.Days < 0 {
		return errNegativeReminderDays
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode reminder settings: %w", err)
	}
	return service.store.Put(models.SettingTypeReminder, string(raw))
}

func (service *SettingsService) EmailSettings() models.EmailSettings {
	raw, ok, err := service.store.Get(models.SettingTypeEmail)
	if err != nil {
		log.Printf("settings: load email settings failed: %v", err)
		return models.EmailSettings{}
	}
	if !ok {
		return models.EmailSettings{}
	}

	var settings models.EmailSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("settings: malformed email settings document: %v", err)
		return models.EmailSettings{}
	}
	return settings
}

func (service *SettingsService) SaveEmailSettings(settings models.EmailSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode email settings: %w", err)
	}
	return service.store.Put(models.SettingTypeEmail, string(raw))
}

package db

import (
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) DueBetween(dayStart time.Time, dayEnd time.Time) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("remind_at >= ? AND remind_at < ? AND sent = ? AND cancelled = ?", dayStart, dayEnd, false, false).
		Order("remind_at ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkSent is guarded on the sent flag so concurrent sweeps cannot both
// claim the same reminder.
func (repo *ReminderRepository) MarkSent(id uint, at time.Time) (bool, error) {
	result := repo.database.Model(&models.Reminder{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]any{"sent": true, "sent_at": at})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ReminderRepository) CancelByEmail(email string, at time.Time) (int64, error) {
	result := repo.database.Model(&models.Reminder{}).
		Where("user_email = ? AND sent = ? AND cancelled = ?", email, false, false).
		Updates(map[string]any{"cancelled": true, "cancelled_at": at})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *ReminderRepository) List() ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.Order("remind_at ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

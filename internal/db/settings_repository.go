package db

import (
	"errors"

	"github.com/wellspring-labs/wellspring/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Get(settingType string) (string, bool, error) {
	var setting models.Setting
	if err := repo.database.Where("type = ?", settingType).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

// Put writes through a single upsert so two first writes for the same type
// cannot race into a unique-constraint error.
func (repo *SettingsRepository) Put(settingType string, value string) error {
	setting := models.Setting{Type: settingType, Value: value}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

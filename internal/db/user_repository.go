package db

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/services"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByEmail(email string) (models.UserRecord, error) {
	var record models.UserRecord
	if err := repo.database.Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserRecord{}, services.ErrUserNotFound
		}
		return models.UserRecord{}, err
	}
	return record, nil
}

// AppendReport grows the history in a single UPDATE so concurrent appends
// for one email cannot lose entries to a read-modify-write race.
func (repo *UserRepository) AppendReport(email string, info models.BasicInfo, reportID string, at time.Time) error {
	encodedInfo, err := json.Marshal(info)
	if err != nil {
		return err
	}

	appended, err := repo.appendToExisting(email, string(encodedInfo), reportID, at)
	if err != nil {
		return err
	}
	if appended {
		return nil
	}

	err = repo.database.Create(&models.UserRecord{
		Email:            email,
		BasicInfo:        info,
		LastReportID:     reportID,
		LastAssessmentAt: at,
		ReportIDs:        []string{reportID},
	}).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}

	// Lost the first-insert race; the row exists now, append to it.
	appended, err = repo.appendToExisting(email, string(encodedInfo), reportID, at)
	if err != nil {
		return err
	}
	if !appended {
		return services.ErrUserNotFound
	}
	return nil
}

func (repo *UserRepository) appendToExisting(email string, encodedInfo string, reportID string, at time.Time) (bool, error) {
	result := repo.database.Exec(
		`UPDATE user_records
		 SET basic_info = ?,
		     last_report_id = ?,
		     last_assessment_at = ?,
		     report_ids = json_insert(report_ids, '$[#]', ?),
		     updated_at = ?
		 WHERE email = ?`,
		encodedInfo, reportID, at, reportID, at, email,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *UserRepository) List() ([]models.UserRecord, error) {
	records := make([]models.UserRecord, 0)
	if err := repo.database.Order("last_assessment_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

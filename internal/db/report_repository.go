package db

import (
	"errors"
	"strings"

	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/services"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) Create(report *models.Report) error {
	if err := repo.database.Create(report).Error; err != nil {
		if isUniqueViolation(err) {
			return services.ErrDuplicateReportID
		}
		return err
	}
	return nil
}

func (repo *ReportRepository) FindByID(reportID string) (models.Report, error) {
	var report models.Report
	if err := repo.database.Where("report_id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, services.ErrReportNotFound
		}
		return models.Report{}, err
	}
	return report, nil
}

func (repo *ReportRepository) List() ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := repo.database.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) UpdateStatus(reportID string, status string) error {
	result := repo.database.Model(&models.Report{}).
		Where("report_id = ?", reportID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrReportNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

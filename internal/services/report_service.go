package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/security"
)

const (
	reportIDTimestampLayout = "20060102150405"
	reportIDSuffixLength    = 4

	// Timestamp+random makes collisions improbable, not impossible; a
	// bounded regeneration loop closes the window.
	maxReportIDAttempts = 3
)

var reportStatusRank = map[string]int{
	models.ReportStatusNotRendered: 0,
	models.ReportStatusRendered:    1,
	models.ReportStatusDelivered:   2,
}

type ReportService struct {
	reports ReportStore
	users   UserStore
	now     func() time.Time
}

func NewReportService(reports ReportStore, users UserStore) *ReportService {
	return &ReportService{
		reports: reports,
		users:   users,
		now:     time.Now,
	}
}

// NewReportID builds an id of the form RPT-<14-digit UTC timestamp>-<4 digits>.
func NewReportID(now time.Time) (string, error) {
	suffix, err := security.RandomDigits(reportIDSuffixLength)
	if err != nil {
		return "", fmt.Errorf("report id suffix: %w", err)
	}
	return fmt.Sprintf("RPT-%s-%s", now.UTC().Format(reportIDTimestampLayout), suffix), nil
}

// CreateReport persists the profile/recommendation tuple under a fresh report
// id and, when an email is supplied, upserts that user's assessment record.
// A failed user upsert is logged, not surfaced: the report itself is durable.
func (service *ReportService) CreateReport(profile models.HealthProfile, recommendation models.Recommendation, email string) (models.Report, error) {
	var report models.Report
	for attempt := 0; ; attempt++ {
		reportID, err := NewReportID(service.now())
		if err != nil {
			return models.Report{}, err
		}

		report = models.Report{
			ReportID:       reportID,
			CreatedAt:      service.now(),
			Email:          email,
			Profile:        profile,
			Recommendation: recommendation,
			Status:         models.ReportStatusNotRendered,
		}

		err = service.reports.Create(&report)
		if err == nil {
			break
		}
		if errors.Is(err, ErrDuplicateReportID) && attempt+1 < maxReportIDAttempts {
			continue
		}
		return models.Report{}, fmt.Errorf("store report: %w", err)
	}

	if email != "" {
		if err := service.users.AppendReport(email, profile.BasicInfo, report.ReportID, report.CreatedAt); err != nil {
			log.Printf("reports: user record upsert failed for %s: %v", email, err)
		}
	}

	return report, nil
}

func (service *ReportService) GetReport(reportID string) (models.Report, error) {
	return service.reports.FindByID(reportID)
}

func (service *ReportService) ListReports() ([]models.Report, error) {
	return service.reports.List()
}

func (service *ReportService) GetUser(email string) (models.UserRecord, error) {
	return service.users.FindByEmail(email)
}

func (service *ReportService) ListUsers() ([]models.UserRecord, error) {
	return service.users.List()
}

// MarkRendered advances the report status. Status only moves forward:
// a delivered report never drops back to rendered.
func (service *ReportService) MarkRendered(reportID string) error {
	return service.advanceStatus(reportID, models.ReportStatusRendered)
}

func (service *ReportService) MarkDelivered(reportID string) error {
	return service.advanceStatus(reportID, models.ReportStatusDelivered)
}

func (service *ReportService) advanceStatus(reportID string, status string) error {
	report, err := service.reports.FindByID(reportID)
	if err != nil {
		return err
	}
	if reportStatusRank[status] <= reportStatusRank[report.Status] {
		return nil
	}
	return service.reports.UpdateStatus(reportID, status)
}

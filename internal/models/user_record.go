package models

import "time"

// UserRecord tracks the assessment history for one email address.
// Last-report fields are overwritten on every submission; ReportIDs only grows.
type UserRecord struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	BasicInfo        BasicInfo `gorm:"serializer:json" json:"basic_info"`
	LastReportID     string    `json:"last_report_id"`
	LastAssessmentAt time.Time `json:"last_assessment_date"`
	ReportIDs        []string  `gorm:"serializer:json" json:"reports"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

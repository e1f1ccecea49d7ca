package models

import "time"

const (
	ReportStatusNotRendered = "not_rendered"
	ReportStatusRendered    = "rendered"
	ReportStatusDelivered   = "delivered"
)

type BasicInfo struct {
	Age    string `json:"age"`
	Gender string `json:"gender"`
	Height string `json:"height"`
	Weight string `json:"weight"`
}

type HealthProfile struct {
	BasicInfo          BasicInfo         `json:"basicInfo"`
	Symptoms           []string          `json:"symptoms"`
	BodySystemIssues   []string          `json:"bodySystemIssues"`
	SpecificConditions []string          `json:"specificConditions"`
	Answers            map[string]string `json:"aiAnswers"`
}

type Recommendation struct {
	Supplements []string          `json:"supplements"`
	Dosage      map[string]string `json:"dosage"`
	Usage       map[string]string `json:"usage"`
	Explanation string            `json:"explanation"`
}

// Report is immutable after creation except for its rendering/delivery status.
type Report struct {
	ID             uint           `gorm:"primaryKey" json:"-"`
	ReportID       string         `gorm:"uniqueIndex;not null" json:"report_id"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	Email          string         `json:"email,omitempty"`
	Profile        HealthProfile  `gorm:"serializer:json" json:"health_data"`
	Recommendation Recommendation `gorm:"serializer:json" json:"recommendations"`
	Status         string         `gorm:"not null;default:not_rendered" json:"status"`
}

package api

import (
	"regexp"
	"strings"

	"github.com/wellspring-labs/wellspring/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validateSubmission checks the minimal profile fields: age and gender are
// required, everything else is optional. Returns an empty string when valid.
func validateSubmission(profile models.HealthProfile, email string) string {
	if strings.TrimSpace(profile.BasicInfo.Age) == "" {
		return "age is required"
	}
	if strings.TrimSpace(profile.BasicInfo.Gender) == "" {
		return "gender is required"
	}
	if email != "" && !validEmail(email) {
		return "invalid email address"
	}
	return ""
}

package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/services"
)

type submissionRequest struct {
	HealthData models.HealthProfile `json:"healthData"`
	Email      string               `json:"email"`
}

// Submit runs the full assessment pipeline: recommend, persist the report,
// and schedule the follow-up reminder when an email was supplied.
func (handler *Handler) Submit(c *fiber.Ctx) error {
	var request submissionRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(request.Email)
	if message := validateSubmission(request.HealthData, email); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	recommendation := services.Recommend(request.HealthData, handler.catalog)

	report, err := handler.reports.CreateReport(request.HealthData, recommendation, email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store report")
	}

	if _, err := handler.reminders.Schedule(email, report.ReportID); err != nil {
		log.Printf("api: schedule reminder failed for %s: %v", report.ReportID, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"report_id":       report.ReportID,
		"recommendations": recommendation,
	})
}

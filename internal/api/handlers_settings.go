package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/models"
)

func (handler *Handler) GetReminderSettings(c *fiber.Ctx) error {
	return c.JSON(handler.settings.ReminderSettings())
}

func (handler *Handler) UpdateReminderSettings(c *fiber.Ctx) error {
	var settings models.ReminderSettings
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.settings.SaveReminderSettings(settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder settings")
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetEmailSettings never echoes the stored password, only whether one is set.
func (handler *Handler) GetEmailSettings(c *fiber.Ctx) error {
	settings := handler.settings.EmailSettings()
	return c.JSON(fiber.Map{
		"gmail_user":   settings.User,
		"has_password": settings.Password != "",
	})
}

func (handler *Handler) UpdateEmailSettings(c *fiber.Ctx) error {
	var settings models.EmailSettings
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings.User = strings.TrimSpace(settings.User)
	if settings.User != "" && !validEmail(settings.User) {
		return apiError(c, fiber.StatusBadRequest, "invalid sender address")
	}

	if err := handler.settings.SaveEmailSettings(settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save email settings")
	}
	return c.JSON(fiber.Map{"success": true})
}

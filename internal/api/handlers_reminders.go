package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/services"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	reminders, err := handler.reminders.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reminders")
	}
	return c.JSON(reminders)
}

// SweepReminders triggers one delivery pass outside the background schedule.
func (handler *Handler) SweepReminders(c *fiber.Ctx) error {
	sent, err := handler.reminders.RunSweep(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "sweep failed")
	}
	return c.JSON(fiber.Map{"success": true, "message": fmt.Sprintf("已發送%d個提醒", sent), "sent": sent})
}

func (handler *Handler) OptOutReminders(c *fiber.Ctx) error {
	email, cancelled, err := handler.reminders.OptOut(c.Query("token"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOptOutTokenMissing):
			return apiError(c, fiber.StatusBadRequest, "missing token")
		case errors.Is(err, services.ErrOptOutTokenExpired):
			return apiError(c, fiber.StatusUnauthorized, "expired token")
		case errors.Is(err, services.ErrOptOutTokenInvalid),
			errors.Is(err, services.ErrOptOutTokenInvalidPurpose),
			errors.Is(err, services.ErrOptOutTokenInvalidEmail):
			return apiError(c, fiber.StatusUnauthorized, "invalid token")
		default:
			return apiError(c, fiber.StatusInternalServerError, "opt-out failed")
		}
	}

	return c.JSON(fiber.Map{"success": true, "email": email, "cancelled": cancelled})
}

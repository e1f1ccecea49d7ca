package api

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/services"
)

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	reports, err := handler.reports.ListReports()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reports")
	}
	return c.JSON(reports)
}

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	report, err := handler.reports.GetReport(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}
	return c.JSON(report)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.reports.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	email, err := decodeEmailParam(c.Params("email"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}

	user, lookupErr := handler.reports.GetUser(email)
	if lookupErr != nil {
		if errors.Is(lookupErr, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	return c.JSON(user)
}

func decodeEmailParam(raw string) (string, error) {
	email, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(email), nil
}

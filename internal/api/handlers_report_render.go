package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/services"
)

const reportEmailSubject = "您的健康評估與保健品推薦報告"

// ViewReportHTML serves the rendered report document and records that the
// report has been rendered at least once.
func (handler *Handler) ViewReportHTML(c *fiber.Ctx) error {
	report, err := handler.reports.GetReport(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}

	html, err := handler.renderer.RenderHTML(report)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	if err := handler.reports.MarkRendered(report.ReportID); err != nil {
		log.Printf("api: mark rendered failed for %s: %v", report.ReportID, err)
	}

	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (handler *Handler) DownloadReportPDF(c *fiber.Ctx) error {
	report, err := handler.reports.GetReport(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), pdfConversionTimeout)
	defer cancel()

	pdfPath, err := handler.renderer.RenderPDF(ctx, report)
	if err != nil {
		if errors.Is(err, services.ErrRenderFailed) {
			return apiError(c, fiber.StatusBadGateway, "pdf conversion failed")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	if err := handler.reports.MarkRendered(report.ReportID); err != nil {
		log.Printf("api: mark rendered failed for %s: %v", report.ReportID, err)
	}

	return c.Download(pdfPath, reportAttachmentName(report.ReportID))
}

type sendReportRequest struct {
	ReportID string `json:"report_id"`
	Email    string `json:"email"`
}

// SendReport delivers the report by email with the PDF attached. When the
// PDF conversion fails the report still goes out as HTML only.
func (handler *Handler) SendReport(c *fiber.Ctx) error {
	var request sendReportRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.TrimSpace(request.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "email is required")
	}
	if !validEmail(email) {
		return apiError(c, fiber.StatusBadRequest, "invalid email address")
	}
	if strings.TrimSpace(request.ReportID) == "" {
		return apiError(c, fiber.StatusBadRequest, "report_id is required")
	}

	report, err := handler.reports.GetReport(request.ReportID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch report")
	}

	html, err := handler.renderer.RenderHTML(report)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), pdfConversionTimeout)
	defer cancel()

	var attachment *services.Attachment
	pdfPath, err := handler.renderer.RenderPDF(ctx, report)
	if err != nil {
		log.Printf("api: sending report %s without pdf: %v", report.ReportID, err)
	} else {
		attachment = &services.Attachment{
			Path:     pdfPath,
			Filename: reportAttachmentName(report.ReportID),
		}
	}

	if !handler.mailer.Deliver(email, reportEmailSubject, html, attachment) {
		return c.JSON(fiber.Map{"success": false, "message": "發送報告失敗，請檢查郵件設置"})
	}

	if err := handler.reports.MarkDelivered(report.ReportID); err != nil {
		log.Printf("api: mark delivered failed for %s: %v", report.ReportID, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": fmt.Sprintf("報告已成功發送到 %s", email)})
}

func reportAttachmentName(reportID string) string {
	return fmt.Sprintf("健康評估報告_%s.pdf", reportID)
}

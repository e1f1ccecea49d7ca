package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/submit", handler.Submit)

	api.Get("/reports", handler.ListReports)
	api.Get("/reports/:id", handler.GetReport)
	api.Get("/users", handler.ListUsers)
	api.Get("/users/:email", handler.GetUser)

	report := api.Group("/report")
	report.Post("/send", handler.SendReport)
	report.Get("/:id/pdf", handler.DownloadReportPDF)
	report.Get("/:id", handler.ViewReportHTML)

	reminders := api.Group("/reminders")
	reminders.Get("/opt-out", handler.OptOutReminders)
	reminders.Post("/sweep", handler.SweepReminders)
	reminders.Get("", handler.ListReminders)

	settings := api.Group("/settings")
	settings.Get("/reminders", handler.GetReminderSettings)
	settings.Post("/reminders", handler.UpdateReminderSettings)
	settings.Get("/email", handler.GetEmailSettings)
	settings.Post("/email", handler.UpdateEmailSettings)
}

package api

import (
	"time"

	"github.com/wellspring-labs/wellspring/internal/catalog"
	"github.com/wellspring-labs/wellspring/internal/services"
)

const pdfConversionTimeout = 60 * time.Second

type Handler struct {
	catalog   *catalog.Catalog
	reports   *services.ReportService
	renderer  *services.RenderService
	reminders *services.ReminderService
	settings  *services.SettingsService
	mailer    services.Deliverer
	location  *time.Location
}

func NewHandler(
	cat *catalog.Catalog,
	reports *services.ReportService,
	renderer *services.RenderService,
	reminders *services.ReminderService,
	settings *services.SettingsService,
	mailer services.Deliverer,
	location *time.Location,
) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		catalog:   cat,
		reports:   reports,
		renderer:  renderer,
		reminders: reminders,
		settings:  settings,
		mailer:    mailer,
		location:  location,
	}
}

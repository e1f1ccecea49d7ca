package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wellspring-labs/wellspring/internal/api"
	"github.com/wellspring-labs/wellspring/internal/catalog"
	"github.com/wellspring-labs/wellspring/internal/db"
	"github.com/wellspring-labs/wellspring/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "wellspring.db"))
	reportsDir := getEnv("REPORTS_DIR", "reports")
	catalogPath := getEnv("CATALOG_PATH", "")
	port := getEnv("PORT", "8080")
	baseURL := getEnv("BASE_URL", "http://localhost:"+port)
	assessmentURL := getEnv("ASSESSMENT_URL", baseURL)
	smtpHost := getEnv("SMTP_HOST", "smtp.gmail.com")
	smtpPort := mustParsePort(getEnv("SMTP_PORT", "587"))

	stores := openStores(dbPath)

	supplementCatalog := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			log.Fatalf("catalog init failed: %v", err)
		}
		supplementCatalog = loaded
	}

	renderer, err := services.NewRenderService(reportsDir)
	if err != nil {
		log.Fatalf("renderer init failed: %v", err)
	}

	settings := services.NewSettingsService(stores.Settings)
	reports := services.NewReportService(stores.Reports, stores.Users)
	mailer := services.NewMailer(settings, smtpHost, smtpPort)
	reminders := services.NewReminderService(
		stores.Reminders,
		stores.Reports,
		settings,
		mailer,
		[]byte(secretKey),
		baseURL,
		assessmentURL,
		location,
	)

	handler := api.NewHandler(supplementCatalog, reports, renderer, reminders, settings, mailer, location)

	app := fiber.New(fiber.Config{
		AppName:               "Wellspring",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	reminders.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Wellspring listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// openStores prefers SQLite and degrades to the in-memory bundle when the
// database cannot be opened, so the API stays usable without disk access.
func openStores(dbPath string) services.Stores {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Printf("storage: sqlite unavailable at %s, falling back to in-memory stores: %v", dbPath, err)
		return db.NewMemoryStores()
	}
	return db.NewStores(database)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func mustParsePort(raw string) int {
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		log.Printf("invalid SMTP_PORT %q, falling back to 587", raw)
		return 587
	}
	return port
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

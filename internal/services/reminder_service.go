package services

import (
	"context"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSweepInterval    = 6 * time.Hour
	reminderDeliveryWorkers = 4
	reminderOptOutTokenTTL  = 90 * 24 * time.Hour
)

// ReminderService schedules follow-up reminders after each assessment and
// sweeps the day's due reminders out through the mailer.
type ReminderService struct {
	reminders     ReminderStore
	reports       ReportStore
	settings      *SettingsService
	mailer        Deliverer
	secretKey     []byte
	baseURL       string
	assessmentURL string
	location      *time.Location
	sweepInterval time.Duration
	now           func() time.Time
}

func NewReminderService(reminders ReminderStore, reports ReportStore, settings *SettingsService, mailer Deliverer, secretKey []byte, baseURL string, assessmentURL string, location *time.Location) *ReminderService {
	if location == nil {
		location = time.Local
	}

	sweepInterval := defaultSweepInterval
	if raw := os.Getenv("SWEEP_INTERVAL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			sweepInterval = time.Duration(parsed) * time.Hour
		}
	}

	return &ReminderService{
		reminders:     reminders,
		reports:       reports,
		settings:      settings,
		mailer:        mailer,
		secretKey:     secretKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		assessmentURL: assessmentURL,
		location:      location,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Schedule records one follow-up reminder for the given report. It is a
// silent no-op when reminders are disabled or the submitter left no email.
func (service *ReminderService) Schedule(email string, reportID string) (*models.Reminder, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}

	settings := service.settings.ReminderSettings()
	if !settings.Enabled {
		return nil, nil
	}

	now := service.now()
	reminder := &models.Reminder{
		UserEmail: email,
		ReportID:  reportID,
		CreatedAt: now,
		RemindAt:  now.Add(time.Duration(settings.Days) * 24 * time.Hour),
	}
	if err := service.reminders.Create(reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// CancelFor cancels every still-pending reminder for the email.
func (service *ReminderService) CancelFor(email string) (int64, error) {
	return service.reminders.CancelByEmail(strings.TrimSpace(email), service.now())
}

// OptOut verifies a signed opt-out token and cancels the pending reminders
// of the email it names. Returns the email and the number cancelled.
func (service *ReminderService) OptOut(rawToken string) (string, int64, error) {
	claims, err := ParseReminderOptOutToken(service.secretKey, rawToken, service.now())
	if err != nil {
		return "", 0, err
	}
	cancelled, err := service.CancelFor(claims.Email)
	if err != nil {
		return "", 0, err
	}
	return claims.Email, cancelled, nil
}

func (service *ReminderService) List() ([]models.Reminder, error) {
	return service.reminders.List()
}

// RunSweep sends every reminder due today and marks the delivered ones sent.
// Returns how many reminders went out.
func (service *ReminderService) RunSweep(ctx context.Context) (int, error) {
	settings := service.settings.ReminderSettings()
	if !settings.Enabled {
		return 0, nil
	}

	now := service.now()
	dayStart, dayEnd := dayRange(now, service.location)
	due, err := service.reminders.DueBetween(dayStart, dayEnd)
	if err != nil {
		return 0, err
	}

	var sent atomic.Int64
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(reminderDeliveryWorkers)

	for _, reminder := range due {
		reminder := reminder
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if !service.deliver(reminder, now) {
				return nil
			}

			marked, err := service.reminders.MarkSent(reminder.ID, service.now())
			if err != nil {
				log.Printf("reminder: mark sent failed for reminder %d: %v", reminder.ID, err)
				return nil
			}
			if marked {
				sent.Add(1)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return int(sent.Load()), err
	}
	return int(sent.Load()), nil
}

func (service *ReminderService) deliver(reminder models.Reminder, now time.Time) bool {
	var report *models.Report
	if reminder.ReportID != "" {
		found, err := service.reports.FindByID(reminder.ReportID)
		if err != nil {
			log.Printf("reminder: report %s lookup failed for reminder %d: %v", reminder.ReportID, reminder.ID, err)
		} else {
			report = &found
		}
	}

	body := buildReminderEmail(report, service.assessmentURL, service.optOutURL(reminder.UserEmail, now), now)
	return service.mailer.Deliver(reminder.UserEmail, ReminderEmailSubject, body, nil)
}

func (service *ReminderService) optOutURL(email string, now time.Time) string {
	if service.baseURL == "" || len(service.secretKey) == 0 {
		return ""
	}
	token, err := BuildReminderOptOutToken(service.secretKey, email, reminderOptOutTokenTTL, now)
	if err != nil {
		log.Printf("reminder: build opt-out token failed for %s: %v", email, err)
		return ""
	}
	return service.baseURL + "/api/reminders/opt-out?token=" + url.QueryEscape(token)
}

// Start runs the sweep once and then on a fixed interval until the context
// is cancelled.
func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.sweepInterval)
	go func() {
		defer ticker.Stop()

		service.sweepOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.sweepOnce(ctx)
			}
		}
	}()
}

func (service *ReminderService) sweepOnce(ctx context.Context) {
	sent, err := service.RunSweep(ctx)
	if err != nil {
		log.Printf("reminder: sweep failed: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("reminder: sweep delivered %d reminder(s)", sent)
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-labs/wellspring/internal/catalog"
	"github.com/wellspring-labs/wellspring/internal/db"
	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/services"
)

var testSecretKey = []byte("api-test-secret")

type recordedDelivery struct {
	To         string
	Subject    string
	Body       string
	Attachment *services.Attachment
}

type recordingMailer struct {
	mu         sync.Mutex
	accept     bool
	deliveries []recordedDelivery
}

func (mailer *recordingMailer) Deliver(to string, subject string, htmlBody string, attachment *services.Attachment) bool {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()

	mailer.deliveries = append(mailer.deliveries, recordedDelivery{
		To: to, Subject: subject, Body: htmlBody, Attachment: attachment,
	})
	return mailer.accept
}

func (mailer *recordingMailer) sent() []recordedDelivery {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()

	result := make([]recordedDelivery, len(mailer.deliveries))
	copy(result, mailer.deliveries)
	return result
}

type testEnv struct {
	app      *fiber.App
	stores   services.Stores
	mailer   *recordingMailer
	renderer *services.RenderService
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	stores := db.NewMemoryStores()
	mailer := &recordingMailer{accept: true}

	renderer, err := services.NewRenderService(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderService() unexpected error: %v", err)
	}
	renderer.UseConverter(func(_ context.Context, _ string, pdfPath string) error {
		return os.WriteFile(pdfPath, []byte("%PDF-1.4 stub"), 0o644)
	})

	settings := services.NewSettingsService(stores.Settings)
	reports := services.NewReportService(stores.Reports, stores.Users)
	reminders := services.NewReminderService(
		stores.Reminders,
		stores.Reports,
		settings,
		mailer,
		testSecretKey,
		"https://wellspring.example.com",
		"https://wellspring.example.com/assessment",
		time.UTC,
	)

	app := fiber.New()
	RegisterRoutes(app, NewHandler(catalog.Default(), reports, renderer, reminders, settings, mailer, time.UTC))

	return &testEnv{app: app, stores: stores, mailer: mailer, renderer: renderer}
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func submitSampleAssessment(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	payload := map[string]any{
		"healthData": map[string]any{
			"basicInfo":          map[string]string{"age": "34", "gender": "female", "height": "165", "weight": "55"},
			"symptoms":           []string{"失眠"},
			"bodySystemIssues":   []string{},
			"specificConditions": []string{},
			"aiAnswers":          map[string]string{"平時睡眠品質如何？": "經常淺眠"},
		},
	}
	if email != "" {
		payload["email"] = email
	}

	response, err := env.app.Test(jsonRequest(t, http.MethodPost, "/api/submit", payload), -1)
	if err != nil {
		t.Fatalf("submit request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 from submit, got %d", response.StatusCode)
	}

	var body struct {
		Success         bool                  `json:"success"`
		ReportID        string                `json:"report_id"`
		Recommendations models.Recommendation `json:"recommendations"`
	}
	decodeJSONBody(t, response, &body)
	if !body.Success || body.ReportID == "" {
		t.Fatalf("unexpected submit response: %+v", body)
	}
	return body.ReportID
}

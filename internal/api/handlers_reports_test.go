package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/wellspring-labs/wellspring/internal/models"
)

func TestGetReportReturnsStoredReport(t *testing.T) {
	env := newTestApp(t)
	reportID := submitSampleAssessment(t, env, "user@example.com")

	response, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports/"+reportID, nil), -1)
	if err != nil {
		t.Fatalf("get report request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var report models.Report
	decodeJSONBody(t, response, &report)
	if report.ReportID != reportID {
		t.Fatalf("expected report id %q, got %q", reportID, report.ReportID)
	}
	if report.Profile.BasicInfo.Age != "34" {
		t.Fatalf("expected profile to round trip, got %+v", report.Profile.BasicInfo)
	}
}

func TestGetReportUnknownID(t *testing.T) {
	env := newTestApp(t)

	response, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports/RPT-20260307100000-0000", nil), -1)
	if err != nil {
		t.Fatalf("get report request failed: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestListReportsReturnsAll(t *testing.T) {
	env := newTestApp(t)
	submitSampleAssessment(t, env, "")
	submitSampleAssessment(t, env, "user@example.com")

	response, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/reports", nil), -1)
	if err != nil {
		t.Fatalf("list reports request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var reports []models.Report
	decodeJSONBody(t, response, &reports)
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
}

func TestGetUserByEmail(t *testing.T) {
	env := newTestApp(t)
	reportID := submitSampleAssessment(t, env, "user@example.com")

	target := "/api/users/" + url.PathEscape("user@example.com")
	response, err := env.app.Test(jsonRequest(t, http.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("get user request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var record models.UserRecord
	decodeJSONBody(t, response, &record)
	if record.Email != "user@example.com" {
		t.Fatalf("expected email user@example.com, got %q", record.Email)
	}
	if len(record.ReportIDs) != 1 || record.ReportIDs[0] != reportID {
		t.Fatalf("expected history [%s], got %v", reportID, record.ReportIDs)
	}
}

func TestGetUserUnknownEmail(t *testing.T) {
	env := newTestApp(t)

	target := "/api/users/" + url.PathEscape("missing@example.com")
	response, err := env.app.Test(jsonRequest(t, http.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("get user request failed: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestListUsers(t *testing.T) {
	env := newTestApp(t)
	submitSampleAssessment(t, env, "first@example.com")
	submitSampleAssessment(t, env, "second@example.com")

	response, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/users", nil), -1)
	if err != nil {
		t.Fatalf("list users request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var records []models.UserRecord
	decodeJSONBody(t, response, &records)
	if len(records) != 2 {
		t.Fatalf("expected 2 user records, got %d", len(records))
	}
}

func TestHealthz(t *testing.T) {
	env := newTestApp(t)

	response, err := env.app.Test(jsonRequest(t, http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var body map[string]string
	decodeJSONBody(t, response, &body)
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body)
	}
}

package services

import (
	"sync"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
)

type stubReportStore struct {
	mu             sync.Mutex
	reports        []models.Report
	failDuplicates int
	createErr      error
	nextID         uint
}

func (stub *stubReportStore) Create(report *models.Report) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.createErr != nil {
		return stub.createErr
	}
	if stub.failDuplicates > 0 {
		stub.failDuplicates--
		return ErrDuplicateReportID
	}
	for _, existing := range stub.reports {
		if existing.ReportID == report.ReportID {
			return ErrDuplicateReportID
		}
	}
	stub.nextID++
	report.ID = stub.nextID
	stub.reports = append(stub.reports, *report)
	return nil
}

func (stub *stubReportStore) FindByID(reportID string) (models.Report, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	for _, report := range stub.reports {
		if report.ReportID == reportID {
			return report, nil
		}
	}
	return models.Report{}, ErrReportNotFound
}

func (stub *stubReportStore) List() ([]models.Report, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	result := make([]models.Report, len(stub.reports))
	copy(result, stub.reports)
	return result, nil
}

func (stub *stubReportStore) UpdateStatus(reportID string, status string) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	for index := range stub.reports {
		if stub.reports[index].ReportID == reportID {
			stub.reports[index].Status = status
			return nil
		}
	}
	return ErrReportNotFound
}

type stubUserStore struct {
	mu      sync.Mutex
	records []models.UserRecord
	nextID  uint
}

func (stub *stubUserStore) FindByEmail(email string) (models.UserRecord, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	for _, record := range stub.records {
		if record.Email == email {
			return record, nil
		}
	}
	return models.UserRecord{}, ErrUserNotFound
}

func (stub *stubUserStore) AppendReport(email string, info models.BasicInfo, reportID string, at time.Time) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	for index := range stub.records {
		if stub.records[index].Email != email {
			continue
		}
		record := &stub.records[index]
		record.BasicInfo = info
		record.LastReportID = reportID
		record.LastAssessmentAt = at
		record.ReportIDs = append(record.ReportIDs, reportID)
		return nil
	}

	stub.nextID++
	stub.records = append(stub.records, models.UserRecord{
		ID:               stub.nextID,
		Email:            email,
		BasicInfo:        info,
		LastReportID:     reportID,
		LastAssessmentAt: at,
		ReportIDs:        []string{reportID},
	})
	return nil
}

func (stub *stubUserStore) List() ([]models.UserRecord, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	result := make([]models.UserRecord, len(stub.records))
	copy(result, stub.records)
	return result, nil
}

type stubReminderStore struct {
	mu        sync.Mutex
	reminders []models.Reminder
	nextID    uint
}

func (stub *stubReminderStore) Create(reminder *models.Reminder) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	stub.nextID++
	reminder.ID = stub.nextID
	stub.reminders = append(stub.reminders, *reminder)
	return nil
}

func (stub *stubReminderStore) DueBetween(dayStart time.Time, dayEnd time.Time) ([]models.Reminder, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	result := make([]models.Reminder, 0)
	for _, reminder := range stub.reminders {
		if !reminder.Pending() {
			continue
		}
		if reminder.RemindAt.Before(dayStart) || !reminder.RemindAt.Before(dayEnd) {
			continue
		}
		result = append(result, reminder)
	}
	return result, nil
}

func (stub *stubReminderStore) MarkSent(id uint, at time.Time) (bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	for index := range stub.reminders {
		if stub.reminders[index].ID != id {
			continue
		}
		if stub.reminders[index].Sent {
			return false, nil
		}
		sentAt := at
		stub.reminders[index].Sent = true
		stub.reminders[index].SentAt = &sentAt
		return true, nil
	}
	return false, nil
}

func (stub *stubReminderStore) CancelByEmail(email string, at time.Time) (int64, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	var cancelled int64
	for index := range stub.reminders {
		if stub.reminders[index].UserEmail != email || !stub.reminders[index].Pending() {
			continue
		}
		cancelledAt := at
		stub.reminders[index].Cancelled = true
		stub.reminders[index].CancelledAt = &cancelledAt
		cancelled++
	}
	return cancelled, nil
}

func (stub *stubReminderStore) List() ([]models.Reminder, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	result := make([]models.Reminder, len(stub.reminders))
	copy(result, stub.reminders)
	return result, nil
}

type stubSettingsStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	putErr error
}

func (stub *stubSettingsStore) Get(settingType string) (string, bool, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.getErr != nil {
		return "", false, stub.getErr
	}
	value, ok := stub.values[settingType]
	return value, ok, nil
}

func (stub *stubSettingsStore) Put(settingType string, value string) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	if stub.putErr != nil {
		return stub.putErr
	}
	if stub.values == nil {
		stub.values = make(map[string]string)
	}
	stub.values[settingType] = value
	return nil
}

type stubDelivery struct {
	To      string
	Subject string
	Body    string
}

type stubDeliverer struct {
	mu         sync.Mutex
	accept     bool
	deliveries []stubDelivery
}

func (stub *stubDeliverer) Deliver(to string, subject string, htmlBody string, attachment *Attachment) bool {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	stub.deliveries = append(stub.deliveries, stubDelivery{To: to, Subject: subject, Body: htmlBody})
	return stub.accept
}

func (stub *stubDeliverer) sent() []stubDelivery {
	stub.mu.Lock()
	defer stub.mu.Unlock()

	result := make([]stubDelivery, len(stub.deliveries))
	copy(result, stub.deliveries)
	return result
}

package db

import (
	"sort"
	"sync"
	"time"

	"github.com/wellspring-labs/wellspring/internal/models"
	"github.com/wellspring-labs/wellspring/internal/services"
)

// NewMemoryStores builds a volatile store bundle used when SQLite cannot be
// opened. Data does not survive a restart.
func NewMemoryStores() services.Stores {
	return services.Stores{
		Reports:   &memoryReportStore{},
		Users:     &memoryUserStore{},
		Reminders: &memoryReminderStore{},
		Settings:  &memorySettingsStore{values: make(map[string]string)},
	}
}

type memoryReportStore struct {
	mu      sync.RWMutex
	reports []models.Report
	nextID  uint
}

func (store *memoryReportStore) Create(report *models.Report) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.reports {
		if existing.ReportID == report.ReportID {
			return services.ErrDuplicateReportID
		}
	}
	store.nextID++
	report.ID = store.nextID
	store.reports = append(store.reports, cloneReport(*report))
	return nil
}

func (store *memoryReportStore) FindByID(reportID string) (models.Report, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, report := range store.reports {
		if report.ReportID == reportID {
			return cloneReport(report), nil
		}
	}
	return models.Report{}, services.ErrReportNotFound
}

func (store *memoryReportStore) List() ([]models.Report, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]models.Report, 0, len(store.reports))
	for _, report := range store.reports {
		result = append(result, cloneReport(report))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (store *memoryReportStore) UpdateStatus(reportID string, status string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for index := range store.reports {
		if store.reports[index].ReportID == reportID {
			store.reports[index].Status = status
			return nil
		}
	}
	return services.ErrReportNotFound
}

// Stored values never share slice or map backing with callers, matching
// the row isolation a real database gives.
func cloneReport(report models.Report) models.Report {
	clone := report
	clone.Profile.Symptoms = cloneStrings(report.Profile.Symptoms)
	clone.Profile.BodySystemIssues = cloneStrings(report.Profile.BodySystemIssues)
	clone.Profile.SpecificConditions = cloneStrings(report.Profile.SpecificConditions)
	clone.Profile.Answers = cloneStringMap(report.Profile.Answers)
	clone.Recommendation.Supplements = cloneStrings(report.Recommendation.Supplements)
	clone.Recommendation.Dosage = cloneStringMap(report.Recommendation.Dosage)
	clone.Recommendation.Usage = cloneStringMap(report.Recommendation.Usage)
	return clone
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

func cloneStringMap(values map[string]string) map[string]string {
	if values == nil {
		return nil
	}
	result := make(map[string]string, len(values))
	for key, value := range values {
		result[key] = value
	}
	return result
}

type memoryUserStore struct {
	mu      sync.RWMutex
	records []models.UserRecord
	nextID  uint
}

func (store *memoryUserStore) FindByEmail(email string) (models.UserRecord, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, record := range store.records {
		if record.Email == email {
			return cloneUserRecord(record), nil
		}
	}
	return models.UserRecord{}, services.ErrUserNotFound
}

func (store *memoryUserStore) AppendReport(email string, info models.BasicInfo, reportID string, at time.Time) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for index := range store.records {
		if store.records[index].Email != email {
			continue
		}
		record := &store.records[index]
		record.BasicInfo = info
		record.LastReportID = reportID
		record.LastAssessmentAt = at
		record.ReportIDs = append(record.ReportIDs, reportID)
		record.UpdatedAt = time.Now()
		return nil
	}

	store.nextID++
	now := time.Now()
	store.records = append(store.records, models.UserRecord{
		ID:               store.nextID,
		Email:            email,
		BasicInfo:        info,
		LastReportID:     reportID,
		LastAssessmentAt: at,
		ReportIDs:        []string{reportID},
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	return nil
}

func (store *memoryUserStore) List() ([]models.UserRecord, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]models.UserRecord, 0, len(store.records))
	for _, record := range store.records {
		result = append(result, cloneUserRecord(record))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastAssessmentAt.After(result[j].LastAssessmentAt)
	})
	return result, nil
}

func cloneUserRecord(record models.UserRecord) models.UserRecord {
	clone := record
	clone.ReportIDs = make([]string, len(record.ReportIDs))
	copy(clone.ReportIDs, record.ReportIDs)
	return clone
}

type memoryReminderStore struct {
	mu        sync.RWMutex
	reminders []models.Reminder
	nextID    uint
}

func (store *memoryReminderStore) Create(reminder *models.Reminder) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID++
	reminder.ID = store.nextID
	store.reminders = append(store.reminders, cloneReminder(*reminder))
	return nil
}

func cloneReminder(reminder models.Reminder) models.Reminder {
	clone := reminder
	if reminder.SentAt != nil {
		sentAt := *reminder.SentAt
		clone.SentAt = &sentAt
	}
	if reminder.CancelledAt != nil {
		cancelledAt := *reminder.CancelledAt
		clone.CancelledAt = &cancelledAt
	}
	return clone
}

func (store *memoryReminderStore) DueBetween(dayStart time.Time, dayEnd time.Time) ([]models.Reminder, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]models.Reminder, 0)
	for _, reminder := range store.reminders {
		if !reminder.Pending() {
			continue
		}
		if reminder.RemindAt.Before(dayStart) || !reminder.RemindAt.Before(dayEnd) {
			continue
		}
		result = append(result, cloneReminder(reminder))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RemindAt.Before(result[j].RemindAt)
	})
	return result, nil
}

func (store *memoryReminderStore) MarkSent(id uint, at time.Time) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for index := range store.reminders {
		if store.reminders[index].ID != id {
			continue
		}
		if store.reminders[index].Sent {
			return false, nil
		}
		sentAt := at
		store.reminders[index].Sent = true
		store.reminders[index].SentAt = &sentAt
		return true, nil
	}
	return false, nil
}

func (store *memoryReminderStore) CancelByEmail(email string, at time.Time) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var cancelled int64
	for index := range store.reminders {
		if store.reminders[index].UserEmail != email || !store.reminders[index].Pending() {
			continue
		}
		cancelledAt := at
		store.reminders[index].Cancelled = true
		store.reminders[index].CancelledAt = &cancelledAt
		cancelled++
	}
	return cancelled, nil
}

func (store *memoryReminderStore) List() ([]models.Reminder, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make([]models.Reminder, 0, len(store.reminders))
	for _, reminder := range store.reminders {
		result = append(result, cloneReminder(reminder))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RemindAt.Before(result[j].RemindAt)
	})
	return result, nil
}

type memorySettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (store *memorySettingsStore) Get(settingType string) (string, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	value, ok := store.values[settingType]
	return value, ok, nil
}

func (store *memorySettingsStore) Put(settingType string, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[settingType] = value
	return nil
}

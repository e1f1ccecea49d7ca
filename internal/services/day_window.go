package services

import "time"

func dateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// dayRange returns the half-open calendar-day interval containing value.
func dayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := dateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

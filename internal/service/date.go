package service

import (
	"strings"
	"time"
)

// dateLayout is the calendar-date wire format. Records carry no time
// component.
const dateLayout = "2006-01-02"

// parseDate converts a raw date string into a calendar date.
func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, validationError("Date cannot be empty")
	}

	date, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, validationError("Invalid date format")
	}

	return date, nil
}

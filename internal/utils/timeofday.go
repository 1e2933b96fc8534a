package utils

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/ValetTech/Valet/internal/errors"
)

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM" on a 24-hour clock into minutes after midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("time of day %q must be HH:MM: %w", s, apperrors.ErrValidation)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WindowHours returns the length of the daily window from start to end in hours.
// A window whose end is earlier than its start crosses midnight.
func WindowHours(startMinutes, endMinutes int) float64 {
	diff := endMinutes - startMinutes
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts short ("Mon") and full ("Monday") English names, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q: %w", s, apperrors.ErrValidation)
	}
	return d, nil
}

package scheduling

import (
	"time"

	"slotify/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseDate parses a strict "YYYY-MM-DD" calendar date. The result is pinned
// to UTC so day-of-week derivation never depends on the server's zone. The
// round trip check rejects inputs that time.Parse would normalize, such as
// non-zero-padded components.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil || t.Format(dateLayout) != s {
		return time.Time{}, NewValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DayOfWeekFor maps a "YYYY-MM-DD" date string to its weekday using fixed
// civil-calendar arithmetic (Sunday=0 .. Saturday=6).
func DayOfWeekFor(date string) (models.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return models.WeekdayOf(t.Weekday()), nil
}

// ValidateClock checks a strict zero-padded 24h "HH:mm" string.
func ValidateClock(s string) error {
	t, err := time.Parse(clockLayout, s)
	if err != nil || t.Format(clockLayout) != s {
		return NewValidationError("invalid time %q, expected HH:mm", s)
	}
	return nil
}

// ValidateSlotRange checks both clocks and that the slot starts before it
// ends. "HH:mm" strings compare chronologically as plain strings.
func ValidateSlotRange(start, end string) error {
	if err := ValidateClock(start); err != nil {
		return err
	}
	if err := ValidateClock(end); err != nil {
		return err
	}
	if start >= end {
		return NewValidationError("slot start %q must be before end %q", start, end)
	}
	return nil
}

// DatesBetween expands an inclusive date range into its "YYYY-MM-DD" days.
func DatesBetween(start, end time.Time) []string {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DaysPerYear is the fixed year length used for every annualization.
const DaysPerYear = 365.25

// ISODate is the layout used for calendar dates in files and flags.
const ISODate = "2006-01-02"

// ErrInvalidDate is returned for unparsable or zero calendar dates.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	ISODate,
	time.RFC3339,
	"02/01/2006", // dd/mm/yyyy as published by the treasury
}

// Normalize drops the time-of-day component, keeping the calendar date as seen
// in the value's own location and re-anchoring it at UTC midnight.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateDate rejects the zero time, which is what an unset date decodes to.
func ValidateDate(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: date is not set", ErrInvalidDate)
	}
	return nil
}

// ParseDate parses a calendar date in ISO (yyyy-mm-dd), RFC3339 or dd/mm/yyyy form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// secondsPerDay is exact between two UTC midnights.
const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the whole days from start to end, negative when end
// precedes start. Both dates are normalized to UTC midnight and compared as
// Unix seconds, so spans longer than a time.Duration can hold stay exact.
func DaysBetween(start, end time.Time) (int, error) {
	if err := ValidateDate(start); err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}
	if err := ValidateDate(end); err != nil {
		return 0, fmt.Errorf("end: %w", err)
	}
	diff := Normalize(end).Unix() - Normalize(start).Unix()
	return int(diff / secondsPerDay), nil
}

// YearsBetween returns DaysBetween / DaysPerYear.
func YearsBetween(start, end time.Time) (float64, error) {
	days, err := DaysBetween(start, end)
	if err != nil {
		return 0, err
	}
	return YearsFromDays(days), nil
}

// YearsFromDays converts a day count into a year fraction.
func YearsFromDays(days int) float64 {
	return float64(days) / DaysPerYear
}

// FormatDate renders a date as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
}

// ParseDate accepts the date shapes the upstream sources emit (day, month or
// full timestamp). Results are always UTC.
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if date, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// FormatDay renders a date as YYYY-MM-DD, or "" for the zero time.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// ShortMonthLabel renders "Jan 24".
func ShortMonthLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 06")
}

// MonthLabel renders "Jan 2024".
func MonthLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2006")
}

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.UTC().Month())-1)/3 + 1
}

// QuarterKey renders "2024-Q1".
func QuarterKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-Q%d", t.UTC().Year(), Quarter(t))
}

// QuarterLabel renders "Q1 2024".
func QuarterLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("Q%d %d", Quarter(t), t.UTC().Year())
}

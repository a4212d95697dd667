// Package timeutil holds the canonical date handling shared by the
// generator and its consumers.
package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// KickoffHour is the traditional afternoon kickoff hour, UTC.
const KickoffHour = 15

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Kickoff returns the 15:00 UTC kickoff on the given date.
func Kickoff(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), KickoffHour, 0, 0, 0, time.UTC)
}

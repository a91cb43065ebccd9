// Package period normalizes billing months. A billing month is stored as the
// first day of the calendar month at midnight UTC.
package period

import (
	"regexp"
	"time"

	"github.com/jinzhu/now"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])(-01)?$`)

func Month(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfMonth()
}

func Previous(t time.Time) time.Time {
	return Month(Month(t).AddDate(0, -1, 0))
}

// Range returns the half-open interval [start, end) covering the month of t.
func Range(t time.Time) (time.Time, time.Time) {
	start := Month(t)
	return start, start.AddDate(0, 1, 0)
}

// Parse accepts YYYY-MM-01 or YYYY-MM.
func Parse(s string) (time.Time, error) {
	if !monthPattern.MatchString(s) {
		return time.Time{}, domain.NewValidationError("billingMonth", "use YYYY-MM-01")
	}
	m, err := time.Parse("2006-01", s[:7])
	if err != nil {
		return time.Time{}, domain.NewValidationError("billingMonth", err.Error())
	}
	return m.UTC(), nil
}

func Format(t time.Time) string {
	return Month(t).Format("2006-01-02")
}

// Package calendar provides month arithmetic for the ledger: last-day
// calculations, MM/YYYY month keys and contiguous month windows.
package calendar

import (
	"fmt"
	"time"
)

// Default window of months shown around the current month.
const (
	DefaultMonthsBack    = 12
	DefaultMonthsForward = 12
)

// LastDayOfMonth returns the last calendar day (28-31) of the given month,
// accounting for leap years. Day zero of the following month is the last day
// of this one.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthKey formats the month containing t as "MM/YYYY", the canonical form
// used in exclusion sets.
func MonthKey(t time.Time) string {
	return MonthKeyOf(t.Year(), t.Month())
}

// MonthKeyOf formats a year/month pair as "MM/YYYY".
func MonthKeyOf(year int, month time.Month) string {
	return fmt.Sprintf("%02d/%d", int(month), year)
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight UTC on the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), LastDayOfMonth(t.Year(), t.Month()), 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthSequence generates a contiguous window of month-start dates around
// center: before months back, center's month, then after months forward. The
// result is chronological and always includes the center month.
func MonthSequence(center time.Time, before, after int) []time.Time {
	start := MonthStart(center).AddDate(0, -before, 0)
	months := make([]time.Time, 0, before+after+1)
	for i := 0; i <= before+after; i++ {
		months = append(months, start.AddDate(0, i, 0))
	}
	return months
}

// ClampDay returns day limited to the length of the given month, keeping a
// template's due day meaningful in short months.
func ClampDay(year int, month time.Month, day int) int {
	if last := LastDayOfMonth(year, month); day > last {
		return last
	}
	return day
}

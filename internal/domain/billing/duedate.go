// Package billing computes credit installment due dates from a purchase date
// and a card's billing day.
package billing

import (
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/calendar"
)

// FirstInstallmentDueDate computes the due date of the first installment of a
// purchase. A purchase made on or after the card's due day belongs to the
// next billing cycle, so the first installment rolls into the following month
// (December wraps into January of the next year). The due day is clamped to
// the length of the target month.
func FirstInstallmentDueDate(purchaseDate time.Time, cardDueDay int) time.Time {
	year, month := purchaseDate.Year(), purchaseDate.Month()
	if purchaseDate.Day() >= cardDueDay {
		if month == time.December {
			year++
			month = time.January
		} else {
			month++
		}
	}
	day := calendar.ClampDay(year, month, cardDueDay)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextInstallmentDueDate advances exactly one calendar month from the
// previous installment's month, reapplying the day clamp. Repeated
// application never skips or repeats a month.
func NextInstallmentDueDate(previousDueDate time.Time, cardDueDay int) time.Time {
	year, month := previousDueDate.Year(), previousDueDate.Month()
	if month == time.December {
		year++
		month = time.January
	} else {
		month++
	}
	day := calendar.ClampDay(year, month, cardDueDay)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// InstallmentDueDates returns the full schedule for a purchase of count
// installments, strictly increasing by one calendar month per step.
func InstallmentDueDates(purchaseDate time.Time, cardDueDay, count int) []time.Time {
	if count < 1 {
		return nil
	}
	dates := make([]time.Time, count)
	dates[0] = FirstInstallmentDueDate(purchaseDate, cardDueDay)
	for i := 1; i < count; i++ {
		dates[i] = NextInstallmentDueDate(dates[i-1], cardDueDay)
	}
	return dates
}

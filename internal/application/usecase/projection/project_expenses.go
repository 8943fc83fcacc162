// Package projection expands stored income and expense templates into
// concrete per-month occurrences. All functions are pure: they never touch
// storage or mutate their inputs, so repeated calls over the same collections
// yield identical results.
package projection

import (
	"fmt"
	"sort"
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/calendar"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// ExpensesForMonth projects the expense collection onto the month containing
// monthDate.
//
// Soft-deleted records (DeletedAt set) are invisible regardless of
// activeOnly. When activeOnly is set, inactive occurrences are skipped as
// well. Fixed templates synthesize one occurrence per month from their
// creation month onward unless the month is excluded; debit and credit
// records pass through when their own date falls in the month. Occurrences
// are sorted by due date ascending, then creation time.
func ExpensesForMonth(monthDate time.Time, expenses []*entity.Expense, activeOnly bool) []*entity.ExpenseOccurrence {
	occurrences := make([]*entity.ExpenseOccurrence, 0, len(expenses))

	for _, exp := range expenses {
		if exp.IsDeleted() {
			continue
		}
		if activeOnly && exp.Status == entity.ExpenseStatusInactive {
			continue
		}

		switch exp.PaymentMethod {
		case entity.PaymentMethodFixed:
			if occ := projectFixedExpense(monthDate, exp); occ != nil {
				occurrences = append(occurrences, occ)
			}
		case entity.PaymentMethodDebit:
			if exp.PurchaseDate != nil && calendar.SameMonth(*exp.PurchaseDate, monthDate) {
				occurrences = append(occurrences, passThroughExpense(exp, *exp.PurchaseDate))
			}
		case entity.PaymentMethodCredit:
			if exp.DueDate != nil && calendar.SameMonth(*exp.DueDate, monthDate) {
				occurrences = append(occurrences, passThroughExpense(exp, *exp.DueDate))
			}
		}
	}

	sortExpenseOccurrences(occurrences)
	return occurrences
}

// projectFixedExpense synthesizes the occurrence of a recurring expense for
// the target month, or nil when the template is excluded there or did not
// exist yet.
func projectFixedExpense(monthDate time.Time, exp *entity.Expense) *entity.ExpenseOccurrence {
	if exp.IsExcluded(calendar.MonthKey(monthDate)) {
		return nil
	}
	if monthIndex(exp.CreatedAt) > monthIndex(monthDate) {
		return nil
	}

	year, month := monthDate.Year(), monthDate.Month()
	day := calendar.ClampDay(year, month, exp.DueDayOfMonth)
	due := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	occ := &entity.ExpenseOccurrence{
		Expense:    *exp,
		OriginalID: exp.ID,
		DueDate:    due,
	}
	occ.Expense.ID = occurrenceID(exp.ID, monthDate)
	return occ
}

// passThroughExpense copies a debit or credit record verbatim into an
// occurrence with its resolved due date.
func passThroughExpense(exp *entity.Expense, due time.Time) *entity.ExpenseOccurrence {
	return &entity.ExpenseOccurrence{
		Expense:    *exp,
		OriginalID: exp.ID,
		DueDate:    due,
	}
}

// occurrenceID derives the per-month id of a fixed-template occurrence. The
// month component is zero-based, matching the stored collection convention.
func occurrenceID(templateID string, monthDate time.Time) string {
	return fmt.Sprintf("%s-%d-%d", templateID, monthDate.Year(), int(monthDate.Month())-1)
}

// monthIndex collapses a date to a comparable year*12+month ordinal.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func sortExpenseOccurrences(occurrences []*entity.ExpenseOccurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].DueDate.Equal(occurrences[j].DueDate) {
			return occurrences[i].DueDate.Before(occurrences[j].DueDate)
		}
		return occurrences[i].CreatedAt.Before(occurrences[j].CreatedAt)
	})
}

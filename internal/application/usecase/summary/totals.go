// Package summary reduces projected months to income/expense totals. Sums use
// plain float64 addition, matching the stored representation; rounding
// happens only at presentation time.
package summary

import (
	"time"

	"github.com/pocket-ledger/ledger/internal/application/usecase/projection"
	"github.com/pocket-ledger/ledger/internal/domain/calendar"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// MonthSummary holds the aggregated totals of one projected month.
type MonthSummary struct {
	Month        time.Time
	IncomeTotal  float64
	ExpenseTotal float64
	Net          float64
}

// TotalIncomeForMonth sums income values for the month containing monthDate.
//
// Unlike projection, deletion here is month-anchored rather than global: a
// template whose DeletedAt month is at or before the target month no longer
// counts, while months strictly before the deletion month retain it. This
// keeps historical totals stable when a fixed income is inactivated.
func TotalIncomeForMonth(monthDate time.Time, incomes []*entity.Income) float64 {
	target := monthIndex(monthDate)
	total := 0.0

	for _, inc := range incomes {
		if inc.DeletedAt != nil && monthIndex(*inc.DeletedAt) <= target {
			continue
		}

		switch inc.Type {
		case entity.IncomeTypeFixed:
			if inc.IsExcluded(calendar.MonthKey(monthDate)) {
				continue
			}
			if monthIndex(inc.CreatedAt) > target {
				continue
			}
			total += inc.Value
		case entity.IncomeTypeOneTime:
			if inc.Month == nil || inc.Year == nil {
				continue
			}
			if *inc.Year == monthDate.Year() && *inc.Month == int(monthDate.Month())-1 {
				total += inc.Value
			}
		}
	}

	return total
}

// TotalExpenseForMonth sums the values of the month's active projected
// expense occurrences.
func TotalExpenseForMonth(monthDate time.Time, expenses []*entity.Expense) float64 {
	total := 0.0
	for _, occ := range projection.ExpensesForMonth(monthDate, expenses, true) {
		total += occ.Value
	}
	return total
}

// ForMonth computes the full summary of one month.
func ForMonth(monthDate time.Time, incomes []*entity.Income, expenses []*entity.Expense) MonthSummary {
	income := TotalIncomeForMonth(monthDate, incomes)
	expense := TotalExpenseForMonth(monthDate, expenses)
	return MonthSummary{
		Month:        calendar.MonthStart(monthDate),
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Net:          income - expense,
	}
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

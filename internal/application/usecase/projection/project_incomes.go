package projection

import (
	"sort"
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/calendar"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// IncomesForMonth projects the income collection onto the month containing
// monthDate, under the same visibility rules as ExpensesForMonth: a
// soft-deleted template is skipped unconditionally, an inactive one only when
// activeOnly is set. Fixed incomes synthesize a per-month occurrence; a
// one-time income appears only in its own month/year.
func IncomesForMonth(monthDate time.Time, incomes []*entity.Income, activeOnly bool) []*entity.IncomeOccurrence {
	occurrences := make([]*entity.IncomeOccurrence, 0, len(incomes))

	for _, inc := range incomes {
		if inc.IsDeleted() {
			continue
		}
		if activeOnly && inc.Status == entity.RecordStatusInactive {
			continue
		}

		switch inc.Type {
		case entity.IncomeTypeFixed:
			if occ := projectFixedIncome(monthDate, inc); occ != nil {
				occurrences = append(occurrences, occ)
			}
		case entity.IncomeTypeOneTime:
			if inc.Month == nil || inc.Year == nil {
				continue
			}
			if *inc.Year == monthDate.Year() && *inc.Month == int(monthDate.Month())-1 {
				occurrences = append(occurrences, &entity.IncomeOccurrence{
					Income:     *inc,
					OriginalID: inc.ID,
					DueDate:    calendar.MonthStart(monthDate),
				})
			}
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].DueDate.Equal(occurrences[j].DueDate) {
			return occurrences[i].DueDate.Before(occurrences[j].DueDate)
		}
		return occurrences[i].CreatedAt.Before(occurrences[j].CreatedAt)
	})
	return occurrences
}

// projectFixedIncome synthesizes the occurrence of a recurring income for the
// target month, or nil when the month is excluded or precedes the template's
// creation month. Incomes carry no due day, so the occurrence is anchored at
// the start of the month.
func projectFixedIncome(monthDate time.Time, inc *entity.Income) *entity.IncomeOccurrence {
	if inc.IsExcluded(calendar.MonthKey(monthDate)) {
		return nil
	}
	if monthIndex(inc.CreatedAt) > monthIndex(monthDate) {
		return nil
	}

	occ := &entity.IncomeOccurrence{
		Income:     *inc,
		OriginalID: inc.ID,
		DueDate:    calendar.MonthStart(monthDate),
	}
	occ.Income.ID = occurrenceID(inc.ID, monthDate)
	return occ
}

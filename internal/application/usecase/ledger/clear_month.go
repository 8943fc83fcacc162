package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/calendar"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// ClearMonthInput represents the input for the month-scoped bulk soft delete.
type ClearMonthInput struct {
	Month time.Time
}

// ClearMonthOutput reports how many records each mechanism touched.
type ClearMonthOutput struct {
	ExcludedTemplates  int
	InactivatedRecords int
}

// ClearMonthUseCase suppresses one calendar month without touching anything
// outside it. Recurring templates gain the month in their exclusion set,
// keeping every other month intact; one-time incomes and debit/credit records
// falling in the month are soft-deleted with the month's last day as the
// deletion instant, so the aggregator's month-anchored cutoff removes them
// from that month on while earlier months are unaffected.
type ClearMonthUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewClearMonthUseCase creates a new ClearMonthUseCase instance.
func NewClearMonthUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	marker adapter.UpdateMarker,
	clock adapter.Clock,
) *ClearMonthUseCase {
	return &ClearMonthUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute performs the clear. The incomes and expenses collections are two
// independent writes; a crash between them leaves a partially cleared month,
// which a re-run completes.
func (uc *ClearMonthUseCase) Execute(ctx context.Context, input ClearMonthInput) (*ClearMonthOutput, error) {
	monthKey := calendar.MonthKey(input.Month)
	lastDay := calendar.MonthEnd(input.Month)
	out := &ClearMonthOutput{}

	incomes, err := uc.incomeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	incomesChanged := false
	for _, inc := range incomes {
		if inc.IsDeleted() {
			continue
		}
		switch inc.Type {
		case entity.IncomeTypeFixed:
			if !inc.IsExcluded(monthKey) {
				inc.Exclude(monthKey)
				out.ExcludedTemplates++
				incomesChanged = true
			}
		case entity.IncomeTypeOneTime:
			if inc.Month != nil && inc.Year != nil &&
				*inc.Year == input.Month.Year() && *inc.Month == int(input.Month.Month())-1 {
				inc.SoftDelete(lastDay)
				out.InactivatedRecords++
				incomesChanged = true
			}
		}
	}
	if incomesChanged {
		if err := uc.incomeRepo.SaveAll(ctx, incomes); err != nil {
			return nil, fmt.Errorf("failed to save incomes: %w", err)
		}
	}

	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	expensesChanged := false
	for _, exp := range expenses {
		if exp.IsDeleted() {
			continue
		}
		switch exp.PaymentMethod {
		case entity.PaymentMethodFixed:
			if !exp.IsExcluded(monthKey) {
				exp.Exclude(monthKey)
				out.ExcludedTemplates++
				expensesChanged = true
			}
		case entity.PaymentMethodDebit:
			if exp.PurchaseDate != nil && calendar.SameMonth(*exp.PurchaseDate, input.Month) {
				exp.SoftDelete(lastDay)
				out.InactivatedRecords++
				expensesChanged = true
			}
		case entity.PaymentMethodCredit:
			if exp.DueDate != nil && calendar.SameMonth(*exp.DueDate, input.Month) {
				exp.SoftDelete(lastDay)
				out.InactivatedRecords++
				expensesChanged = true
			}
		}
	}
	if expensesChanged {
		if err := uc.expenseRepo.SaveAll(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
	}

	if incomesChanged || expensesChanged {
		touchMarker(ctx, uc.marker, uc.clock)
	}
	return out, nil
}

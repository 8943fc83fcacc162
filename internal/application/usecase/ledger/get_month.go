package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/application/usecase/projection"
	"github.com/pocket-ledger/ledger/internal/application/usecase/summary"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// GetMonthInput represents the input for a single-month view.
type GetMonthInput struct {
	Month time.Time
	// IncludeInactive also returns soft-deleted occurrences of the month,
	// which the UI shows struck through. Totals always use active
	// occurrences only.
	IncludeInactive bool
}

// GetMonthOutput is the month view the UI renders: projected occurrences
// plus totals.
type GetMonthOutput struct {
	Incomes  []*entity.IncomeOccurrence
	Expenses []*entity.ExpenseOccurrence
	Summary  summary.MonthSummary
}

// GetMonthUseCase projects one month from freshly loaded collections. There
// is no ambient state: callers re-execute whenever they want fresh data.
type GetMonthUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetMonthUseCase creates a new GetMonthUseCase instance.
func NewGetMonthUseCase(incomeRepo adapter.IncomeRepository, expenseRepo adapter.ExpenseRepository) *GetMonthUseCase {
	return &GetMonthUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the projection.
func (uc *GetMonthUseCase) Execute(ctx context.Context, input GetMonthInput) (*GetMonthOutput, error) {
	incomes, err := uc.incomeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	activeOnly := !input.IncludeInactive
	return &GetMonthOutput{
		Incomes:  projection.IncomesForMonth(input.Month, incomes, activeOnly),
		Expenses: projection.ExpensesForMonth(input.Month, expenses, activeOnly),
		Summary:  summary.ForMonth(input.Month, incomes, expenses),
	}, nil
}

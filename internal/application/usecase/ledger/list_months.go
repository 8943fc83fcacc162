// Package ledger contains the month-oriented read and bulk operations the UI
// drives the app with: the visible month window, single-month views,
// month-scoped clearing and permanent wipes.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/application/usecase/projection"
	"github.com/pocket-ledger/ledger/internal/application/usecase/summary"
	"github.com/pocket-ledger/ledger/internal/domain/calendar"
)

// MonthEntry is one month of the visible window with its totals.
type MonthEntry struct {
	Month     time.Time
	IsCurrent bool
	Summary   summary.MonthSummary
}

// ListMonthsInput represents the input for the month window. Zero values
// select the default 12-back/12-forward window.
type ListMonthsInput struct {
	MonthsBack    int
	MonthsForward int
}

// ListMonthsOutput represents the produced month list, chronologically
// ascending.
type ListMonthsOutput struct {
	Months []MonthEntry
}

// ListMonthsUseCase builds the rolling window of months worth showing: every
// month in the window with at least one active projected income or expense,
// plus the current real-world month, which anchors the initial view even when
// empty.
type ListMonthsUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *ListMonthsUseCase {
	return &ListMonthsUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute loads both collections once and scans the window.
func (uc *ListMonthsUseCase) Execute(ctx context.Context, input ListMonthsInput) (*ListMonthsOutput, error) {
	incomes, err := uc.incomeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	back, forward := input.MonthsBack, input.MonthsForward
	if back <= 0 {
		back = calendar.DefaultMonthsBack
	}
	if forward <= 0 {
		forward = calendar.DefaultMonthsForward
	}

	now := uc.clock.Now()
	months := make([]MonthEntry, 0, back+forward+1)

	for _, month := range calendar.MonthSequence(now, back, forward) {
		isCurrent := calendar.SameMonth(month, now)
		if !isCurrent &&
			len(projection.IncomesForMonth(month, incomes, true)) == 0 &&
			len(projection.ExpensesForMonth(month, expenses, true)) == 0 {
			continue
		}
		months = append(months, MonthEntry{
			Month:     month,
			IsCurrent: isCurrent,
			Summary:   summary.ForMonth(month, incomes, expenses),
		})
	}

	return &ListMonthsOutput{Months: months}, nil
}

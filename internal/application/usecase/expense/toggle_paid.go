package expense

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// TogglePaidInput represents the input for flipping an expense between
// pending and paid.
type TogglePaidInput struct {
	ExpenseID string
}

// TogglePaidOutput represents the output of the toggle.
type TogglePaidOutput struct {
	Expense *entity.Expense
}

// TogglePaidUseCase flips an expense occurrence between pending and paid,
// stamping or clearing PaidAt. Inactive occurrences are terminal and cannot
// be toggled.
type TogglePaidUseCase struct {
	expenseRepo adapter.ExpenseRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewTogglePaidUseCase creates a new TogglePaidUseCase instance.
func NewTogglePaidUseCase(expenseRepo adapter.ExpenseRepository, marker adapter.UpdateMarker, clock adapter.Clock) *TogglePaidUseCase {
	return &TogglePaidUseCase{
		expenseRepo: expenseRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute performs the toggle.
func (uc *TogglePaidUseCase) Execute(ctx context.Context, input TogglePaidInput) (*TogglePaidOutput, error) {
	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	for _, existing := range expenses {
		if existing.ID != input.ExpenseID {
			continue
		}

		switch existing.Status {
		case entity.ExpenseStatusPending:
			existing.MarkPaid(uc.clock.Now())
		case entity.ExpenseStatusPaid:
			existing.MarkPending()
		case entity.ExpenseStatusInactive:
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseInactive,
				"inactive expenses cannot be toggled",
				domainerror.ErrExpenseInactive,
			)
		}

		if err := uc.expenseRepo.SaveAll(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &TogglePaidOutput{Expense: existing}, nil
	}

	return nil, domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		domainerror.ErrExpenseNotFound,
	)
}

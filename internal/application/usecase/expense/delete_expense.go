package expense

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense soft deletion.
type DeleteExpenseInput struct {
	ExpenseID string
}

// DeleteExpenseOutput represents the output of expense soft deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense soft deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, marker adapter.UpdateMarker, clock adapter.Clock) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute soft-deletes one expense record. For a credit purchase this targets
// a single installment; sibling installments are untouched.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	for _, existing := range expenses {
		if existing.ID != input.ExpenseID {
			continue
		}

		existing.SoftDelete(uc.clock.Now())
		if err := uc.expenseRepo.SaveAll(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &DeleteExpenseOutput{Success: true}, nil
	}

	return nil, domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		domainerror.ErrExpenseNotFound,
	)
}

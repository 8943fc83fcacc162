package ledger

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
)

// Collection names a wipeable record collection.
type Collection string

const (
	CollectionIncomes  Collection = "incomes"
	CollectionExpenses Collection = "expenses"
	CollectionCards    Collection = "cards"
)

// WipeCollectionInput represents the input for a permanent wipe.
type WipeCollectionInput struct {
	Collection Collection
}

// WipeCollectionOutput represents the output of a permanent wipe.
type WipeCollectionOutput struct {
	Success bool
}

// WipeCollectionUseCase removes a collection's backing key entirely. This is
// the only hard-delete path in the system, deliberately separate from the
// soft-delete operations, and it is irreversible.
type WipeCollectionUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewWipeCollectionUseCase creates a new WipeCollectionUseCase instance.
func NewWipeCollectionUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	marker adapter.UpdateMarker,
	clock adapter.Clock,
) *WipeCollectionUseCase {
	return &WipeCollectionUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute performs the wipe.
func (uc *WipeCollectionUseCase) Execute(ctx context.Context, input WipeCollectionInput) (*WipeCollectionOutput, error) {
	var err error
	switch input.Collection {
	case CollectionIncomes:
		err = uc.incomeRepo.Wipe(ctx)
	case CollectionExpenses:
		err = uc.expenseRepo.Wipe(ctx)
	case CollectionCards:
		err = uc.cardRepo.Wipe(ctx)
	default:
		return nil, fmt.Errorf("unknown collection %q", input.Collection)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to wipe collection %s: %w", input.Collection, err)
	}

	touchMarker(ctx, uc.marker, uc.clock)
	return &WipeCollectionOutput{Success: true}, nil
}

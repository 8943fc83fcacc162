package income

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// DeleteIncomeInput represents the input for income soft deletion.
type DeleteIncomeInput struct {
	IncomeID string
}

// DeleteIncomeOutput represents the output of income soft deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income soft deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	marker     adapter.UpdateMarker
	clock      adapter.Clock
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, marker adapter.UpdateMarker, clock adapter.Clock) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		marker:     marker,
		clock:      clock,
	}
}

// Execute soft-deletes the income: status becomes inactive and the deletion
// instant is recorded. For fixed templates this removes all visibility from
// the deletion month onward while past-month totals are preserved.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	incomes, err := uc.incomeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	for _, existing := range incomes {
		if existing.ID != input.IncomeID {
			continue
		}

		existing.SoftDelete(uc.clock.Now())
		if err := uc.incomeRepo.SaveAll(ctx, incomes); err != nil {
			return nil, fmt.Errorf("failed to save incomes: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &DeleteIncomeOutput{Success: true}, nil
	}

	return nil, domainerror.NewIncomeError(
		domainerror.ErrCodeIncomeNotFound,
		"income not found",
		domainerror.ErrIncomeNotFound,
	)
}

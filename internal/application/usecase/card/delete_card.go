package card

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// DeleteCardInput represents the input for card soft deletion.
type DeleteCardInput struct {
	CardID string
}

// DeleteCardOutput represents the output of card soft deletion.
type DeleteCardOutput struct {
	Success bool
}

// DeleteCardUseCase handles card soft deletion logic. Installments already
// materialized against the card keep their schedule; the card only stops
// accepting new purchases.
type DeleteCardUseCase struct {
	cardRepo adapter.CardRepository
	marker   adapter.UpdateMarker
	clock    adapter.Clock
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository, marker adapter.UpdateMarker, clock adapter.Clock) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
		marker:   marker,
		clock:    clock,
	}
}

// Execute performs the soft deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) (*DeleteCardOutput, error) {
	cards, err := uc.cardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	for _, existing := range cards {
		if existing.ID != input.CardID {
			continue
		}

		existing.SoftDelete(uc.clock.Now())
		if err := uc.cardRepo.SaveAll(ctx, cards); err != nil {
			return nil, fmt.Errorf("failed to save cards: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &DeleteCardOutput{Success: true}, nil
	}

	return nil, domainerror.NewCardError(
		domainerror.ErrCodeCardNotFound,
		"card not found",
		domainerror.ErrCardNotFound,
	)
}

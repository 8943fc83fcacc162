package card

import (
	"context"
	"fmt"
	"sort"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// ListCardsInput represents the input for card listing.
type ListCardsInput struct {
	// IncludeInactive also returns soft-deleted cards, which the UI needs
	// when rendering historical installments.
	IncludeInactive bool
}

// ListCardsOutput represents the output of card listing.
type ListCardsOutput struct {
	Cards []*entity.Card
}

// ListCardsUseCase handles card listing logic.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute returns the cards ordered by creation time.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	filtered := make([]*entity.Card, 0, len(cards))
	for _, c := range cards {
		if !input.IncludeInactive && !c.IsActive() {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	return &ListCardsOutput{Cards: filtered}, nil
}

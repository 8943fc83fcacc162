// Package card contains credit card-related use cases.
package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	Alias         string
	DueDayOfMonth int
}

// CreateCardOutput represents the output of card creation.
type CreateCardOutput struct {
	Card *entity.Card
}

// CreateCardUseCase handles card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
	marker   adapter.UpdateMarker
	clock    adapter.Clock
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository, marker adapter.UpdateMarker, clock adapter.Clock) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
		marker:   marker,
		clock:    clock,
	}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := validateCardInput(input); err != nil {
		return nil, err
	}

	card := entity.NewCard(strings.TrimSpace(input.Alias), input.DueDayOfMonth)
	card.CreatedAt = uc.clock.Now()

	if err := uc.cardRepo.Append(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &CreateCardOutput{Card: card}, nil
}

// validateCardInput rejects invalid fields before any storage mutation.
func validateCardInput(input CreateCardInput) error {
	if strings.TrimSpace(input.Alias) == "" {
		return domainerror.NewCardError(
			domainerror.ErrCodeCardAliasRequired,
			"card alias must not be empty",
			domainerror.ErrCardAliasRequired,
		)
	}
	if input.DueDayOfMonth < 1 || input.DueDayOfMonth > 31 {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardDueDay,
			"card due day must be between 1 and 31",
			domainerror.ErrInvalidCardDueDay,
		)
	}
	return nil
}

package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// UpdateCardInput represents the input for card editing.
type UpdateCardInput struct {
	ID            string
	Alias         string
	DueDayOfMonth int
}

// UpdateCardOutput represents the output of card editing.
type UpdateCardOutput struct {
	Card *entity.Card
	// InsertedAsNew reports that the edit target was missing and the data
	// was saved as a fresh record instead.
	InsertedAsNew bool
}

// UpdateCardUseCase handles card editing logic. Editing a card's due day does
// not reschedule installments already materialized against it: those were
// derived at purchase time and only a purchase edit regenerates them.
type UpdateCardUseCase struct {
	cardRepo adapter.CardRepository
	marker   adapter.UpdateMarker
	clock    adapter.Clock
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CardRepository, marker adapter.UpdateMarker, clock adapter.Clock) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
		marker:   marker,
		clock:    clock,
	}
}

// Execute replaces the card in place, preserving its creation and deletion
// timestamps. When the target id is not present the edited data is inserted
// as a new card rather than discarded.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	if err := validateCardInput(CreateCardInput{Alias: input.Alias, DueDayOfMonth: input.DueDayOfMonth}); err != nil {
		return nil, err
	}

	cards, err := uc.cardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	for i, existing := range cards {
		if existing.ID != input.ID {
			continue
		}

		updated := &entity.Card{
			ID:            existing.ID,
			Alias:         strings.TrimSpace(input.Alias),
			DueDayOfMonth: input.DueDayOfMonth,
			Status:        existing.Status,
			CreatedAt:     existing.CreatedAt,
			DeletedAt:     existing.DeletedAt,
		}
		cards[i] = updated
		if err := uc.cardRepo.SaveAll(ctx, cards); err != nil {
			return nil, fmt.Errorf("failed to save cards: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &UpdateCardOutput{Card: updated}, nil
	}

	// Edit target vanished; keep the user's data as a fresh card.
	slog.Warn("Card edit target not found, inserting as new record", "cardID", input.ID)

	inserted := &entity.Card{
		ID:            uuid.NewString(),
		Alias:         strings.TrimSpace(input.Alias),
		DueDayOfMonth: input.DueDayOfMonth,
		Status:        entity.RecordStatusActive,
		CreatedAt:     uc.clock.Now(),
	}
	if err := uc.cardRepo.Append(ctx, inserted); err != nil {
		return nil, fmt.Errorf("failed to insert edited card: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &UpdateCardOutput{Card: inserted, InsertedAsNew: true}, nil
}

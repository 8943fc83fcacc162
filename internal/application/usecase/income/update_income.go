package income

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// UpdateIncomeInput represents the input for income editing.
type UpdateIncomeInput struct {
	ID    string
	Name  string
	Value float64
	Type  entity.IncomeType
	Month *int
	Year  *int
}

// UpdateIncomeOutput represents the output of income editing.
type UpdateIncomeOutput struct {
	Income *entity.Income
	// InsertedAsNew reports that the edit target was missing and the data
	// was saved as a fresh record instead.
	InsertedAsNew bool
}

// UpdateIncomeUseCase handles income editing logic.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	marker     adapter.UpdateMarker
	clock      adapter.Clock
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, marker adapter.UpdateMarker, clock adapter.Clock) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
		marker:     marker,
		clock:      clock,
	}
}

// Execute replaces the income in place, preserving its creation and deletion
// timestamps, status and exclusion set. When the target id is not present the
// edited data is inserted as a new record rather than discarded.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if err := validateIncomeInput(CreateIncomeInput{
		Name:  input.Name,
		Value: input.Value,
		Type:  input.Type,
		Month: input.Month,
		Year:  input.Year,
	}); err != nil {
		return nil, err
	}

	incomes, err := uc.incomeRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	for i, existing := range incomes {
		if existing.ID != input.ID {
			continue
		}

		updated := applyIncomeEdit(existing, input)
		incomes[i] = updated
		if err := uc.incomeRepo.SaveAll(ctx, incomes); err != nil {
			return nil, fmt.Errorf("failed to save incomes: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &UpdateIncomeOutput{Income: updated}, nil
	}

	// Edit target vanished; keep the user's data as a fresh record.
	slog.Warn("Income edit target not found, inserting as new record", "incomeID", input.ID)

	inserted := applyIncomeEdit(&entity.Income{
		ID:        uuid.NewString(),
		Status:    entity.RecordStatusActive,
		CreatedAt: uc.clock.Now(),
	}, input)
	if err := uc.incomeRepo.Append(ctx, inserted); err != nil {
		return nil, fmt.Errorf("failed to insert edited income: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &UpdateIncomeOutput{Income: inserted, InsertedAsNew: true}, nil
}

// applyIncomeEdit builds the replacement record from the base record's
// immutable fields and the edited values.
func applyIncomeEdit(base *entity.Income, input UpdateIncomeInput) *entity.Income {
	updated := &entity.Income{
		ID:             base.ID,
		Name:           strings.TrimSpace(input.Name),
		Value:          input.Value,
		Type:           input.Type,
		ExcludedMonths: base.ExcludedMonths,
		Status:         base.Status,
		CreatedAt:      base.CreatedAt,
		DeletedAt:      base.DeletedAt,
	}
	if input.Type == entity.IncomeTypeOneTime {
		updated.Month = input.Month
		updated.Year = input.Year
		updated.ExcludedMonths = nil
	}
	return updated
}

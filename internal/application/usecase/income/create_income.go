// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// Plausible bounds for a one-time income year.
const (
	MinIncomeYear = 1970
	MaxIncomeYear = 2100
)

// CreateIncomeInput represents the input for income creation. Month and Year
// are required for one-time incomes and ignored for fixed ones. Month is
// zero-based.
type CreateIncomeInput struct {
	Name  string
	Value float64
	Type  entity.IncomeType
	Month *int
	Year  *int
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	marker     adapter.UpdateMarker
	clock      adapter.Clock
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, marker adapter.UpdateMarker, clock adapter.Clock) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		marker:     marker,
		clock:      clock,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateIncomeInput(input); err != nil {
		return nil, err
	}

	var income *entity.Income
	switch input.Type {
	case entity.IncomeTypeFixed:
		income = entity.NewFixedIncome(strings.TrimSpace(input.Name), input.Value)
	case entity.IncomeTypeOneTime:
		income = entity.NewOneTimeIncome(strings.TrimSpace(input.Name), input.Value, *input.Month, *input.Year)
	}
	income.CreatedAt = uc.clock.Now()

	if err := uc.incomeRepo.Append(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &CreateIncomeOutput{Income: income}, nil
}

// validateIncomeInput rejects invalid fields before any storage mutation.
func validateIncomeInput(input CreateIncomeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNameRequired,
			"income name must not be empty",
			domainerror.ErrIncomeNameRequired,
		)
	}

	switch input.Type {
	case entity.IncomeTypeFixed:
		if input.Value < 0 {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeValue,
				"fixed income value must not be negative",
				domainerror.ErrInvalidIncomeValue,
			)
		}
	case entity.IncomeTypeOneTime:
		if input.Value <= 0 {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeValue,
				"one-time income value must be positive",
				domainerror.ErrInvalidIncomeValue,
			)
		}
		if input.Month == nil || *input.Month < 0 || *input.Month > 11 {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeMonth,
				"one-time income month must be between 0 and 11",
				domainerror.ErrInvalidIncomeMonth,
			)
		}
		if input.Year == nil || *input.Year < MinIncomeYear || *input.Year > MaxIncomeYear {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeYear,
				fmt.Sprintf("one-time income year must be between %d and %d", MinIncomeYear, MaxIncomeYear),
				domainerror.ErrInvalidIncomeYear,
			)
		}
	default:
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeType,
			"income type must be Fixed or OneTime",
			domainerror.ErrInvalidIncomeType,
		)
	}

	return nil
}

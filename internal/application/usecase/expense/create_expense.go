// Package expense contains expense-related use cases, including the
// generation of credit installment sets.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/billing"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation. The variant
// fields are read according to PaymentMethod: PurchaseDate for debit and
// credit, DueDayOfMonth for fixed, CardID and Installments for credit. For
// credit purchases Value is the purchase total, split evenly across the
// installments.
type CreateExpenseInput struct {
	Description   string
	Value         float64
	PaymentMethod entity.PaymentMethod
	PurchaseDate  time.Time
	DueDayOfMonth int
	CardID        string
	Installments  int
}

// CreateExpenseOutput represents the output of expense creation. Debit and
// fixed expenses produce a single record; credit purchases produce the full
// materialized installment set.
type CreateExpenseOutput struct {
	Expenses []*entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	marker adapter.UpdateMarker,
	clock adapter.Clock,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute performs the expense creation. Credit purchases are validated
// against the cards collection before any write: a missing or inactive card
// blocks the save entirely.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	description := strings.TrimSpace(input.Description)
	if input.PurchaseDate.IsZero() {
		input.PurchaseDate = now
	}

	switch input.PaymentMethod {
	case entity.PaymentMethodDebit:
		exp := entity.NewDebitExpense(description, input.Value, input.PurchaseDate)
		exp.CreatedAt = now
		if err := uc.expenseRepo.Append(ctx, exp); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)
		return &CreateExpenseOutput{Expenses: []*entity.Expense{exp}}, nil

	case entity.PaymentMethodFixed:
		exp := entity.NewFixedExpense(description, input.Value, input.DueDayOfMonth)
		exp.CreatedAt = now
		if err := uc.expenseRepo.Append(ctx, exp); err != nil {
			return nil, fmt.Errorf("failed to create expense: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)
		return &CreateExpenseOutput{Expenses: []*entity.Expense{exp}}, nil

	case entity.PaymentMethodCredit:
		card, err := uc.findActiveCard(ctx, input.CardID)
		if err != nil {
			return nil, err
		}

		installments := buildInstallmentSet(uuid.NewString(), description, input, card, now)

		expenses, err := uc.expenseRepo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load expenses: %w", err)
		}
		expenses = append(expenses, installments...)
		if err := uc.expenseRepo.SaveAll(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)
		return &CreateExpenseOutput{Expenses: installments}, nil
	}

	return nil, domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidPaymentMethod,
		"payment method must be Debit, Fixed or Credit",
		domainerror.ErrInvalidPaymentMethod,
	)
}

// findActiveCard resolves a card reference or blocks the save.
func (uc *CreateExpenseUseCase) findActiveCard(ctx context.Context, cardID string) (*entity.Card, error) {
	cards, err := uc.cardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	for _, card := range cards {
		if card.ID != cardID {
			continue
		}
		if !card.IsActive() {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardInactive,
				"card is inactive",
				domainerror.ErrCardInactive,
			)
		}
		return card, nil
	}
	return nil, domainerror.NewCardError(
		domainerror.ErrCodeCardNotFound,
		"card not found",
		domainerror.ErrCardNotFound,
	)
}

// buildInstallmentSet materializes the installment records of one credit
// purchase. The whole set is a derived artifact of its parameters: editing
// the purchase later regenerates it from scratch rather than patching
// individual installments.
func buildInstallmentSet(
	originalExpenseID string,
	description string,
	input CreateExpenseInput,
	card *entity.Card,
	createdAt time.Time,
) []*entity.Expense {
	dueDates := billing.InstallmentDueDates(input.PurchaseDate, card.DueDayOfMonth, input.Installments)
	installmentValue := input.Value / float64(input.Installments)

	set := make([]*entity.Expense, 0, input.Installments)
	for i, due := range dueDates {
		installment := entity.NewCreditInstallment(
			originalExpenseID,
			description,
			installmentValue,
			card.ID,
			input.PurchaseDate,
			due,
			i+1,
			input.Installments,
		)
		installment.CreatedAt = createdAt
		set = append(set, installment)
	}
	return set
}

// validateExpenseInput rejects invalid fields before any storage mutation.
func validateExpenseInput(input CreateExpenseInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description must not be empty",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if input.Value <= 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseValue,
			"expense value must be positive",
			domainerror.ErrInvalidExpenseValue,
		)
	}

	switch input.PaymentMethod {
	case entity.PaymentMethodDebit:
		// Purchase date is the only variant field; the zero value is
		// accepted as "today" by callers, so nothing else to check.
	case entity.PaymentMethodFixed:
		if input.DueDayOfMonth < 1 || input.DueDayOfMonth > 31 {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidDueDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
	case entity.PaymentMethodCredit:
		if input.Installments < 1 {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidInstallmentCount,
				"installment count must be at least 1",
				domainerror.ErrInvalidInstallmentCount,
			)
		}
	default:
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be Debit, Fixed or Credit",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return nil
}

package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense editing. For credit
// purchases ID is the id of any installment in the set or the logical
// purchase id itself; the purchase parameters (value total, purchase date,
// card, installment count) drive a full regeneration of the set.
type UpdateExpenseInput struct {
	ID            string
	Description   string
	Value         float64
	PaymentMethod entity.PaymentMethod
	PurchaseDate  time.Time
	DueDayOfMonth int
	CardID        string
	Installments  int
}

// UpdateExpenseOutput represents the output of expense editing.
type UpdateExpenseOutput struct {
	Expenses []*entity.Expense
	// InsertedAsNew reports that the edit target was missing and the data
	// was saved as a fresh record instead.
	InsertedAsNew bool
}

// UpdateExpenseUseCase handles expense editing logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	marker adapter.UpdateMarker,
	clock adapter.Clock,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		marker:      marker,
		clock:       clock,
	}
}

// Execute edits an expense. Debit and fixed records are replaced in place,
// preserving creation and deletion timestamps. Credit purchases never patch
// installments individually: the whole set sharing the purchase's original
// expense id is removed and regenerated deterministically from the edited
// parameters.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseInput(CreateExpenseInput{
		Description:   input.Description,
		Value:         input.Value,
		PaymentMethod: input.PaymentMethod,
		PurchaseDate:  input.PurchaseDate,
		DueDayOfMonth: input.DueDayOfMonth,
		CardID:        input.CardID,
		Installments:  input.Installments,
	}); err != nil {
		return nil, err
	}

	if input.PaymentMethod == entity.PaymentMethodCredit {
		return uc.regenerateInstallments(ctx, input)
	}
	return uc.replaceInPlace(ctx, input)
}

// replaceInPlace handles debit and fixed edits.
func (uc *UpdateExpenseUseCase) replaceInPlace(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	now := uc.clock.Now()
	if input.PurchaseDate.IsZero() {
		input.PurchaseDate = now
	}

	for i, existing := range expenses {
		if existing.ID != input.ID {
			continue
		}

		updated := applyExpenseEdit(existing, input)
		expenses[i] = updated
		if err := uc.expenseRepo.SaveAll(ctx, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
		touchMarker(ctx, uc.marker, uc.clock)

		return &UpdateExpenseOutput{Expenses: []*entity.Expense{updated}}, nil
	}

	// Edit target vanished; keep the user's data as a fresh record.
	slog.Warn("Expense edit target not found, inserting as new record", "expenseID", input.ID)

	inserted := applyExpenseEdit(&entity.Expense{
		ID:        uuid.NewString(),
		Status:    entity.ExpenseStatusPending,
		CreatedAt: now,
	}, input)
	if err := uc.expenseRepo.Append(ctx, inserted); err != nil {
		return nil, fmt.Errorf("failed to insert edited expense: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &UpdateExpenseOutput{Expenses: []*entity.Expense{inserted}, InsertedAsNew: true}, nil
}

// regenerateInstallments removes every installment sharing the purchase's
// original expense id and reinserts a freshly computed set.
func (uc *UpdateExpenseUseCase) regenerateInstallments(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	card, err := uc.findActiveCard(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	originalID := resolveOriginalExpenseID(expenses, input.ID)
	insertedAsNew := originalID == ""
	if insertedAsNew {
		slog.Warn("Credit purchase edit target not found, regenerating under a new id", "expenseID", input.ID)
		originalID = uuid.NewString()
	}

	kept := expenses[:0]
	for _, existing := range expenses {
		if existing.PaymentMethod == entity.PaymentMethodCredit && existing.OriginalExpenseID == originalID {
			continue
		}
		kept = append(kept, existing)
	}

	now := uc.clock.Now()
	if input.PurchaseDate.IsZero() {
		input.PurchaseDate = now
	}
	installments := buildInstallmentSet(originalID, strings.TrimSpace(input.Description), CreateExpenseInput{
		Description:   input.Description,
		Value:         input.Value,
		PaymentMethod: input.PaymentMethod,
		PurchaseDate:  input.PurchaseDate,
		CardID:        input.CardID,
		Installments:  input.Installments,
	}, card, now)

	kept = append(kept, installments...)
	if err := uc.expenseRepo.SaveAll(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}
	touchMarker(ctx, uc.marker, uc.clock)

	return &UpdateExpenseOutput{Expenses: installments, InsertedAsNew: insertedAsNew}, nil
}

// findActiveCard resolves a card reference or blocks the save.
func (uc *UpdateExpenseUseCase) findActiveCard(ctx context.Context, cardID string) (*entity.Card, error) {
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

// resolveOriginalExpenseID maps an edit target id to the logical purchase id.
// The target may be the purchase id itself or the id of any installment.
func resolveOriginalExpenseID(expenses []*entity.Expense, targetID string) string {
	for _, exp := range expenses {
		if exp.PaymentMethod != entity.PaymentMethodCredit {
			continue
		}
		if exp.OriginalExpenseID == targetID || exp.ID == targetID {
			return exp.OriginalExpenseID
		}
	}
	return ""
}

// applyExpenseEdit builds the replacement record from the base record's
// immutable fields and the edited values. Credit edits never come through
// here.
func applyExpenseEdit(base *entity.Expense, input UpdateExpenseInput) *entity.Expense {
	updated := &entity.Expense{
		ID:             base.ID,
		Description:    strings.TrimSpace(input.Description),
		Value:          input.Value,
		PaymentMethod:  input.PaymentMethod,
		ExcludedMonths: base.ExcludedMonths,
		Status:         base.Status,
		PaidAt:         base.PaidAt,
		CreatedAt:      base.CreatedAt,
		DeletedAt:      base.DeletedAt,
	}
	switch input.PaymentMethod {
	case entity.PaymentMethodDebit:
		purchase := input.PurchaseDate
		due := purchase
		updated.PurchaseDate = &purchase
		updated.DueDate = &due
		updated.ExcludedMonths = nil
	case entity.PaymentMethodFixed:
		updated.DueDayOfMonth = input.DueDayOfMonth
	}
	return updated
}

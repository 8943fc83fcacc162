package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod discriminates the three expense shapes stored in the expenses
// collection.
type PaymentMethod string

const (
	// PaymentMethodDebit is a single-occurrence purchase.
	PaymentMethodDebit PaymentMethod = "Debit"
	// PaymentMethodFixed recurs every month on a fixed due day.
	PaymentMethodFixed PaymentMethod = "Fixed"
	// PaymentMethodCredit is one materialized installment of a credit
	// purchase; all installments of a purchase share OriginalExpenseID.
	PaymentMethodCredit PaymentMethod = "Credit"
)

// ExpenseStatus is the lifecycle status of an expense occurrence. Inactive is
// the soft-delete state, orthogonal to pending/paid.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusPaid     ExpenseStatus = "paid"
	ExpenseStatusInactive ExpenseStatus = "inactive"
)

// Expense is a stored expense record, tagged by PaymentMethod. Each variant
// uses only its own fields:
//
//   - Debit: PurchaseDate, DueDate (equal to the purchase date).
//   - Fixed: DueDayOfMonth, ExcludedMonths.
//   - Credit: CardID, OriginalExpenseID, InstallmentNumber,
//     TotalInstallments, PurchaseDate, DueDate.
//
// Use the variant constructors; the projection engine switches on the tag.
type Expense struct {
	ID                string        `json:"id"`
	Description       string        `json:"description"`
	Value             float64       `json:"value"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	PurchaseDate      *time.Time    `json:"purchaseDate,omitempty"`
	DueDate           *time.Time    `json:"dueDate,omitempty"`
	DueDayOfMonth     int           `json:"dueDayOfMonth,omitempty"`
	ExcludedMonths    []string      `json:"excludedMonths,omitempty"`
	CardID            string        `json:"cardId,omitempty"`
	OriginalExpenseID string        `json:"originalExpenseId,omitempty"`
	InstallmentNumber int           `json:"installmentNumber,omitempty"`
	TotalInstallments int           `json:"totalInstallments,omitempty"`
	Status            ExpenseStatus `json:"status"`
	PaidAt            *time.Time    `json:"paidAt,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	DeletedAt         *time.Time    `json:"deletedAt,omitempty"`
}

// NewDebitExpense creates a pending debit expense. The due date of a debit
// purchase is the purchase date itself.
func NewDebitExpense(description string, value float64, purchaseDate time.Time) *Expense {
	due := purchaseDate
	return &Expense{
		ID:            uuid.NewString(),
		Description:   description,
		Value:         value,
		PaymentMethod: PaymentMethodDebit,
		PurchaseDate:  &purchaseDate,
		DueDate:       &due,
		Status:        ExpenseStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewFixedExpense creates a pending recurring expense due on the given day of
// every month.
func NewFixedExpense(description string, value float64, dueDayOfMonth int) *Expense {
	return &Expense{
		ID:            uuid.NewString(),
		Description:   description,
		Value:         value,
		PaymentMethod: PaymentMethodFixed,
		DueDayOfMonth: dueDayOfMonth,
		Status:        ExpenseStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewCreditInstallment creates one materialized installment of a credit
// purchase. The id is derived from the logical purchase id so sibling
// installments can be located for regeneration.
func NewCreditInstallment(
	originalExpenseID string,
	description string,
	installmentValue float64,
	cardID string,
	purchaseDate time.Time,
	dueDate time.Time,
	installmentNumber int,
	totalInstallments int,
) *Expense {
	return &Expense{
		ID:                InstallmentID(originalExpenseID, installmentNumber),
		Description:       description,
		Value:             installmentValue,
		PaymentMethod:     PaymentMethodCredit,
		PurchaseDate:      &purchaseDate,
		DueDate:           &dueDate,
		CardID:            cardID,
		OriginalExpenseID: originalExpenseID,
		InstallmentNumber: installmentNumber,
		TotalInstallments: totalInstallments,
		Status:            ExpenseStatusPending,
		CreatedAt:         time.Now().UTC(),
	}
}

// InstallmentID derives the stored id of a single installment.
func InstallmentID(originalExpenseID string, installmentNumber int) string {
	return fmt.Sprintf("%s-%d", originalExpenseID, installmentNumber)
}

// IsDeleted reports whether the record has been soft-deleted.
func (e *Expense) IsDeleted() bool {
	return e.DeletedAt != nil
}

// IsExcluded reports whether the given month key is suppressed. Only
// meaningful for fixed expenses.
func (e *Expense) IsExcluded(monthKey string) bool {
	for _, key := range e.ExcludedMonths {
		if key == monthKey {
			return true
		}
	}
	return false
}

// Exclude adds a month key to the exclusion set if not already present.
func (e *Expense) Exclude(monthKey string) {
	if !e.IsExcluded(monthKey) {
		e.ExcludedMonths = append(e.ExcludedMonths, monthKey)
	}
}

// SoftDelete marks the expense inactive at the given instant.
func (e *Expense) SoftDelete(at time.Time) {
	e.Status = ExpenseStatusInactive
	e.DeletedAt = &at
}

// MarkPaid records the occurrence as paid at the given instant.
func (e *Expense) MarkPaid(at time.Time) {
	e.Status = ExpenseStatusPaid
	e.PaidAt = &at
}

// MarkPending reverts a paid occurrence to pending.
func (e *Expense) MarkPending() {
	e.Status = ExpenseStatusPending
	e.PaidAt = nil
}

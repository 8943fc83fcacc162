package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseDescriptionRequired is returned when an expense has an empty description.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")

	// ErrInvalidExpenseValue is returned when an expense value is zero, negative or not a number.
	ErrInvalidExpenseValue = errors.New("invalid expense value")

	// ErrInvalidPaymentMethod is returned when the payment method is not Debit, Fixed or Credit.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidDueDay is returned when a due day falls outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidInstallmentCount is returned when a credit purchase has fewer than one installment.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")

	// ErrExpenseNotFound is returned when an expense id is not present in the collection.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseInactive is returned when a paid/pending toggle targets a soft-deleted occurrence.
	ErrExpenseInactive = errors.New("expense is inactive")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseValue        ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPaymentMethod       ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidDueDay              ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidInstallmentCount    ExpenseErrorCode = "EXP-010005"
	ErrCodeExpenseNotFound            ExpenseErrorCode = "EXP-010006"
	ErrCodeExpenseInactive            ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

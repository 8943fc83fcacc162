// Package error defines domain-specific errors for the ledger core.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNameRequired is returned when an income has an empty name.
	ErrIncomeNameRequired = errors.New("income name is required")

	// ErrInvalidIncomeValue is returned when an income value is negative or not a number.
	ErrInvalidIncomeValue = errors.New("invalid income value")

	// ErrInvalidIncomeType is returned when the income type is not Fixed or OneTime.
	ErrInvalidIncomeType = errors.New("invalid income type")

	// ErrInvalidIncomeMonth is returned when a one-time income month is outside 0-11.
	ErrInvalidIncomeMonth = errors.New("invalid income month")

	// ErrInvalidIncomeYear is returned when a one-time income year is not plausible.
	ErrInvalidIncomeYear = errors.New("invalid income year")

	// ErrIncomeNotFound is returned when an income id is not present in the collection.
	ErrIncomeNotFound = errors.New("income not found")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeNameRequired IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeValue IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeType  IncomeErrorCode = "INC-010003"
	ErrCodeInvalidIncomeMonth IncomeErrorCode = "INC-010004"
	ErrCodeInvalidIncomeYear  IncomeErrorCode = "INC-010005"
	ErrCodeIncomeNotFound     IncomeErrorCode = "INC-010006"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package error

import "errors"

// Card domain errors.
var (
	// ErrCardAliasRequired is returned when a card has an empty alias.
	ErrCardAliasRequired = errors.New("card alias is required")

	// ErrInvalidCardDueDay is returned when a card due day falls outside 1-31.
	ErrInvalidCardDueDay = errors.New("card due day must be between 1 and 31")

	// ErrCardNotFound is returned when a referenced card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardInactive is returned when a credit purchase references a soft-deleted card.
	ErrCardInactive = errors.New("card is inactive")
)

// CardErrorCode defines error codes for card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCardAliasRequired CardErrorCode = "CRD-010001"
	ErrCodeInvalidCardDueDay CardErrorCode = "CRD-010002"
	ErrCodeCardNotFound      CardErrorCode = "CRD-010003"
	ErrCodeCardInactive      CardErrorCode = "CRD-010004"
)

// CardError represents a card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

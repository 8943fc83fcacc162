package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card is a stored credit card. Its due day anchors the billing cycle used to
// schedule credit installments.
type Card struct {
	ID            string       `json:"id"`
	Alias         string       `json:"alias"`
	DueDayOfMonth int          `json:"dueDayOfMonth"`
	Status        RecordStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	DeletedAt     *time.Time   `json:"deletedAt,omitempty"`
}

// NewCard creates an active card.
func NewCard(alias string, dueDayOfMonth int) *Card {
	return &Card{
		ID:            uuid.NewString(),
		Alias:         alias,
		DueDayOfMonth: dueDayOfMonth,
		Status:        RecordStatusActive,
		CreatedAt:     time.Now().UTC(),
	}
}

// IsActive reports whether the card is usable for new purchases.
func (c *Card) IsActive() bool {
	return c.Status == RecordStatusActive && c.DeletedAt == nil
}

// SoftDelete marks the card inactive at the given instant.
func (c *Card) SoftDelete(at time.Time) {
	c.Status = RecordStatusInactive
	c.DeletedAt = &at
}

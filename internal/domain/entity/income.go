// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IncomeType represents how an income recurs.
type IncomeType string

const (
	// IncomeTypeFixed recurs every month until soft-deleted or excluded.
	IncomeTypeFixed IncomeType = "Fixed"
	// IncomeTypeOneTime belongs to exactly one month/year.
	IncomeTypeOneTime IncomeType = "OneTime"
)

// RecordStatus is the soft-delete status shared by incomes and cards.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "active"
	RecordStatusInactive RecordStatus = "inactive"
)

// Income is a stored income template. Fixed incomes are expanded per month by
// the projection engine; one-time incomes carry their own month/year.
//
// Month is zero-based (0 = January) to match the persisted collection shape.
type Income struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Value          float64      `json:"value"`
	Type           IncomeType   `json:"type"`
	Month          *int         `json:"month,omitempty"`
	Year           *int         `json:"year,omitempty"`
	ExcludedMonths []string     `json:"excludedMonths,omitempty"`
	Status         RecordStatus `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	DeletedAt      *time.Time   `json:"deletedAt,omitempty"`
}

// NewFixedIncome creates an active fixed income template.
func NewFixedIncome(name string, value float64) *Income {
	return &Income{
		ID:        uuid.NewString(),
		Name:      name,
		Value:     value,
		Type:      IncomeTypeFixed,
		Status:    RecordStatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

// NewOneTimeIncome creates an active one-time income for the given zero-based
// month and year.
func NewOneTimeIncome(name string, value float64, month, year int) *Income {
	return &Income{
		ID:        uuid.NewString(),
		Name:      name,
		Value:     value,
		Type:      IncomeTypeOneTime,
		Month:     &month,
		Year:      &year,
		Status:    RecordStatusActive,
		CreatedAt: time.Now().UTC(),
	}
}

// IsDeleted reports whether the template has been soft-deleted.
func (i *Income) IsDeleted() bool {
	return i.DeletedAt != nil
}

// IsExcluded reports whether the given month key is suppressed for this
// template. Only meaningful for fixed incomes.
func (i *Income) IsExcluded(monthKey string) bool {
	for _, key := range i.ExcludedMonths {
		if key == monthKey {
			return true
		}
	}
	return false
}

// Exclude adds a month key to the exclusion set if not already present.
func (i *Income) Exclude(monthKey string) {
	if !i.IsExcluded(monthKey) {
		i.ExcludedMonths = append(i.ExcludedMonths, monthKey)
	}
}

// SoftDelete marks the income inactive at the given instant.
func (i *Income) SoftDelete(at time.Time) {
	i.Status = RecordStatusInactive
	i.DeletedAt = &at
}

package adapter

import (
	"context"
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// The record repositories are thin typed wrappers over the key-value store.
// Load returns an empty slice when the backing key is absent or unparsable;
// SaveAll overwrites the whole collection (last-writer-wins at collection
// granularity, no locking); Wipe removes the backing key permanently. All
// filtering happens in the projection engine after a full load - dataset
// sizes are personal-scale, so no querying is provided.

// IncomeRepository persists the incomes collection.
type IncomeRepository interface {
	Load(ctx context.Context) ([]*entity.Income, error)
	SaveAll(ctx context.Context, incomes []*entity.Income) error
	Append(ctx context.Context, income *entity.Income) error
	Wipe(ctx context.Context) error
}

// ExpenseRepository persists the expenses collection, including materialized
// credit installments.
type ExpenseRepository interface {
	Load(ctx context.Context) ([]*entity.Expense, error)
	SaveAll(ctx context.Context, expenses []*entity.Expense) error
	Append(ctx context.Context, expense *entity.Expense) error
	Wipe(ctx context.Context) error
}

// CardRepository persists the cards collection.
type CardRepository interface {
	Load(ctx context.Context) ([]*entity.Card, error)
	SaveAll(ctx context.Context, cards []*entity.Card) error
	Append(ctx context.Context, card *entity.Card) error
	Wipe(ctx context.Context) error
}

// UpdateMarker records the instant of the last mutation. Advisory only: a
// crash between a collection write and the marker write must be tolerated,
// and projection never depends on it.
type UpdateMarker interface {
	Touch(ctx context.Context, at time.Time) error
	Last(ctx context.Context) (*time.Time, error)
}

// Clock supplies the current instant so use cases stay testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock {
	return ClockFunc(func() time.Time { return time.Now().UTC() })
}

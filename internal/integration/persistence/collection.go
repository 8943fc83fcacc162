// Package persistence implements the record repositories over the key-value
// store.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
)

// Backing keys of the persisted collections.
const (
	keyIncomes    = "incomes"
	keyExpenses   = "expenses"
	keyCards      = "cards"
	keyLastUpdate = "lastUpdate"
)

// collection is a typed JSON array under a single key. Load never fails on a
// missing or corrupted payload: the app must keep working on damaged
// storage, so corruption degrades to an empty collection with a logged
// warning.
type collection[T any] struct {
	store adapter.KeyValueStore
	key   string
}

func (c collection[T]) load(ctx context.Context) ([]*T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.key, err)
	}
	if !ok || len(raw) == 0 {
		return []*T{}, nil
	}

	var records []*T
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("Discarding unparsable collection payload",
			"collection", c.key,
			"error", err,
		)
		return []*T{}, nil
	}
	return records, nil
}

func (c collection[T]) saveAll(ctx context.Context, records []*T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.key, err)
	}
	return nil
}

func (c collection[T]) append(ctx context.Context, record *T) error {
	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.saveAll(ctx, append(records, record))
}

func (c collection[T]) wipe(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to wipe collection %s: %w", c.key, err)
	}
	return nil
}

package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

// incomeRepository implements adapter.IncomeRepository.
type incomeRepository struct {
	collection[entity.Income]
}

// NewIncomeRepository creates the incomes repository over the given store.
func NewIncomeRepository(store adapter.KeyValueStore) adapter.IncomeRepository {
	return &incomeRepository{collection[entity.Income]{store: store, key: keyIncomes}}
}

func (r *incomeRepository) Load(ctx context.Context) ([]*entity.Income, error) {
	return r.load(ctx)
}

func (r *incomeRepository) SaveAll(ctx context.Context, incomes []*entity.Income) error {
	return r.saveAll(ctx, incomes)
}

func (r *incomeRepository) Append(ctx context.Context, income *entity.Income) error {
	return r.append(ctx, income)
}

func (r *incomeRepository) Wipe(ctx context.Context) error {
	return r.wipe(ctx)
}

// expenseRepository implements adapter.ExpenseRepository.
type expenseRepository struct {
	collection[entity.Expense]
}

// NewExpenseRepository creates the expenses repository over the given store.
func NewExpenseRepository(store adapter.KeyValueStore) adapter.ExpenseRepository {
	return &expenseRepository{collection[entity.Expense]{store: store, key: keyExpenses}}
}

func (r *expenseRepository) Load(ctx context.Context) ([]*entity.Expense, error) {
	return r.load(ctx)
}

func (r *expenseRepository) SaveAll(ctx context.Context, expenses []*entity.Expense) error {
	return r.saveAll(ctx, expenses)
}

func (r *expenseRepository) Append(ctx context.Context, expense *entity.Expense) error {
	return r.append(ctx, expense)
}

func (r *expenseRepository) Wipe(ctx context.Context) error {
	return r.wipe(ctx)
}

// cardRepository implements adapter.CardRepository.
type cardRepository struct {
	collection[entity.Card]
}

// NewCardRepository creates the cards repository over the given store.
func NewCardRepository(store adapter.KeyValueStore) adapter.CardRepository {
	return &cardRepository{collection[entity.Card]{store: store, key: keyCards}}
}

func (r *cardRepository) Load(ctx context.Context) ([]*entity.Card, error) {
	return r.load(ctx)
}

func (r *cardRepository) SaveAll(ctx context.Context, cards []*entity.Card) error {
	return r.saveAll(ctx, cards)
}

func (r *cardRepository) Append(ctx context.Context, card *entity.Card) error {
	return r.append(ctx, card)
}

func (r *cardRepository) Wipe(ctx context.Context) error {
	return r.wipe(ctx)
}

// updateMarker implements adapter.UpdateMarker as a single timestamp value.
type updateMarker struct {
	store adapter.KeyValueStore
}

// NewUpdateMarker creates the advisory last-update marker over the given
// store.
func NewUpdateMarker(store adapter.KeyValueStore) adapter.UpdateMarker {
	return &updateMarker{store: store}
}

func (m *updateMarker) Touch(ctx context.Context, at time.Time) error {
	raw, err := json.Marshal(at.UTC())
	if err != nil {
		return fmt.Errorf("failed to encode update marker: %w", err)
	}
	return m.store.Set(ctx, keyLastUpdate, raw)
}

func (m *updateMarker) Last(ctx context.Context) (*time.Time, error) {
	raw, ok, err := m.store.Get(ctx, keyLastUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to read update marker: %w", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var at time.Time
	if err := json.Unmarshal(raw, &at); err != nil {
		slog.Warn("Discarding unparsable update marker", "error", err)
		return nil, nil
	}
	return &at, nil
}

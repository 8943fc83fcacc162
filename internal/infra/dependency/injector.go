// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/ledger/config"
	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/application/usecase/card"
	"github.com/pocket-ledger/ledger/internal/application/usecase/expense"
	"github.com/pocket-ledger/ledger/internal/application/usecase/income"
	"github.com/pocket-ledger/ledger/internal/application/usecase/ledger"
	"github.com/pocket-ledger/ledger/internal/infra/db"
	"github.com/pocket-ledger/ledger/internal/integration/persistence"
	"github.com/pocket-ledger/ledger/internal/integration/persistence/model"
)

// Injector holds all application dependencies. The embedding UI layer drives
// the app exclusively through the use cases exposed here.
type Injector struct {
	Config *config.Config

	IncomeRepo  adapter.IncomeRepository
	ExpenseRepo adapter.ExpenseRepository
	CardRepo    adapter.CardRepository
	Marker      adapter.UpdateMarker

	CreateIncome *income.CreateIncomeUseCase
	UpdateIncome *income.UpdateIncomeUseCase
	DeleteIncome *income.DeleteIncomeUseCase

	CreateExpense *expense.CreateExpenseUseCase
	UpdateExpense *expense.UpdateExpenseUseCase
	DeleteExpense *expense.DeleteExpenseUseCase
	TogglePaid    *expense.TogglePaidUseCase

	CreateCard *card.CreateCardUseCase
	UpdateCard *card.UpdateCardUseCase
	DeleteCard *card.DeleteCardUseCase
	ListCards  *card.ListCardsUseCase

	ListMonths     *ledger.ListMonthsUseCase
	GetMonth       *ledger.GetMonthUseCase
	ClearMonth     *ledger.ClearMonthUseCase
	WipeCollection *ledger.WipeCollectionUseCase

	closers []func() error
}

// NewInjector opens the configured storage backend and wires all
// dependencies.
func NewInjector(cfg *config.Config) (*Injector, error) {
	store, closers, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	injector := NewInjectorWithStore(cfg, store, adapter.SystemClock())
	injector.closers = closers
	return injector, nil
}

// NewInjectorWithStore wires all dependencies over an already-open store and
// an explicit clock. Tests use this to substitute miniredis and frozen time.
func NewInjectorWithStore(cfg *config.Config, store adapter.KeyValueStore, clock adapter.Clock) *Injector {
	// Create repositories
	incomeRepo := persistence.NewIncomeRepository(store)
	expenseRepo := persistence.NewExpenseRepository(store)
	cardRepo := persistence.NewCardRepository(store)
	marker := persistence.NewUpdateMarker(store)

	return &Injector{
		Config: cfg,

		IncomeRepo:  incomeRepo,
		ExpenseRepo: expenseRepo,
		CardRepo:    cardRepo,
		Marker:      marker,

		CreateIncome: income.NewCreateIncomeUseCase(incomeRepo, marker, clock),
		UpdateIncome: income.NewUpdateIncomeUseCase(incomeRepo, marker, clock),
		DeleteIncome: income.NewDeleteIncomeUseCase(incomeRepo, marker, clock),

		CreateExpense: expense.NewCreateExpenseUseCase(expenseRepo, cardRepo, marker, clock),
		UpdateExpense: expense.NewUpdateExpenseUseCase(expenseRepo, cardRepo, marker, clock),
		DeleteExpense: expense.NewDeleteExpenseUseCase(expenseRepo, marker, clock),
		TogglePaid:    expense.NewTogglePaidUseCase(expenseRepo, marker, clock),

		CreateCard: card.NewCreateCardUseCase(cardRepo, marker, clock),
		UpdateCard: card.NewUpdateCardUseCase(cardRepo, marker, clock),
		DeleteCard: card.NewDeleteCardUseCase(cardRepo, marker, clock),
		ListCards:  card.NewListCardsUseCase(cardRepo),

		ListMonths:     ledger.NewListMonthsUseCase(incomeRepo, expenseRepo, clock),
		GetMonth:       ledger.NewGetMonthUseCase(incomeRepo, expenseRepo),
		ClearMonth:     ledger.NewClearMonthUseCase(incomeRepo, expenseRepo, marker, clock),
		WipeCollection: ledger.NewWipeCollectionUseCase(incomeRepo, expenseRepo, cardRepo, marker, clock),
	}
}

// Close releases the storage backend.
func (i *Injector) Close() error {
	var firstErr error
	for _, closer := range i.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openStore creates the key-value backend selected by configuration.
func openStore(cfg *config.Config) (adapter.KeyValueStore, []func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return persistence.NewMemoryStore(), nil, nil

	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		if cfg.Redis.DB != 0 {
			opts.DB = cfg.Redis.DB
		}
		client := redis.NewClient(opts)
		return persistence.NewRedisStore(client), []func() error{client.Close}, nil

	case config.StorageSqlite:
		database, err := db.NewSqliteConnection(&cfg.Sqlite)
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(&model.KVRecordModel{}); err != nil {
			if closeErr := database.Close(); closeErr != nil {
				slog.Error("Failed to close database after migration failure", "error", closeErr)
			}
			return nil, nil, err
		}
		return persistence.NewSqliteStore(database.DB()), []func() error{database.Close}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

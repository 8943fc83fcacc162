package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/application/usecase/projection"
	"github.com/pocket-ledger/ledger/internal/application/usecase/summary"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	"github.com/pocket-ledger/ledger/internal/integration/persistence"
)

type fixture struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	marker      adapter.UpdateMarker
	clock       adapter.Clock
	now         time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := persistence.NewMemoryStore()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	return &fixture{
		incomeRepo:  persistence.NewIncomeRepository(store),
		expenseRepo: persistence.NewExpenseRepository(store),
		cardRepo:    persistence.NewCardRepository(store),
		marker:      persistence.NewUpdateMarker(store),
		clock:       adapter.ClockFunc(func() time.Time { return now }),
		now:         now,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func (f *fixture) seedIncomes(t *testing.T, incomes ...*entity.Income) {
	t.Helper()
	if err := f.incomeRepo.SaveAll(context.Background(), incomes); err != nil {
		t.Fatalf("failed to seed incomes: %v", err)
	}
}

func (f *fixture) seedExpenses(t *testing.T, expenses ...*entity.Expense) {
	t.Helper()
	if err := f.expenseRepo.SaveAll(context.Background(), expenses); err != nil {
		t.Fatalf("failed to seed expenses: %v", err)
	}
}

func fixedIncome(id string, value float64, createdAt time.Time) *entity.Income {
	return &entity.Income{
		ID:        id,
		Name:      id,
		Value:     value,
		Type:      entity.IncomeTypeFixed,
		Status:    entity.RecordStatusActive,
		CreatedAt: createdAt,
	}
}

func fixedExpense(id string, value float64, dueDay int, createdAt time.Time) *entity.Expense {
	return &entity.Expense{
		ID:            id,
		Description:   id,
		Value:         value,
		PaymentMethod: entity.PaymentMethodFixed,
		DueDayOfMonth: dueDay,
		Status:        entity.ExpenseStatusPending,
		CreatedAt:     createdAt,
	}
}

func debitExpense(id string, value float64, purchase time.Time) *entity.Expense {
	due := purchase
	return &entity.Expense{
		ID:            id,
		Description:   id,
		Value:         value,
		PaymentMethod: entity.PaymentMethodDebit,
		PurchaseDate:  &purchase,
		DueDate:       &due,
		Status:        entity.ExpenseStatusPending,
		CreatedAt:     purchase,
	}
}

func creditExpense(id string, value float64, due time.Time) *entity.Expense {
	purchase := due.AddDate(0, -1, 0)
	return &entity.Expense{
		ID:                id,
		Description:       id,
		Value:             value,
		PaymentMethod:     entity.PaymentMethodCredit,
		PurchaseDate:      &purchase,
		DueDate:           &due,
		CardID:            "card-1",
		OriginalExpenseID: id,
		InstallmentNumber: 1,
		TotalInstallments: 1,
		Status:            entity.ExpenseStatusPending,
		CreatedAt:         purchase,
	}
}

func TestClearMonthUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("fixed templates are excluded, other months intact", func(t *testing.T) {
		f := newFixture(t)
		f.seedIncomes(t, fixedIncome("salary", 5000, date(2024, time.January, 1)))
		f.seedExpenses(t, fixedExpense("rent", 1200, 5, date(2024, time.January, 1)))

		uc := NewClearMonthUseCase(f.incomeRepo, f.expenseRepo, f.marker, f.clock)
		out, err := uc.Execute(ctx, ClearMonthInput{Month: date(2024, time.June, 1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ExcludedTemplates != 2 {
			t.Errorf("ExcludedTemplates = %d, want 2", out.ExcludedTemplates)
		}
		if out.InactivatedRecords != 0 {
			t.Errorf("InactivatedRecords = %d, want 0", out.InactivatedRecords)
		}

		incomes, _ := f.incomeRepo.Load(ctx)
		expenses, _ := f.expenseRepo.Load(ctx)
		if len(projection.IncomesForMonth(date(2024, time.June, 1), incomes, true)) != 0 {
			t.Error("June income still projected")
		}
		if len(projection.ExpensesForMonth(date(2024, time.June, 1), expenses, true)) != 0 {
			t.Error("June expense still projected")
		}
		for _, month := range []time.Time{date(2024, time.May, 1), date(2024, time.July, 1)} {
			if len(projection.IncomesForMonth(month, incomes, true)) != 1 {
				t.Errorf("%v income affected by clear", month)
			}
			if len(projection.ExpensesForMonth(month, expenses, true)) != 1 {
				t.Errorf("%v expense affected by clear", month)
			}
		}
	})

	t.Run("one-time and dated records in the month are soft-deleted", func(t *testing.T) {
		f := newFixture(t)
		f.seedIncomes(t,
			&entity.Income{
				ID: "refund", Name: "refund", Value: 320,
				Type:      entity.IncomeTypeOneTime,
				Month:     intPtr(5), Year: intPtr(2024), // June, zero-based
				Status:    entity.RecordStatusActive,
				CreatedAt: date(2024, time.May, 1),
			},
		)
		f.seedExpenses(t,
			debitExpense("market", 55.5, date(2024, time.June, 12)),
			creditExpense("tv-1", 100, date(2024, time.June, 10)),
			debitExpense("elsewhere", 10, date(2024, time.July, 2)),
		)

		uc := NewClearMonthUseCase(f.incomeRepo, f.expenseRepo, f.marker, f.clock)
		out, err := uc.Execute(ctx, ClearMonthInput{Month: date(2024, time.June, 1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.InactivatedRecords != 3 {
			t.Errorf("InactivatedRecords = %d, want 3", out.InactivatedRecords)
		}

		// The deletion instant is the month's last day, keeping earlier
		// months outside the aggregator's cutoff.
		expenses, _ := f.expenseRepo.Load(ctx)
		wantDeleted := date(2024, time.June, 30)
		for _, exp := range expenses {
			switch exp.ID {
			case "market", "tv-1":
				if exp.DeletedAt == nil || !exp.DeletedAt.Equal(wantDeleted) {
					t.Errorf("%s DeletedAt = %v, want %v", exp.ID, exp.DeletedAt, wantDeleted)
				}
			case "elsewhere":
				if exp.DeletedAt != nil {
					t.Errorf("record outside the month was deleted")
				}
			}
		}
	})

	t.Run("clearing twice is a no-op the second time", func(t *testing.T) {
		f := newFixture(t)
		f.seedExpenses(t, fixedExpense("rent", 1200, 5, date(2024, time.January, 1)))

		uc := NewClearMonthUseCase(f.incomeRepo, f.expenseRepo, f.marker, f.clock)
		if _, err := uc.Execute(ctx, ClearMonthInput{Month: date(2024, time.June, 1)}); err != nil {
			t.Fatalf("first clear failed: %v", err)
		}
		out, err := uc.Execute(ctx, ClearMonthInput{Month: date(2024, time.June, 1)})
		if err != nil {
			t.Fatalf("second clear failed: %v", err)
		}
		if out.ExcludedTemplates != 0 || out.InactivatedRecords != 0 {
			t.Errorf("second clear touched %d/%d records, want 0/0", out.ExcludedTemplates, out.InactivatedRecords)
		}

		expenses, _ := f.expenseRepo.Load(ctx)
		if len(expenses[0].ExcludedMonths) != 1 {
			t.Errorf("exclusion set grew to %d entries", len(expenses[0].ExcludedMonths))
		}
	})

	t.Run("cleared month totals drop to zero, earlier months keep theirs", func(t *testing.T) {
		f := newFixture(t)
		f.seedIncomes(t, fixedIncome("salary", 5000, date(2024, time.January, 1)))
		f.seedExpenses(t, debitExpense("market", 55.5, date(2024, time.June, 12)))

		uc := NewClearMonthUseCase(f.incomeRepo, f.expenseRepo, f.marker, f.clock)
		if _, err := uc.Execute(ctx, ClearMonthInput{Month: date(2024, time.June, 1)}); err != nil {
			t.Fatalf("clear failed: %v", err)
		}

		incomes, _ := f.incomeRepo.Load(ctx)
		expenses, _ := f.expenseRepo.Load(ctx)
		june := summary.ForMonth(date(2024, time.June, 1), incomes, expenses)
		if june.IncomeTotal != 0 || june.ExpenseTotal != 0 {
			t.Errorf("June totals = %v/%v, want 0/0", june.IncomeTotal, june.ExpenseTotal)
		}
		may := summary.ForMonth(date(2024, time.May, 1), incomes, expenses)
		if may.IncomeTotal != 5000 {
			t.Errorf("May income = %v, want 5000", may.IncomeTotal)
		}
	})
}

func TestWipeCollectionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("wipes one collection, others untouched", func(t *testing.T) {
		f := newFixture(t)
		f.seedIncomes(t, fixedIncome("salary", 5000, date(2024, time.January, 1)))
		f.seedExpenses(t, fixedExpense("rent", 1200, 5, date(2024, time.January, 1)))

		uc := NewWipeCollectionUseCase(f.incomeRepo, f.expenseRepo, f.cardRepo, f.marker, f.clock)
		out, err := uc.Execute(ctx, WipeCollectionInput{Collection: CollectionIncomes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}

		incomes, err := f.incomeRepo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(incomes) != 0 {
			t.Errorf("incomes not wiped: %d records", len(incomes))
		}
		expenses, _ := f.expenseRepo.Load(ctx)
		if len(expenses) != 1 {
			t.Errorf("expenses touched by income wipe: %d records", len(expenses))
		}
	})

	t.Run("unknown collection fails", func(t *testing.T) {
		f := newFixture(t)
		uc := NewWipeCollectionUseCase(f.incomeRepo, f.expenseRepo, f.cardRepo, f.marker, f.clock)
		if _, err := uc.Execute(ctx, WipeCollectionInput{Collection: "budgets"}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

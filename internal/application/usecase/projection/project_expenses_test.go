package projection

import (
	"testing"
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedExpense(id string, value float64, dueDay int, createdAt time.Time) *entity.Expense {
	return &entity.Expense{
		ID:            id,
		Description:   "recurring " + id,
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
		Description:   "debit " + id,
		Value:         value,
		PaymentMethod: entity.PaymentMethodDebit,
		PurchaseDate:  &purchase,
		DueDate:       &due,
		Status:        entity.ExpenseStatusPending,
		CreatedAt:     purchase,
	}
}

func creditInstallment(originalID string, number int, value float64, due time.Time) *entity.Expense {
	purchase := due.AddDate(0, -number, 0)
	return &entity.Expense{
		ID:                entity.InstallmentID(originalID, number),
		Description:       "credit " + originalID,
		Value:             value,
		PaymentMethod:     entity.PaymentMethodCredit,
		PurchaseDate:      &purchase,
		DueDate:           &due,
		CardID:            "card-1",
		OriginalExpenseID: originalID,
		InstallmentNumber: number,
		TotalInstallments: 3,
		Status:            entity.ExpenseStatusPending,
		CreatedAt:         purchase,
	}
}

func TestExpensesForMonth_FixedTemplates(t *testing.T) {
	created := date(2024, time.June, 1)
	template := fixedExpense("rent", 1200, 5, created)

	t.Run("not projected before creation month", func(t *testing.T) {
		got := ExpensesForMonth(date(2024, time.May, 1), []*entity.Expense{template}, true)
		if len(got) != 0 {
			t.Fatalf("expected no occurrences in May, got %d", len(got))
		}
	})

	t.Run("projected in creation month with clamped due day", func(t *testing.T) {
		got := ExpensesForMonth(date(2024, time.June, 1), []*entity.Expense{template}, true)
		if len(got) != 1 {
			t.Fatalf("expected one occurrence in June, got %d", len(got))
		}
		if want := date(2024, time.June, 5); !got[0].DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", got[0].DueDate, want)
		}
		if got[0].Value != 1200 {
			t.Errorf("value = %v, want 1200", got[0].Value)
		}
	})

	t.Run("projected in every later month", func(t *testing.T) {
		for _, month := range []time.Time{date(2024, time.July, 1), date(2025, time.January, 1)} {
			if got := ExpensesForMonth(month, []*entity.Expense{template}, true); len(got) != 1 {
				t.Errorf("expected one occurrence in %v, got %d", month, len(got))
			}
		}
	})

	t.Run("occurrence id is month-scoped and keeps the original id", func(t *testing.T) {
		got := ExpensesForMonth(date(2024, time.July, 1), []*entity.Expense{template}, true)
		if got[0].OriginalID != "rent" {
			t.Errorf("original id = %q, want %q", got[0].OriginalID, "rent")
		}
		// July is month index 6, zero-based.
		if want := "rent-2024-6"; got[0].ID != want {
			t.Errorf("occurrence id = %q, want %q", got[0].ID, want)
		}
	})

	t.Run("due day clamps in short months", func(t *testing.T) {
		clamped := fixedExpense("insurance", 80, 31, date(2023, time.December, 1))
		got := ExpensesForMonth(date(2024, time.February, 1), []*entity.Expense{clamped}, true)
		if len(got) != 1 {
			t.Fatalf("expected one occurrence, got %d", len(got))
		}
		if want := date(2024, time.February, 29); !got[0].DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", got[0].DueDate, want)
		}
	})

	t.Run("excluded month is skipped, neighbours unaffected", func(t *testing.T) {
		excluded := fixedExpense("gym", 50, 10, date(2024, time.January, 1))
		excluded.ExcludedMonths = []string{"04/2024"}

		if got := ExpensesForMonth(date(2024, time.April, 1), []*entity.Expense{excluded}, true); len(got) != 0 {
			t.Errorf("expected April to be excluded, got %d occurrences", len(got))
		}
		for _, month := range []time.Time{date(2024, time.March, 1), date(2024, time.May, 1)} {
			if got := ExpensesForMonth(month, []*entity.Expense{excluded}, true); len(got) != 1 {
				t.Errorf("expected %v unaffected, got %d occurrences", month, len(got))
			}
		}
	})
}

func TestExpensesForMonth_Visibility(t *testing.T) {
	deletedAt := date(2024, time.May, 20)

	t.Run("soft-deleted records are invisible regardless of activeOnly", func(t *testing.T) {
		deleted := fixedExpense("old", 10, 1, date(2024, time.January, 1))
		deleted.Status = entity.ExpenseStatusInactive
		deleted.DeletedAt = &deletedAt

		for _, activeOnly := range []bool{true, false} {
			got := ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{deleted}, activeOnly)
			if len(got) != 0 {
				t.Errorf("activeOnly=%v: expected invisibility, got %d occurrences", activeOnly, len(got))
			}
		}
	})

	t.Run("inactive without deletion timestamp honors activeOnly", func(t *testing.T) {
		inactive := debitExpense("groceries", 42, date(2024, time.March, 12))
		inactive.Status = entity.ExpenseStatusInactive

		if got := ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{inactive}, true); len(got) != 0 {
			t.Errorf("activeOnly: expected skip, got %d", len(got))
		}
		if got := ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{inactive}, false); len(got) != 1 {
			t.Errorf("include-inactive: expected occurrence, got %d", len(got))
		}
	})
}

func TestExpensesForMonth_DebitAndCredit(t *testing.T) {
	debit := debitExpense("market", 55.5, date(2024, time.March, 12))
	first := creditInstallment("tv", 1, 100, date(2024, time.March, 10))
	second := creditInstallment("tv", 2, 100, date(2024, time.April, 10))

	t.Run("included only in their own month", func(t *testing.T) {
		march := ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{debit, first, second}, true)
		if len(march) != 2 {
			t.Fatalf("expected 2 March occurrences, got %d", len(march))
		}
		april := ExpensesForMonth(date(2024, time.April, 1), []*entity.Expense{debit, first, second}, true)
		if len(april) != 1 {
			t.Fatalf("expected 1 April occurrence, got %d", len(april))
		}
		if april[0].ID != "tv-2" {
			t.Errorf("april occurrence id = %q, want %q", april[0].ID, "tv-2")
		}
	})

	t.Run("sorted by due date ascending", func(t *testing.T) {
		fixed := fixedExpense("rent", 1200, 5, date(2024, time.January, 1))
		got := ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{debit, first, fixed}, true)
		if len(got) != 3 {
			t.Fatalf("expected 3 occurrences, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].DueDate.Before(got[i-1].DueDate) {
				t.Errorf("occurrences out of order: %v before %v", got[i].DueDate, got[i-1].DueDate)
			}
		}
	})

	t.Run("idempotent over unchanged input", func(t *testing.T) {
		input := []*entity.Expense{debit, first, second}
		a := ExpensesForMonth(date(2024, time.March, 1), input, true)
		b := ExpensesForMonth(date(2024, time.March, 1), input, true)
		if len(a) != len(b) {
			t.Fatalf("projection not idempotent: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].ID != b[i].ID || !a[i].DueDate.Equal(b[i].DueDate) {
				t.Errorf("occurrence %d differs between runs", i)
			}
		}
	})

	t.Run("input templates are not mutated", func(t *testing.T) {
		before := *first
		_ = ExpensesForMonth(date(2024, time.March, 1), []*entity.Expense{first}, true)
		if first.ID != before.ID || first.Status != before.Status {
			t.Error("projection mutated its input")
		}
	})
}

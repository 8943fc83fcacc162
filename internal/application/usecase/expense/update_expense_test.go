package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

func TestUpdateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("debit edit replaces in place and preserves timestamps", func(t *testing.T) {
		f := newFixture(t)
		create := NewCreateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)
		created, err := create.Execute(ctx, CreateExpenseInput{
			Description:   "groceries",
			Value:         55.5,
			PaymentMethod: entity.PaymentMethodDebit,
			PurchaseDate:  time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		target := created.Expenses[0]

		update := NewUpdateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)
		out, err := update.Execute(ctx, UpdateExpenseInput{
			ID:            target.ID,
			Description:   "weekly groceries",
			Value:         62,
			PaymentMethod: entity.PaymentMethodDebit,
			PurchaseDate:  time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.InsertedAsNew {
			t.Error("expected an in-place replacement")
		}
		got := out.Expenses[0]
		if got.ID != target.ID {
			t.Errorf("id changed: %q -> %q", target.ID, got.ID)
		}
		if got.Description != "weekly groceries" || got.Value != 62 {
			t.Errorf("edit not applied: %q %v", got.Description, got.Value)
		}
		if !got.CreatedAt.Equal(target.CreatedAt) {
			t.Error("creation timestamp must survive edits")
		}

		stored, _ := f.expenseRepo.Load(ctx)
		if len(stored) != 1 {
			t.Errorf("stored %d records, want 1", len(stored))
		}
	})

	t.Run("missing target is inserted as a new record with a warning flag", func(t *testing.T) {
		f := newFixture(t)
		update := NewUpdateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)

		out, err := update.Execute(ctx, UpdateExpenseInput{
			ID:            "vanished",
			Description:   "orphan edit",
			Value:         10,
			PaymentMethod: entity.PaymentMethodDebit,
			PurchaseDate:  f.now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.InsertedAsNew {
			t.Error("expected InsertedAsNew")
		}
		if out.Expenses[0].ID == "vanished" {
			t.Error("inserted record must carry a fresh id")
		}

		stored, _ := f.expenseRepo.Load(ctx)
		if len(stored) != 1 {
			t.Errorf("stored %d records, want 1", len(stored))
		}
	})

	t.Run("credit edit regenerates the whole installment set", func(t *testing.T) {
		f := newFixture(t)
		f.addCard(t, activeCard("card-1", 10))
		create := NewCreateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)
		created, err := create.Execute(ctx, CreateExpenseInput{
			Description:   "tv",
			Value:         100,
			PaymentMethod: entity.PaymentMethodCredit,
			PurchaseDate:  time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC),
			CardID:        "card-1",
			Installments:  3,
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		originalID := created.Expenses[0].OriginalExpenseID

		// Target the second installment's id; the edit resolves the whole set.
		update := NewUpdateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)
		out, err := update.Execute(ctx, UpdateExpenseInput{
			ID:            created.Expenses[1].ID,
			Description:   "bigger tv",
			Value:         240,
			PaymentMethod: entity.PaymentMethodCredit,
			PurchaseDate:  time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC),
			CardID:        "card-1",
			Installments:  4,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.InsertedAsNew {
			t.Error("expected regeneration under the existing purchase id")
		}
		if len(out.Expenses) != 4 {
			t.Fatalf("expected 4 installments, got %d", len(out.Expenses))
		}
		for i, inst := range out.Expenses {
			if inst.OriginalExpenseID != originalID {
				t.Errorf("installment %d lost the purchase id", i+1)
			}
			if inst.Value != 60 {
				t.Errorf("installment %d value = %v, want 60", i+1, inst.Value)
			}
		}

		stored, _ := f.expenseRepo.Load(ctx)
		if len(stored) != 4 {
			t.Errorf("stored %d records, want 4 (old set removed)", len(stored))
		}
	})

	t.Run("credit edit with unknown target regenerates under a fresh id", func(t *testing.T) {
		f := newFixture(t)
		f.addCard(t, activeCard("card-1", 10))
		update := NewUpdateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)

		out, err := update.Execute(ctx, UpdateExpenseInput{
			ID:            "vanished",
			Description:   "tv",
			Value:         100,
			PaymentMethod: entity.PaymentMethodCredit,
			PurchaseDate:  f.now,
			CardID:        "card-1",
			Installments:  2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.InsertedAsNew {
			t.Error("expected InsertedAsNew for a vanished purchase")
		}
		if len(out.Expenses) != 2 {
			t.Errorf("expected 2 installments, got %d", len(out.Expenses))
		}
	})

	t.Run("credit edit against an inactive card is rejected", func(t *testing.T) {
		f := newFixture(t)
		card := activeCard("card-1", 10)
		card.SoftDelete(f.now)
		f.addCard(t, card)
		update := NewUpdateExpenseUseCase(f.expenseRepo, f.cardRepo, f.marker, f.clock)

		_, err := update.Execute(ctx, UpdateExpenseInput{
			ID:            "any",
			Description:   "tv",
			Value:         100,
			PaymentMethod: entity.PaymentMethodCredit,
			PurchaseDate:  f.now,
			CardID:        "card-1",
			Installments:  2,
		})
		if !errors.Is(err, domainerror.ErrCardInactive) {
			t.Fatalf("error = %v, want ErrCardInactive", err)
		}
	})
}

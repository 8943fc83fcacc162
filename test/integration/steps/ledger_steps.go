package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/usecase/card"
	"github.com/pocket-ledger/ledger/internal/application/usecase/expense"
	"github.com/pocket-ledger/ledger/internal/application/usecase/income"
	"github.com/pocket-ledger/ledger/internal/application/usecase/ledger"
	"github.com/pocket-ledger/ledger/internal/application/usecase/summary"
	"github.com/pocket-ledger/ledger/internal/domain/calendar"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
)

// parseMonthKey turns a "MM/YYYY" key into the first day of that month.
func parseMonthKey(key string) (time.Time, error) {
	parsed, err := time.Parse("01/2006", key)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad month key %q: %w", key, err)
	}
	return parsed, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", value, err)
	}
	return parsed, nil
}

func parseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", value, err)
	}
	return amount, nil
}

// errorCode extracts the domain error code regardless of category.
func errorCode(err error) string {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		return string(incomeErr.Code)
	}
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		return string(expenseErr.Code)
	}
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		return string(cardErr.Code)
	}
	return ""
}

func (t *testContext) findIncomeByName(name string) (*entity.Income, error) {
	incomes, err := t.injector.IncomeRepo.Load(context.Background())
	if err != nil {
		return nil, err
	}
	for _, inc := range incomes {
		if inc.Name == name {
			return inc, nil
		}
	}
	return nil, fmt.Errorf("no income named %q", name)
}

func (t *testContext) findExpensesByDescription(description string) ([]*entity.Expense, error) {
	expenses, err := t.injector.ExpenseRepo.Load(context.Background())
	if err != nil {
		return nil, err
	}
	var matched []*entity.Expense
	for _, exp := range expenses {
		if exp.Description == description {
			matched = append(matched, exp)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("no expense described %q", description)
	}
	return matched, nil
}

func (t *testContext) findCardByAlias(alias string) (*entity.Card, error) {
	cards, err := t.injector.CardRepo.Load(context.Background())
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		if c.Alias == alias {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no card aliased %q", alias)
}

// Background steps

func (t *testContext) anEmptyLedger() error {
	// The Before hook already flushed the store.
	return nil
}

func (t *testContext) todayIs(date string) error {
	now, err := parseDate(date)
	if err != nil {
		return err
	}
	t.clock.Set(now.Add(12 * time.Hour))
	return nil
}

// Income steps

func (t *testContext) iCreateAFixedIncome(name, amount string) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.CreateIncome.Execute(context.Background(), income.CreateIncomeInput{
		Name:  name,
		Value: value,
		Type:  entity.IncomeTypeFixed,
	})
	return nil
}

func (t *testContext) iCreateAOneTimeIncome(name, amount, monthKey string) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	month, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}
	zeroBased := int(month.Month()) - 1
	year := month.Year()
	_, t.lastErr = t.injector.CreateIncome.Execute(context.Background(), income.CreateIncomeInput{
		Name:  name,
		Value: value,
		Type:  entity.IncomeTypeOneTime,
		Month: &zeroBased,
		Year:  &year,
	})
	return nil
}

func (t *testContext) iDeleteTheIncome(name string) error {
	target, err := t.findIncomeByName(name)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.DeleteIncome.Execute(context.Background(), income.DeleteIncomeInput{IncomeID: target.ID})
	return nil
}

func (t *testContext) iRenameTheIncome(name, newName string) error {
	target, err := t.findIncomeByName(name)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.UpdateIncome.Execute(context.Background(), income.UpdateIncomeInput{
		ID:    target.ID,
		Name:  newName,
		Value: target.Value,
		Type:  target.Type,
		Month: target.Month,
		Year:  target.Year,
	})
	return nil
}

// Card steps

func (t *testContext) aCardWithDueDay(alias string, dueDay int) error {
	_, err := t.injector.CreateCard.Execute(context.Background(), card.CreateCardInput{
		Alias:         alias,
		DueDayOfMonth: dueDay,
	})
	return err
}

func (t *testContext) iDeleteTheCard(alias string) error {
	target, err := t.findCardByAlias(alias)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.DeleteCard.Execute(context.Background(), card.DeleteCardInput{CardID: target.ID})
	return nil
}

// Expense steps

func (t *testContext) iCreateADebitExpense(description, amount, purchaseDate string) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	purchase, err := parseDate(purchaseDate)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.CreateExpense.Execute(context.Background(), expense.CreateExpenseInput{
		Description:   description,
		Value:         value,
		PaymentMethod: entity.PaymentMethodDebit,
		PurchaseDate:  purchase,
	})
	return nil
}

func (t *testContext) iCreateAFixedExpense(description, amount string, dueDay int) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.CreateExpense.Execute(context.Background(), expense.CreateExpenseInput{
		Description:   description,
		Value:         value,
		PaymentMethod: entity.PaymentMethodFixed,
		DueDayOfMonth: dueDay,
	})
	return nil
}

func (t *testContext) iCreateACreditExpense(description, amount, purchaseDate, cardAlias string, installments int) error {
	value, err := parseAmount(amount)
	if err != nil {
		return err
	}
	purchase, err := parseDate(purchaseDate)
	if err != nil {
		return err
	}
	cardID := cardAlias
	if c, err := t.findCardByAlias(cardAlias); err == nil {
		cardID = c.ID
	}
	_, t.lastErr = t.injector.CreateExpense.Execute(context.Background(), expense.CreateExpenseInput{
		Description:   description,
		Value:         value,
		PaymentMethod: entity.PaymentMethodCredit,
		PurchaseDate:  purchase,
		CardID:        cardID,
		Installments:  installments,
	})
	return nil
}

func (t *testContext) iToggleTheExpense(description string) error {
	matched, err := t.findExpensesByDescription(description)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.TogglePaid.Execute(context.Background(), expense.TogglePaidInput{ExpenseID: matched[0].ID})
	return nil
}

func (t *testContext) iDeleteTheExpense(description string) error {
	matched, err := t.findExpensesByDescription(description)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.DeleteExpense.Execute(context.Background(), expense.DeleteExpenseInput{ExpenseID: matched[0].ID})
	return nil
}

func (t *testContext) iDeleteInstallmentOf(installmentNumber int, description string) error {
	matched, err := t.findExpensesByDescription(description)
	if err != nil {
		return err
	}
	for _, exp := range matched {
		if exp.InstallmentNumber == installmentNumber {
			_, t.lastErr = t.injector.DeleteExpense.Execute(context.Background(), expense.DeleteExpenseInput{ExpenseID: exp.ID})
			return nil
		}
	}
	return fmt.Errorf("no installment %d of %q", installmentNumber, description)
}

// Month steps

func (t *testContext) iClearTheMonth(monthKey string) error {
	month, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}
	_, t.lastErr = t.injector.ClearMonth.Execute(context.Background(), ledger.ClearMonthInput{Month: month})
	return nil
}

func (t *testContext) iWipeTheCollection(name string) error {
	_, t.lastErr = t.injector.WipeCollection.Execute(context.Background(), ledger.WipeCollectionInput{
		Collection: ledger.Collection(name),
	})
	return nil
}

func (t *testContext) iListTheVisibleMonths() error {
	out, err := t.injector.ListMonths.Execute(context.Background(), ledger.ListMonthsInput{})
	if err != nil {
		t.lastErr = err
		return nil
	}
	t.lastMonths = t.lastMonths[:0]
	for _, entry := range out.Months {
		t.lastMonths = append(t.lastMonths, entry.Month)
	}
	return nil
}

// Assertion steps

func (t *testContext) theOperationShouldFailWithCode(code string) error {
	if t.lastErr == nil {
		return fmt.Errorf("expected failure %s, operation succeeded", code)
	}
	if got := errorCode(t.lastErr); got != code {
		return fmt.Errorf("error code = %q, want %q (error: %v)", got, code, t.lastErr)
	}
	return nil
}

func (t *testContext) theOperationShouldSucceed() error {
	if t.lastErr != nil {
		return fmt.Errorf("operation failed: %w", t.lastErr)
	}
	return nil
}

func (t *testContext) monthView(monthKey string, includeInactive bool) (*ledger.GetMonthOutput, error) {
	month, err := parseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}
	return t.injector.GetMonth.Execute(context.Background(), ledger.GetMonthInput{
		Month:           month,
		IncludeInactive: includeInactive,
	})
}

func (t *testContext) theMonthShouldShowIncomeTotal(monthKey, total string) error {
	view, err := t.monthView(monthKey, false)
	if err != nil {
		return err
	}
	if got := summary.FormatAmount(view.Summary.IncomeTotal); got != total {
		return fmt.Errorf("income total of %s = %s, want %s", monthKey, got, total)
	}
	return nil
}

func (t *testContext) theMonthShouldShowExpenseTotal(monthKey, total string) error {
	view, err := t.monthView(monthKey, false)
	if err != nil {
		return err
	}
	if got := summary.FormatAmount(view.Summary.ExpenseTotal); got != total {
		return fmt.Errorf("expense total of %s = %s, want %s", monthKey, got, total)
	}
	return nil
}

func (t *testContext) theMonthShouldListExpenseOccurrences(monthKey string, count int) error {
	view, err := t.monthView(monthKey, false)
	if err != nil {
		return err
	}
	if len(view.Expenses) != count {
		return fmt.Errorf("%s lists %d expense occurrences, want %d", monthKey, len(view.Expenses), count)
	}
	return nil
}

func (t *testContext) theMonthShouldListIncomeOccurrences(monthKey string, count int) error {
	view, err := t.monthView(monthKey, false)
	if err != nil {
		return err
	}
	if len(view.Incomes) != count {
		return fmt.Errorf("%s lists %d income occurrences, want %d", monthKey, len(view.Incomes), count)
	}
	return nil
}

func (t *testContext) theExpenseShouldBeDueOn(description, monthKey, dueDate string) error {
	view, err := t.monthView(monthKey, false)
	if err != nil {
		return err
	}
	due, err := parseDate(dueDate)
	if err != nil {
		return err
	}
	for _, occ := range view.Expenses {
		if occ.Description != description {
			continue
		}
		if !occ.DueDate.Equal(due) {
			return fmt.Errorf("%q in %s due %v, want %v", description, monthKey, occ.DueDate, due)
		}
		return nil
	}
	return fmt.Errorf("%q not projected in %s", description, monthKey)
}

func (t *testContext) theExpenseShouldHaveStatus(description, status string) error {
	matched, err := t.findExpensesByDescription(description)
	if err != nil {
		return err
	}
	if got := string(matched[0].Status); got != status {
		return fmt.Errorf("%q status = %s, want %s", description, got, status)
	}
	return nil
}

func (t *testContext) theVisibleMonthsShouldInclude(monthKey string) error {
	month, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}
	for _, m := range t.lastMonths {
		if calendar.SameMonth(m, month) {
			return nil
		}
	}
	return fmt.Errorf("%s not in the visible months", monthKey)
}

func (t *testContext) theVisibleMonthsShouldNotInclude(monthKey string) error {
	month, err := parseMonthKey(monthKey)
	if err != nil {
		return err
	}
	for _, m := range t.lastMonths {
		if calendar.SameMonth(m, month) {
			return fmt.Errorf("%s unexpectedly in the visible months", monthKey)
		}
	}
	return nil
}

func (t *testContext) thereShouldBeStoredExpenseRecords(count int) error {
	expenses, err := t.injector.ExpenseRepo.Load(context.Background())
	if err != nil {
		return err
	}
	if len(expenses) != count {
		return fmt.Errorf("stored %d expense records, want %d", len(expenses), count)
	}
	return nil
}

func (t *testContext) theCardListShouldContainCards(count int) error {
	out, err := t.injector.ListCards.Execute(context.Background(), card.ListCardsInput{})
	if err != nil {
		return err
	}
	if len(out.Cards) != count {
		return fmt.Errorf("card list has %d cards, want %d", len(out.Cards), count)
	}
	return nil
}

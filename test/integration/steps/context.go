// Package steps provides step definitions for the BDD integration suite.
// Scenarios drive the ledger through its use cases over a miniredis-backed
// store, the same seam the embedding UI uses.
package steps

import (
	"context"
	"time"

	"github.com/cucumber/godog"

	"github.com/pocket-ledger/ledger/config"
	"github.com/pocket-ledger/ledger/internal/infra/dependency"
	"github.com/pocket-ledger/ledger/internal/integration/persistence"
	"github.com/pocket-ledger/ledger/test/integration/mock"
)

// testContext holds the per-scenario state.
type testContext struct {
	injector *dependency.Injector
	clock    *mock.Time

	// Last operation result, for error assertion steps.
	lastErr error

	// Views captured by When steps for Then steps to inspect.
	lastMonths []time.Time
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		test.clock = mock.NewTime()
		test.lastErr = nil
		test.lastMonths = nil

		cfg := config.Load()
		cfg.Storage.Backend = config.StorageRedis
		store := persistence.NewRedisStore(mock.NewRedis())
		test.injector = dependency.NewInjectorWithStore(cfg, store, test.clock)
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^an empty ledger$`, test.anEmptyLedger)
	ctx.Step(`^today is "([^"]*)"$`, test.todayIs)

	// Income steps
	ctx.Step(`^I create a fixed income "([^"]*)" of ([0-9.]+)$`, test.iCreateAFixedIncome)
	ctx.Step(`^I create a one-time income "([^"]*)" of ([0-9.]+) for "([^"]*)"$`, test.iCreateAOneTimeIncome)
	ctx.Step(`^I delete the income "([^"]*)"$`, test.iDeleteTheIncome)
	ctx.Step(`^I rename the income "([^"]*)" to "([^"]*)"$`, test.iRenameTheIncome)

	// Card steps
	ctx.Step(`^a card "([^"]*)" with due day (\d+)$`, test.aCardWithDueDay)
	ctx.Step(`^I delete the card "([^"]*)"$`, test.iDeleteTheCard)

	// Expense steps
	ctx.Step(`^I create a debit expense "([^"]*)" of ([0-9.]+) on "([^"]*)"$`, test.iCreateADebitExpense)
	ctx.Step(`^I create a fixed expense "([^"]*)" of ([0-9.]+) due on day (\d+)$`, test.iCreateAFixedExpense)
	ctx.Step(`^I create a credit expense "([^"]*)" of ([0-9.]+) on "([^"]*)" with card "([^"]*)" in (\d+) installments$`, test.iCreateACreditExpense)
	ctx.Step(`^I toggle the expense "([^"]*)"$`, test.iToggleTheExpense)
	ctx.Step(`^I delete the expense "([^"]*)"$`, test.iDeleteTheExpense)
	ctx.Step(`^I delete installment (\d+) of "([^"]*)"$`, test.iDeleteInstallmentOf)

	// Month steps
	ctx.Step(`^I clear the month "([^"]*)"$`, test.iClearTheMonth)
	ctx.Step(`^I wipe the "([^"]*)" collection$`, test.iWipeTheCollection)
	ctx.Step(`^I list the visible months$`, test.iListTheVisibleMonths)

	// Assertion steps
	ctx.Step(`^the operation should fail with code "([^"]*)"$`, test.theOperationShouldFailWithCode)
	ctx.Step(`^the operation should succeed$`, test.theOperationShouldSucceed)
	ctx.Step(`^the month "([^"]*)" should show income total "([^"]*)"$`, test.theMonthShouldShowIncomeTotal)
	ctx.Step(`^the month "([^"]*)" should show expense total "([^"]*)"$`, test.theMonthShouldShowExpenseTotal)
	ctx.Step(`^the month "([^"]*)" should list (\d+) expense occurrences?$`, test.theMonthShouldListExpenseOccurrences)
	ctx.Step(`^the month "([^"]*)" should list (\d+) income occurrences?$`, test.theMonthShouldListIncomeOccurrences)
	ctx.Step(`^the expense "([^"]*)" in "([^"]*)" should be due on "([^"]*)"$`, test.theExpenseShouldBeDueOn)
	ctx.Step(`^the expense "([^"]*)" should be (pending|paid)$`, test.theExpenseShouldHaveStatus)
	ctx.Step(`^the visible months should include "([^"]*)"$`, test.theVisibleMonthsShouldInclude)
	ctx.Step(`^the visible months should not include "([^"]*)"$`, test.theVisibleMonthsShouldNotInclude)
	ctx.Step(`^there should be (\d+) stored expense records$`, test.thereShouldBeStoredExpenseRecords)
	ctx.Step(`^the card list should contain (\d+) cards?$`, test.theCardListShouldContainCards)
}

package entity

import "time"

// IncomeOccurrence is an ephemeral month-specific instance of an income
// template produced by the projection engine. Fixed templates synthesize one
// occurrence per projected month with a derived id; one-time incomes pass
// through with their stored id. Never persisted.
type IncomeOccurrence struct {
	Income
	// OriginalID refers back to the stored template.
	OriginalID string `json:"originalId"`
	// DueDate is the resolved date of this occurrence within its month.
	DueDate time.Time `json:"dueDate"`
}

// ExpenseOccurrence is an ephemeral month-specific instance of an expense
// record. For fixed templates the id is suffixed with the target year/month;
// debit and credit records pass through verbatim. Never persisted.
//
// DueDate shadows the template's optional pointer with the resolved date.
type ExpenseOccurrence struct {
	Expense
	// OriginalID refers back to the stored record.
	OriginalID string `json:"originalId"`
	// DueDate is the resolved due date of this occurrence.
	DueDate time.Time `json:"dueDate"`
}

package ledger

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Totals is an income/expense summary over some set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Count   int64
}

// Net is income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Add accumulates one transaction. Amounts are magnitudes; the sign comes
// from the type alone.
func (t Totals) Add(transactionType TransactionType, amount decimal.Decimal) Totals {
	switch transactionType {
	case TransactionTypeIncome:
		t.Income = t.Income.Add(amount)
	case TransactionTypeExpense:
		t.Expense = t.Expense.Add(amount)
	}
	t.Count++
	return t
}

// Merge adds other into t.
func (t Totals) Merge(other Totals) Totals {
	return Totals{
		Income:  t.Income.Add(other.Income),
		Expense: t.Expense.Add(other.Expense),
		Count:   t.Count + other.Count,
	}
}

// RecomputeBalance derives an account's current balance from its opening
// balance and the totals of every transaction posted to it. It is a full
// recompute, so running it again over the same history gives the same value.
func RecomputeBalance(opening decimal.Decimal, history Totals) decimal.Decimal {
	return opening.Add(history.Income).Sub(history.Expense)
}

package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// PeriodSummary is the income and expense over one date range.
type PeriodSummary struct {
	Range  ledger.DateRange
	Totals ledger.Totals
}

type AccountBalance struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Type           AccountType
	CurrentBalance decimal.Decimal
	CreditLimit    decimal.NullDecimal
}

// BalanceSummary is the balance position over the active accounts.
type BalanceSummary struct {
	TotalBalance decimal.Decimal
	ByType       map[AccountType]decimal.Decimal
	Accounts     []AccountBalance
}

// CategoryShare is one category's part of a total. Percentage is of the sum
// over all listed categories.
type CategoryShare struct {
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Count        int64
	Percentage   decimal.Decimal
}

type AccountActivity struct {
	AccountID   uuid.UUID
	AccountName string
	Totals      ledger.Totals
}

// TrendPoint is the income and expense of one day or month.
type TrendPoint struct {
	Period time.Time
	Totals ledger.Totals
}

// Dashboard holds everything the dashboard page renders.
type Dashboard struct {
	Balance              BalanceSummary
	Today                PeriodSummary
	Week                 PeriodSummary
	Month                PeriodSummary
	RecentTransactions   []Transaction
	TopExpenseCategories []CategoryShare
	Budgets              []Budget
}

// Analytics holds the chart series of the analytics page.
type Analytics struct {
	MonthlyTrend      []TrendPoint
	DailyTrend        []TrendPoint
	ExpenseByCategory []CategoryShare
	IncomeByCategory  []CategoryShare
	AccountActivity   []AccountActivity
}

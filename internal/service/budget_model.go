package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Budget represents a budget with its spending progress.
type Budget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Name         string
	Amount       decimal.Decimal
	PeriodType   ledger.PeriodType
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
	Notes        string
	Progress     ledger.Progress
	// IsCurrent reports whether today falls inside the budget's range.
	IsCurrent bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetInput is the writable part of a budget. EndDate may be left nil for
// monthly and yearly budgets; it is derived from StartDate.
type BudgetInput struct {
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	PeriodType ledger.PeriodType
	StartDate  time.Time
	EndDate    *time.Time
	IsActive   bool
	Notes      string
}

type BudgetQuery struct {
	CategoryID  *uuid.UUID
	ActiveOnly  bool
	CurrentOnly bool
}

// BudgetDetail is a budget with the expense transactions counted against it.
type BudgetDetail struct {
	Budget
	Transactions []Transaction
}

func budgetFromStorage(row *sqlconfig.Budget, spent decimal.Decimal, today time.Time) Budget {
	return Budget{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Name:         row.Name,
		Amount:       row.Amount,
		PeriodType:   ledger.PeriodType(row.PeriodType),
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		IsActive:     row.IsActive,
		Notes:        row.Notes,
		Progress:     ledger.BudgetProgress(row.Amount, spent),
		IsCurrent:    !today.Before(ledger.Day(row.StartDate)) && !today.After(ledger.Day(row.EndDate)),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	BudgetStatusSuccess BudgetStatus = "success"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusDanger  BudgetStatus = "danger"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// Progress is the spend position of a budget.
type Progress struct {
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Overspent  decimal.Decimal
	Percentage decimal.Decimal
	Status     BudgetStatus
}

// BudgetProgress compares spent against the budget cap. Percentage is rounded
// to one decimal place and capped at 100; spend past the cap shows up in
// Overspent instead.
func BudgetProgress(amount, spent decimal.Decimal) Progress {
	p := Progress{
		Spent:      spent,
		Remaining:  decimal.Max(decimal.Zero, amount.Sub(spent)),
		Overspent:  decimal.Max(decimal.Zero, spent.Sub(amount)),
		Percentage: decimal.Zero,
	}

	if amount.GreaterThan(decimal.Zero) {
		p.Percentage = decimal.Min(hundred, spent.Div(amount).Mul(hundred).Round(1))
		// Refunds can't drive a budget below zero usage.
		p.Percentage = decimal.Max(decimal.Zero, p.Percentage)
	}

	switch {
	case p.Percentage.GreaterThanOrEqual(hundred):
		p.Status = BudgetStatusDanger
	case p.Percentage.GreaterThanOrEqual(warningThreshold):
		p.Status = BudgetStatusWarning
	default:
		p.Status = BudgetStatusSuccess
	}

	return p
}

// Overlaps reports whether the inclusive date ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Containment is a special case.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FirstOverlap returns the index of the first range in existing that overlaps
// candidate, or -1.
func FirstOverlap(candidate DateRange, existing []DateRange) int {
	for i, r := range existing {
		if Overlaps(candidate.Start, candidate.End, r.Start, r.End) {
			return i
		}
	}
	return -1
}

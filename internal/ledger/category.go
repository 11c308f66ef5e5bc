package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryNode is the slice of a category needed to aggregate it.
type CategoryNode struct {
	ID       uuid.UUID
	ParentID uuid.NullUUID
}

func (n CategoryNode) IsTopLevel() bool {
	return !n.ParentID.Valid
}

// CategoryTotal is the amount and number of transactions attributed to a
// category. Amount sums magnitudes regardless of transaction type.
type CategoryTotal struct {
	Amount decimal.Decimal
	Count  int64
}

func (c CategoryTotal) Merge(other CategoryTotal) CategoryTotal {
	return CategoryTotal{
		Amount: c.Amount.Add(other.Amount),
		Count:  c.Count + other.Count,
	}
}

// AggregateCategoryIDs returns the category ids whose transactions count
// toward category: a top-level category covers itself and its direct
// children, a child category covers only itself. Deeper levels are not walked.
func AggregateCategoryIDs(category CategoryNode, children []CategoryNode) []uuid.UUID {
	ids := []uuid.UUID{category.ID}
	if !category.IsTopLevel() {
		return ids
	}
	for _, child := range children {
		if child.ParentID.Valid && child.ParentID.UUID == category.ID {
			ids = append(ids, child.ID)
		}
	}
	return ids
}

// RollUpCategoryTotals turns per-category direct totals into aggregate totals:
// every top-level category gets its own total plus those of its direct
// children. Categories missing from direct count as zero.
func RollUpCategoryTotals(categories []CategoryNode, direct map[uuid.UUID]CategoryTotal) map[uuid.UUID]CategoryTotal {
	rolled := make(map[uuid.UUID]CategoryTotal, len(categories))
	for _, c := range categories {
		rolled[c.ID] = zeroTotal().Merge(direct[c.ID])
	}

	for _, c := range categories {
		if c.IsTopLevel() {
			continue
		}
		parentID := c.ParentID.UUID
		if parent, ok := rolled[parentID]; ok {
			rolled[parentID] = parent.Merge(direct[c.ID])
		}
	}

	return rolled
}

func zeroTotal() CategoryTotal {
	return CategoryTotal{Amount: decimal.Zero}
}

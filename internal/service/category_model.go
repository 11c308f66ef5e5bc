package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Category represents a category in the service layer. TotalAmount and
// TransactionCount are the aggregate over the category and, for a top-level
// category, its sub-categories.
type Category struct {
	ID               uuid.UUID
	ParentID         uuid.NullUUID
	ParentName       string
	Name             string
	Code             string
	Description      string
	Icon             string
	Color            string
	IsActive         bool
	TotalAmount      decimal.Decimal
	TransactionCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c Category) IsTopLevel() bool {
	return !c.ParentID.Valid
}

type CategoryInput struct {
	ParentID    uuid.NullUUID
	Name        string
	Code        string
	Description string
	Icon        string
	Color       string
	IsActive    bool
}

type CategoryQuery struct {
	ActiveOnly   bool
	TopLevelOnly bool
	Search       string
}

// CategoryTreeNode is a top-level category with its sub-categories.
type CategoryTreeNode struct {
	Category
	Children []Category
}

// CategoryDetail is a category with its sub-categories and the latest
// transactions across all of them.
type CategoryDetail struct {
	Category
	Children           []Category
	RecentTransactions []Transaction
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:          row.ID,
		ParentID:    row.ParentID,
		ParentName:  row.ParentName,
		Name:        row.Name,
		Code:        row.Code,
		Description: row.Description,
		Icon:        row.Icon,
		Color:       row.Color,
		IsActive:    row.IsActive,
		TotalAmount: decimal.Zero,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func categoriesFromStorage(rows []*sqlconfig.Category) []Category {
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories
}

func categoryNodes(rows []*sqlconfig.Category) []ledger.CategoryNode {
	nodes := make([]ledger.CategoryNode, len(rows))
	for i, row := range rows {
		nodes[i] = ledger.CategoryNode{ID: row.ID, ParentID: row.ParentID}
	}
	return nodes
}

func applyTotals(categories []Category, totals map[uuid.UUID]ledger.CategoryTotal) {
	for i := range categories {
		if total, ok := totals[categories[i].ID]; ok {
			categories[i].TotalAmount = total.Amount
			categories[i].TransactionCount = total.Count
		}
	}
}

package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const defaultLimit = 20

// actionProcessor runs a write action in its own database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Stats       *StatsService
}

// NewService creates a new Service reading through reader and writing
// through processor.
func NewService(reader storage.Reader, processor actionProcessor) *Service {
	return &Service{
		Account:     NewAccountService(reader, processor),
		Category:    NewCategoryService(reader, processor),
		Transaction: NewTransactionService(reader, processor),
		Budget:      NewBudgetService(reader, processor, time.Now),
		Stats:       NewStatsService(reader, time.Now),
	}
}

// Cursor identifies a position in an offset-paginated result set.
type Cursor struct {
	Position int
	Limit    int
}

func pageBounds(cursor *Cursor) (limit, offset int) {
	limit = defaultLimit
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}
	return limit, offset
}

// trimPage cuts the extra look-ahead row the tables fetch and returns the
// cursor for the next page, if any.
func trimPage[T any](rows []*T, limit, offset int) ([]*T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	return rows[:limit], &Cursor{Position: offset + limit, Limit: limit}
}

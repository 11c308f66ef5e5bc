package service

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	reader    storage.Reader
	processor actionProcessor
	now       func() time.Time
}

// NewBudgetService creates a new BudgetService. now supplies the current time.
func NewBudgetService(reader storage.Reader, processor actionProcessor, now func() time.Time) *BudgetService {
	return &BudgetService{reader: reader, processor: processor, now: now}
}

// CreateBudget creates a budget. An active budget may not overlap another
// active budget of the same category.
func (s *BudgetService) CreateBudget(ctx context.Context, input BudgetInput) (uuid.UUID, error) {
	input, err := resolveBudgetInput(input)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateBudget{Create: sqlconfig.BudgetCreate{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Amount:     input.Amount,
		PeriodType: string(input.PeriodType),
		StartDate:  input.StartDate,
		EndDate:    *input.EndDate,
		IsActive:   input.IsActive,
		Notes:      input.Notes,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetBudget retrieves a budget with its progress.
func (s *BudgetService) GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error) {
	row, err := s.reader.Budgets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("budget")
	}

	budget, err := s.withProgress(ctx, row)
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// GetBudgetDetail retrieves a budget and the expense transactions that count
// toward it, newest first.
func (s *BudgetService) GetBudgetDetail(ctx context.Context, id uuid.UUID) (*BudgetDetail, error) {
	budget, err := s.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := budgetSpendFilter(budget.CategoryID, budget.StartDate, budget.EndDate)
	rows, err := s.reader.Transactions.List(ctx, &filter)
	if err != nil {
		return nil, err
	}

	return &BudgetDetail{
		Budget:       *budget,
		Transactions: transactionsFromStorage(rows),
	}, nil
}

// ListBudgets returns a page of budgets, latest start date first, each with
// its progress.
func (s *BudgetService) ListBudgets(ctx context.Context, query BudgetQuery, cursor *Cursor) ([]Budget, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	filter := &sqlconfig.BudgetFilter{
		CategoryID: query.CategoryID,
		ActiveOnly: query.ActiveOnly,
		Limit:      limit,
		Offset:     offset,
	}
	if query.CurrentOnly {
		today := ledger.Day(s.now())
		filter.ActiveOn = &today
	}

	rows, err := s.reader.Budgets.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, offset)

	budgets, err := s.withProgressAll(ctx, rows)
	if err != nil {
		return nil, nil, err
	}
	return budgets, next, nil
}

// CurrentBudgets returns the active budgets whose range contains today.
func (s *BudgetService) CurrentBudgets(ctx context.Context) ([]Budget, error) {
	return currentBudgets(ctx, s.reader, s.now())
}

func (s *BudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, input BudgetInput) error {
	input, err := resolveBudgetInput(input)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.UpdateBudget{ID: id, Update: sqlconfig.BudgetUpdate{
		CategoryID: omit.From(input.CategoryID),
		Name:       omit.From(input.Name),
		Amount:     omit.From(input.Amount),
		PeriodType: omit.From(string(input.PeriodType)),
		StartDate:  omit.From(input.StartDate),
		EndDate:    omit.From(*input.EndDate),
		IsActive:   omit.From(input.IsActive),
		Notes:      omit.From(input.Notes),
	}})
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteBudget{ID: id})
}

// ToggleBudgetStatus flips the active flag and returns the new value.
// Activation is refused when it would overlap another active budget.
func (s *BudgetService) ToggleBudgetStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.ToggleBudgetStatus{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.IsActive, nil
}

func (s *BudgetService) withProgress(ctx context.Context, row *sqlconfig.Budget) (Budget, error) {
	spent, err := budgetSpent(ctx, s.reader, row)
	if err != nil {
		return Budget{}, err
	}
	return budgetFromStorage(row, spent, ledger.Day(s.now())), nil
}

func (s *BudgetService) withProgressAll(ctx context.Context, rows []*sqlconfig.Budget) ([]Budget, error) {
	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budget, err := s.withProgress(ctx, row)
		if err != nil {
			return nil, err
		}
		budgets[i] = budget
	}
	return budgets, nil
}

// budgetSpendFilter matches the expense transactions of exactly one category
// within [start, end].
func budgetSpendFilter(categoryID uuid.UUID, start, end time.Time) sqlconfig.TransactionFilter {
	from, to := ledger.Day(start), ledger.Day(end)
	return sqlconfig.TransactionFilter{
		CategoryIDs: []uuid.UUID{categoryID},
		Type:        string(ledger.TransactionTypeExpense),
		DateFrom:    &from,
		DateTo:      &to,
	}
}

func budgetSpent(ctx context.Context, reader storage.Reader, row *sqlconfig.Budget) (decimal.Decimal, error) {
	filter := budgetSpendFilter(row.CategoryID, row.StartDate, row.EndDate)
	totals, err := reader.Transactions.Totals(ctx, &filter)
	if err != nil {
		return decimal.Zero, err
	}
	return totals.Expense, nil
}

func currentBudgets(ctx context.Context, reader storage.Reader, now time.Time) ([]Budget, error) {
	today := ledger.Day(now)
	rows, err := reader.Budgets.List(ctx, &sqlconfig.BudgetFilter{ActiveOnly: true, ActiveOn: &today})
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		spent, err := budgetSpent(ctx, reader, row)
		if err != nil {
			return nil, err
		}
		budgets[i] = budgetFromStorage(row, spent, today)
	}
	return budgets, nil
}

// resolveBudgetInput normalises and validates a budget, deriving the end date
// of monthly and yearly budgets when it is missing.
func resolveBudgetInput(input BudgetInput) (BudgetInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Notes = strings.TrimSpace(input.Notes)

	v := newValidator()
	if input.CategoryID == uuid.Nil {
		v.fail("categoryID", "The category field is required.")
	}
	v.required("name", input.Name)
	v.maxLen("name", input.Name, 255)
	v.positive("amount", input.Amount)
	v.money("amount", input.Amount)
	v.oneOf("periodType", input.PeriodType.Valid())

	if input.StartDate.IsZero() {
		v.fail("startDate", "The start date field is required.")
	} else {
		input.StartDate = ledger.Day(input.StartDate)
		if input.EndDate == nil {
			if end, ok := ledger.PeriodEnd(input.PeriodType, input.StartDate); ok {
				input.EndDate = &end
			}
		}
	}

	if input.EndDate == nil || input.EndDate.IsZero() {
		v.fail("endDate", "The end date field is required.")
	} else {
		end := ledger.Day(*input.EndDate)
		input.EndDate = &end
		if !input.StartDate.IsZero() && end.Before(input.StartDate) {
			v.fail("endDate", "The end date must be a date after or equal to start date.")
		}
	}

	return input, v.err()
}

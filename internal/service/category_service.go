package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	reader    storage.Reader
	processor actionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader storage.Reader, processor actionProcessor) *CategoryService {
	return &CategoryService{reader: reader, processor: processor}
}

func (s *CategoryService) CreateCategory(ctx context.Context, input CategoryInput) (uuid.UUID, error) {
	input = normalizeCategoryInput(input)
	if err := validateCategoryInput(input); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateCategory{Create: sqlconfig.CategoryCreate{
		ParentID:    input.ParentID,
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		IsActive:    input.IsActive,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetCategory retrieves a category with its aggregate totals.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	detail, err := s.GetCategoryDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return &detail.Category, nil
}

// GetCategoryDetail retrieves a category, its sub-categories with their own
// totals, and the latest transactions across the aggregate set.
func (s *CategoryService) GetCategoryDetail(ctx context.Context, id uuid.UUID) (*CategoryDetail, error) {
	row, err := s.reader.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("category")
	}

	var childRows []*sqlconfig.Category
	if !row.ParentID.Valid {
		childRows, err = s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ParentID: &id})
		if err != nil {
			return nil, err
		}
	}

	node := ledger.CategoryNode{ID: row.ID, ParentID: row.ParentID}
	scope := ledger.AggregateCategoryIDs(node, categoryNodes(childRows))

	direct, err := s.directTotals(ctx, &sqlconfig.TransactionFilter{CategoryIDs: scope})
	if err != nil {
		return nil, err
	}
	all := append([]*sqlconfig.Category{row}, childRows...)
	rolled := ledger.RollUpCategoryTotals(categoryNodes(all), direct)

	recent, err := s.reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{CategoryIDs: scope, Limit: recentTransactionLimit})
	if err != nil {
		return nil, err
	}
	recent, _ = trimPage(recent, recentTransactionLimit, 0)

	category := categoryFromStorage(row)
	if total, ok := rolled[category.ID]; ok {
		category.TotalAmount = total.Amount
		category.TransactionCount = total.Count
	}

	// Children show their own totals; they have no sub-categories to add.
	children := categoriesFromStorage(childRows)
	applyTotals(children, rolled)

	return &CategoryDetail{
		Category:           category,
		Children:           children,
		RecentTransactions: transactionsFromStorage(recent),
	}, nil
}

// ListCategories returns a page of categories, top-level first then by name,
// each with its rolled-up totals.
func (s *CategoryService) ListCategories(ctx context.Context, query CategoryQuery, cursor *Cursor) ([]Category, *Cursor, error) {
	limit, offset := pageBounds(cursor)

	rows, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{
		ActiveOnly:   query.ActiveOnly,
		TopLevelOnly: query.TopLevelOnly,
		Search:       strings.TrimSpace(query.Search),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, offset)

	totals, err := s.rolledUpTotals(ctx)
	if err != nil {
		return nil, nil, err
	}

	categories := categoriesFromStorage(rows)
	applyTotals(categories, totals)
	return categories, next, nil
}

// ActiveCategories returns every active category, for pickers and the JSON API.
func (s *CategoryService) ActiveCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

// CategoryTree returns the active top-level categories with their active
// sub-categories.
func (s *CategoryService) CategoryTree(ctx context.Context) ([]CategoryTreeNode, error) {
	rows, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	var tree []CategoryTreeNode
	index := map[uuid.UUID]int{}
	for _, row := range rows {
		if row.ParentID.Valid {
			continue
		}
		index[row.ID] = len(tree)
		tree = append(tree, CategoryTreeNode{Category: categoryFromStorage(row), Children: []Category{}})
	}
	for _, row := range rows {
		if !row.ParentID.Valid {
			continue
		}
		// Children of inactive parents are left out with them.
		if i, ok := index[row.ParentID.UUID]; ok {
			tree[i].Children = append(tree[i].Children, categoryFromStorage(row))
		}
	}
	return tree, nil
}

// ParentCategories returns the active top-level categories, the valid
// choices for a parent.
func (s *CategoryService) ParentCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ActiveOnly: true, TopLevelOnly: true})
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

// Children returns the active sub-categories of a category.
func (s *CategoryService) Children(ctx context.Context, id uuid.UUID) ([]Category, error) {
	parent, err := s.reader.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("category")
	}

	rows, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ActiveOnly: true, ParentID: &id})
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) error {
	input = normalizeCategoryInput(input)
	if err := validateCategoryInput(input); err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.UpdateCategory{ID: id, Update: sqlconfig.CategoryUpdate{
		ParentID:    omit.From(input.ParentID),
		Name:        omit.From(input.Name),
		Code:        omit.From(input.Code),
		Description: omit.From(input.Description),
		Icon:        omit.From(input.Icon),
		Color:       omit.From(input.Color),
		IsActive:    omit.From(input.IsActive),
	}})
}

// DeleteCategory removes a category. Categories with sub-categories or
// transactions are kept and a conflict is returned.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteCategory{ID: id})
}

func (s *CategoryService) ToggleCategoryStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.ToggleCategoryStatus{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.IsActive, nil
}

// rolledUpTotals computes aggregate totals for every category.
func (s *CategoryService) rolledUpTotals(ctx context.Context) (map[uuid.UUID]ledger.CategoryTotal, error) {
	all, err := s.reader.Categories.List(ctx, &sqlconfig.CategoryFilter{})
	if err != nil {
		return nil, err
	}
	direct, err := s.directTotals(ctx, nil)
	if err != nil {
		return nil, err
	}
	return ledger.RollUpCategoryTotals(categoryNodes(all), direct), nil
}

func (s *CategoryService) directTotals(ctx context.Context, filter *sqlconfig.TransactionFilter) (map[uuid.UUID]ledger.CategoryTotal, error) {
	sums, err := s.reader.Transactions.SumByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}
	direct := make(map[uuid.UUID]ledger.CategoryTotal, len(sums))
	for _, sum := range sums {
		direct[sum.CategoryID] = ledger.CategoryTotal{Amount: sum.Amount, Count: sum.Count}
	}
	return direct, nil
}

// categoryScope returns the category ids a filter on id should match: a
// top-level category brings its sub-categories along.
func categoryScope(ctx context.Context, reader storage.Reader, id uuid.UUID) ([]uuid.UUID, error) {
	row, err := reader.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.ParentID.Valid {
		return []uuid.UUID{id}, nil
	}

	children, err := reader.Categories.List(ctx, &sqlconfig.CategoryFilter{ParentID: &id})
	if err != nil {
		return nil, err
	}
	return ledger.AggregateCategoryIDs(ledger.CategoryNode{ID: row.ID}, categoryNodes(children)), nil
}

func normalizeCategoryInput(input CategoryInput) CategoryInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.TrimSpace(input.Code)
	input.Description = strings.TrimSpace(input.Description)
	input.Icon = strings.TrimSpace(input.Icon)
	input.Color = strings.TrimSpace(input.Color)
	if input.ParentID.Valid && input.ParentID.UUID == uuid.Nil {
		input.ParentID = uuid.NullUUID{}
	}
	return input
}

func validateCategoryInput(input CategoryInput) error {
	v := newValidator()
	v.required("name", input.Name)
	v.maxLen("name", input.Name, 255)
	v.required("code", input.Code)
	v.maxLen("code", input.Code, 50)
	v.maxLen("icon", input.Icon, 100)
	v.maxLen("color", input.Color, 20)
	return v.err()
}

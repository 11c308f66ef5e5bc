package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type BudgetDetailBody struct {
	Budget       Budget                    `json:"budget"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Expense transactions counted against the budget"`
}

type GetBudgetOutput struct {
	Body BudgetDetailBody
}

type budgetDetailGetter interface {
	GetBudgetDetail(ctx context.Context, id uuid.UUID) (*service.BudgetDetail, error)
}

// GetBudgetHandler handles GET /budgets/{id}.
type GetBudgetHandler struct {
	BudgetService budgetDetailGetter
}

func NewGetBudgetHandler(svc budgetDetailGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/budgets/{id}",
		Summary:     "Get a budget",
		Description: "Returns a budget with its progress and the expenses counted against it.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*GetBudgetOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	detail, err := h.BudgetService.GetBudgetDetail(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get budget")
	}
	return &GetBudgetOutput{Body: BudgetDetailBody{
		Budget:       FromService(detail.Budget),
		Transactions: transaction.FromServiceList(detail.Transactions),
	}}, nil
}

// CategoryOption is an active category a budget may track.
type CategoryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EditBudgetBody struct {
	Budget      Budget           `json:"budget"`
	Categories  []CategoryOption `json:"categories" doc:"Active categories"`
	PeriodTypes []string         `json:"periodTypes"`
}

type EditBudgetOutput struct {
	Body EditBudgetBody
}

type budgetGetter interface {
	GetBudget(ctx context.Context, id uuid.UUID) (*service.Budget, error)
}

type activeCategoryLister interface {
	ActiveCategories(ctx context.Context) ([]service.Category, error)
}

// EditBudgetHandler handles GET /budgets/{id}/edit.
type EditBudgetHandler struct {
	BudgetService   budgetGetter
	CategoryService activeCategoryLister
}

func NewEditBudgetHandler(budgets budgetGetter, categories activeCategoryLister) *EditBudgetHandler {
	return &EditBudgetHandler{BudgetService: budgets, CategoryService: categories}
}

func (h *EditBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-budget",
		Method:      http.MethodGet,
		Path:        "/budgets/{id}/edit",
		Summary:     "Get a budget for editing",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *EditBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*EditBudgetOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.GetBudget(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get budget")
	}
	categories, err := h.CategoryService.ActiveCategories(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list categories")
	}

	body := EditBudgetBody{
		Budget:      FromService(*budget),
		Categories:  make([]CategoryOption, len(categories)),
		PeriodTypes: PeriodTypes,
	}
	for i, c := range categories {
		body.Categories[i] = CategoryOption{ID: c.ID.String(), Name: c.Name}
	}
	return &EditBudgetOutput{Body: body}, nil
}

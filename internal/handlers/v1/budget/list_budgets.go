package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListBudgetsInput struct {
	CategoryID  string `query:"categoryID" doc:"Only budgets of this category"`
	ActiveOnly  bool   `query:"activeOnly"`
	CurrentOnly bool   `query:"currentOnly" doc:"Only budgets whose range contains today"`
	common.PageQuery
}

type ListBudgetsResponseBody struct {
	Budgets    []Budget       `json:"budgets" doc:"Page of budgets with progress, latest start first"`
	NextCursor *common.Cursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

type budgetLister interface {
	ListBudgets(ctx context.Context, query service.BudgetQuery, cursor *service.Cursor) ([]service.Budget, *service.Cursor, error)
}

// ListBudgetsHandler handles GET /budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budgets",
		Summary:     "List budgets",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	p := common.NewParser()
	query := service.BudgetQuery{ActiveOnly: input.ActiveOnly, CurrentOnly: input.CurrentOnly}
	if id := p.NullUUID("categoryID", input.CategoryID); id.Valid {
		query.CategoryID = &id.UUID
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "listBudgetsMs")
	budgets, next, err := h.BudgetService.ListBudgets(ctx, query, input.PageQuery.Cursor())
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list budgets")
	}

	return &ListBudgetsOutput{Body: ListBudgetsResponseBody{
		Budgets:    FromServiceList(budgets),
		NextCursor: common.NextCursor(next),
	}}, nil
}

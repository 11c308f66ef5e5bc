package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateBudgetInput struct {
	ID   string `path:"id" format:"uuid" doc:"Budget UUID"`
	Body BudgetBody
}

type UpdateBudgetOutput struct {
	Body Budget
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, id uuid.UUID, input service.BudgetInput) error
	GetBudget(ctx context.Context, id uuid.UUID) (*service.Budget, error)
}

// UpdateBudgetHandler handles PUT /budgets/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/budgets/{id}",
		Summary:     "Update a budget",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	budget, err := parseBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "budgetID", id.String())

	if err := h.BudgetService.UpdateBudget(ctx, id, budget); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to update budget")
	}

	updated, err := h.BudgetService.GetBudget(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get budget")
	}
	return &UpdateBudgetOutput{Body: FromService(*updated)}, nil
}

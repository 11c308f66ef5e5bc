package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type budgetDeleter interface {
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /budgets/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/budgets/{id}",
		Summary:       "Delete a budget",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *BudgetIDInput) (*struct{}, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "budgetID", id.String())

	if err := h.BudgetService.DeleteBudget(ctx, id); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to delete budget")
	}
	return nil, nil
}

type ToggleStatusBody struct {
	ID       string `json:"id" doc:"Budget UUID"`
	IsActive bool   `json:"isActive" doc:"Status after the toggle"`
}

type ToggleBudgetStatusOutput struct {
	Body ToggleStatusBody
}

type budgetToggler interface {
	ToggleBudgetStatus(ctx context.Context, id uuid.UUID) (bool, error)
}

// ToggleBudgetStatusHandler handles PATCH /budgets/{id}/toggle-status.
// Activating a budget that overlaps another active budget of its category
// fails with 422 on startDate.
type ToggleBudgetStatusHandler struct {
	BudgetService budgetToggler
}

func NewToggleBudgetStatusHandler(svc budgetToggler) *ToggleBudgetStatusHandler {
	return &ToggleBudgetStatusHandler{BudgetService: svc}
}

func (h *ToggleBudgetStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-budget-status",
		Method:      http.MethodPatch,
		Path:        "/budgets/{id}/toggle-status",
		Summary:     "Activate or deactivate a budget",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ToggleBudgetStatusHandler) handle(ctx context.Context, input *BudgetIDInput) (*ToggleBudgetStatusOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	active, err := h.BudgetService.ToggleBudgetStatus(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to toggle budget status")
	}
	logging.Data(ctx, "budgetID", id.String())

	return &ToggleBudgetStatusOutput{Body: ToggleStatusBody{ID: id.String(), IsActive: active}}, nil
}

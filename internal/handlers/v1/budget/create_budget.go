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

type CreateBudgetInput struct {
	Body BudgetBody
}

type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, input service.BudgetInput) (uuid.UUID, error)
}

// CreateBudgetHandler handles POST /budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/budgets",
		Summary:     "Create a budget",
		Description: "Creates a budget. An active budget may not overlap another active budget of the same category.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	budget, err := parseBudgetBody(input.Body)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	id, err := h.BudgetService.CreateBudget(ctx, budget)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to create budget")
	}

	if logData != nil {
		logData.AddData("budgetID", id.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: id.String()},
	}, nil
}

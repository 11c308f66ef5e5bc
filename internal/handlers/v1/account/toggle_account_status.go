package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type ToggleStatusBody struct {
	ID       string `json:"id" doc:"Account UUID"`
	IsActive bool   `json:"isActive" doc:"Status after the toggle"`
}

type ToggleAccountStatusOutput struct {
	Body ToggleStatusBody
}

type accountToggler interface {
	ToggleAccountStatus(ctx context.Context, id uuid.UUID) (bool, error)
}

// ToggleAccountStatusHandler handles PATCH /accounts/{id}/toggle-status.
type ToggleAccountStatusHandler struct {
	AccountService accountToggler
}

func NewToggleAccountStatusHandler(svc accountToggler) *ToggleAccountStatusHandler {
	return &ToggleAccountStatusHandler{AccountService: svc}
}

func (h *ToggleAccountStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-account-status",
		Method:      http.MethodPatch,
		Path:        "/accounts/{id}/toggle-status",
		Summary:     "Activate or deactivate an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ToggleAccountStatusHandler) handle(ctx context.Context, input *AccountIDInput) (*ToggleAccountStatusOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	active, err := h.AccountService.ToggleAccountStatus(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to toggle account status")
	}
	logging.Data(ctx, "accountID", id.String())
	logging.Data(ctx, "isActive", active)

	return &ToggleAccountStatusOutput{Body: ToggleStatusBody{ID: id.String(), IsActive: active}}, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateAccountInput replaces every writable field of an account.
type UpdateAccountInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body AccountBody
}

type UpdateAccountOutput struct {
	Body Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id uuid.UUID, input service.AccountInput) error
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// UpdateAccountHandler handles PUT /accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/accounts/{id}",
		Summary:     "Update an account",
		Description: "Replaces an account. Changing the opening balance recomputes the current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	account, err := parseAccountBody(input.Body)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "accountID", id.String())

	stopTimer := logging.Timed(ctx, "updateAccountMs")
	err = h.AccountService.UpdateAccount(ctx, id, account)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to update account")
	}

	updated, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get account")
	}
	return &UpdateAccountOutput{Body: fromService(*updated)}, nil
}

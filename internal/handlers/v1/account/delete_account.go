package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /accounts/{id}. Accounts that still
// have transactions are refused with 409.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/accounts/{id}",
		Summary:       "Delete an account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*struct{}, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "accountID", id.String())

	if err := h.AccountService.DeleteAccount(ctx, id); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to delete account")
	}
	return nil, nil
}

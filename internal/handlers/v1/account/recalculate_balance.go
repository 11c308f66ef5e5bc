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

type RecalculateBalanceOutput struct {
	Body Account
}

type balanceRecomputer interface {
	RecomputeBalances(ctx context.Context, accountID *uuid.UUID) (int, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// RecalculateBalanceHandler handles POST /accounts/{id}/recalculate-balance.
// The balance is rebuilt from the opening balance and every transaction of
// the account, so repeated calls return the same value.
type RecalculateBalanceHandler struct {
	AccountService balanceRecomputer
}

func NewRecalculateBalanceHandler(svc balanceRecomputer) *RecalculateBalanceHandler {
	return &RecalculateBalanceHandler{AccountService: svc}
}

func (h *RecalculateBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recalculate-account-balance",
		Method:      http.MethodPost,
		Path:        "/accounts/{id}/recalculate-balance",
		Summary:     "Recompute an account balance",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *RecalculateBalanceHandler) handle(ctx context.Context, input *AccountIDInput) (*RecalculateBalanceOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "accountID", id.String())

	stopTimer := logging.Timed(ctx, "recomputeBalanceMs")
	_, err = h.AccountService.RecomputeBalances(ctx, &id)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to recompute balance")
	}

	account, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get account")
	}
	return &RecalculateBalanceOutput{Body: fromService(*account)}, nil
}

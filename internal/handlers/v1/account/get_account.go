package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// AccountDetailBody is an account with its transaction totals and latest
// transactions.
type AccountDetailBody struct {
	Account            Account                   `json:"account"`
	Totals             common.Totals             `json:"totals" doc:"Totals over every transaction of the account"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions" doc:"Latest transactions, newest first"`
}

type GetAccountOutput struct {
	Body AccountDetailBody
}

type accountDetailGetter interface {
	GetAccountDetail(ctx context.Context, id uuid.UUID) (*service.AccountDetail, error)
}

// GetAccountHandler handles GET /accounts/{id}.
type GetAccountHandler struct {
	AccountService accountDetailGetter
}

func NewGetAccountHandler(svc accountDetailGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}",
		Summary:     "Get an account",
		Description: "Returns an account with its totals and latest transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*GetAccountOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "accountID", id.String())

	detail, err := h.AccountService.GetAccountDetail(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get account")
	}

	return &GetAccountOutput{Body: AccountDetailBody{
		Account:            fromService(detail.Account),
		Totals:             common.TotalsFrom(detail.Totals),
		RecentTransactions: transaction.FromServiceList(detail.RecentTransactions),
	}}, nil
}

// EditAccountBody is an account with the options its form needs.
type EditAccountBody struct {
	Account      Account  `json:"account"`
	AccountTypes []string `json:"accountTypes" doc:"Selectable account types"`
}

type EditAccountOutput struct {
	Body EditAccountBody
}

type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// EditAccountHandler handles GET /accounts/{id}/edit.
type EditAccountHandler struct {
	AccountService accountGetter
}

func NewEditAccountHandler(svc accountGetter) *EditAccountHandler {
	return &EditAccountHandler{AccountService: svc}
}

func (h *EditAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-account",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}/edit",
		Summary:     "Get an account for editing",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *EditAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*EditAccountOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get account")
	}

	types := make([]string, len(service.AccountTypes))
	for i, t := range service.AccountTypes {
		types[i] = string(t)
	}
	return &EditAccountOutput{Body: EditAccountBody{
		Account:      fromService(*account),
		AccountTypes: types,
	}}, nil
}
